package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-service/internal/config"
	"blog-service/internal/domain/user"
	"blog-service/pkg/security"
)

// EnsureAdminUser creates the configured admin account if it does not
// exist. Seeding is skipped when email or password is unset. The admin
// role replaces the hard-coded superuser identity: access checks look
// at the role column, never at a magic user id.
func EnsureAdminUser(ctx context.Context, db *gorm.DB, cfg config.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Info("admin seed skipped, no credentials configured")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&UserSchema{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	model := UserSchema{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}

	if err := db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Info("admin user seeded", zap.Int64("id", model.ID), zap.String("email", cfg.Email))
	return nil
}

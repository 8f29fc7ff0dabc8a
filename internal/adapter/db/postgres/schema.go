package postgres

import (
	"time"

	"gorm.io/gorm"
)

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name         string    `gorm:"not null"`                 // User's display name (required)
	Email        string    `gorm:"not null;unique"`          // Login key; unique constraint closes the concurrent-registration race
	PasswordHash string    `gorm:"not null"`                 // bcrypt digest, never the raw password
	Role         string    `gorm:"not null;default:user"`    // user or admin
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// PostSchema represents the database schema for the posts table.
type PostSchema struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Title     string     `gorm:"not null"`
	Subtitle  string     `gorm:"not null"`
	Body      string     `gorm:"not null"` // markdown source
	ImageURL  string     `gorm:"not null"`
	AuthorID  int64      `gorm:"not null;index"`
	Author    UserSchema `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the table name for the PostSchema model.
func (PostSchema) TableName() string {
	return "posts"
}

// CommentSchema represents the database schema for the comments table.
type CommentSchema struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	PostID    int64      `gorm:"not null;index"`
	Post      PostSchema `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  int64      `gorm:"not null;index"`
	Author    UserSchema `gorm:"foreignKey:AuthorID"`
	Text      string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the table name for the CommentSchema model.
func (CommentSchema) TableName() string {
	return "comments"
}

// AutoMigrate creates or updates all tables managed by this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{}, &PostSchema{}, &CommentSchema{})
}

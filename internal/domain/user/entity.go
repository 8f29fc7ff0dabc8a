package user

import "time"

// Roles assignable to a user. Post management requires RoleAdmin;
// the admin account is seeded from configuration at startup.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user entity in the system.
type User struct {
	ID           int64     // ID is the unique identifier for the user
	Name         string    // Name is the display name of the user
	Email        string    // Email is the unique email address, used as the login key
	PasswordHash string    // PasswordHash is the bcrypt digest; the raw password is never stored
	Role         string    // Role is either RoleUser or RoleAdmin
	CreatedAt    time.Time // CreatedAt is when the account was registered
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

package identity

import (
	"github.com/sparepos/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Role is the coarse access level of a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsValid returns true if the role is known
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is a staff account for the shop. The system is single-shop, so there
// is no tenant dimension; access is gated by role only.
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(200);not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Role         Role   `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a hashed password
func NewUser(username, name, password string, role Role) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Username cannot be empty")
	}
	if name == "" {
		name = username
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Role must be admin or staff")
	}

	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Name:       name,
		Role:       role,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

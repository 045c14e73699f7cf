// Package user provides the user domain model and data access.
package user

import "time"

// Role represents what a user is allowed to do on the marketplace.
type Role string

const (
	RoleTenant    Role = "tenant"
	RoleLandowner Role = "landowner"
	RoleAdmin     Role = "admin"
)

// ValidRoles is the set of allowed roles.
var ValidRoles = []Role{RoleTenant, RoleLandowner, RoleAdmin}

// IsValid checks if a role is recognized.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents a marketplace account.
type User struct {
	ID                  int64     `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Role                Role      `json:"role"`
	IsLandownerVerified bool      `json:"is_landowner_verified"`
	Subscription        bool      `json:"subscription"`
	CreatedAt           time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsVerifiedLandowner reports whether the user is a landowner cleared to list properties.
func (u *User) IsVerifiedLandowner() bool {
	return u.Role == RoleLandowner && u.IsLandownerVerified
}

package domain

import (
	"errors"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleWorker  Role = "WORKER"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserInactive = errors.New("user is inactive")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWorker:
		return true
	}
	return false
}

// CanDeleteLogs reports whether the role may delete training/defect logs.
// The RBAC middleware enforces the same set at the route level; the service
// re-checks through this method so the rule lives in exactly one place.
func (r Role) CanDeleteLogs() bool {
	return r == RoleManager || r == RoleAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Active         bool      `json:"active"`
	LicensePhoto   string    `json:"license_photo,omitempty"`
	HiredAt        time.Time `json:"hired_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

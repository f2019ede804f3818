package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	EmployeeNumber string
	Password       string
	Name           string
	Role           string
	LicensePhoto   string
}

// AuthService defines registration and login operations. Register is gated:
// only the bootstrap account (empty user table) may be created without an
// ADMIN actor.
type AuthService interface {
	Register(ctx context.Context, actor Actor, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, employeeNumber, password string) (string, *domain.User, error)
}

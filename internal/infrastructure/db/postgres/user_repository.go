package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// UserRepository implements ports.UserRepository on Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A unique-constraint violation on the employee
// number surfaces as domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	model := userToModel(*user)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	created := userFromModel(model)
	return &created, nil
}

func (r *UserRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "employee_number = ?", employeeNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userFromModel(model)
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := userFromModel(model)
	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:             u.ID,
		EmployeeNumber: u.EmployeeNumber,
		Name:           u.Name,
		PasswordHash:   u.PasswordHash,
		Role:           string(u.Role),
		Active:         u.Active,
		LicensePhoto:   u.LicensePhoto,
		HiredAt:        u.HiredAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:             m.ID,
		EmployeeNumber: m.EmployeeNumber,
		Name:           m.Name,
		PasswordHash:   m.PasswordHash,
		Role:           domain.Role(m.Role),
		Active:         m.Active,
		LicensePhoto:   m.LicensePhoto,
		HiredAt:        m.HiredAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

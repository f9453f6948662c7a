package repository

import (
	"context"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts one user in its own top-level transaction
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// ExistsExact reports whether a user with the same employee id, name, email and
// position exists. Absent positions only match absent positions.
func (r *UserRepository) ExistsExact(ctx context.Context, user *models.User) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("employee_id = ? AND first_name = ? AND last_name = ? AND email = ?",
			user.EmployeeID, user.FirstName, user.LastName, user.Email).
		Where("position_id IS NOT DISTINCT FROM ?", user.PositionID).
		Where("position_title IS NOT DISTINCT FROM ?", user.PositionTitle).
		Count(&count).Error
	return count > 0, err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

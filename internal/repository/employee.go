package repository

import (
	"context"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Save inserts one employee in its own top-level transaction
func (r *EmployeeRepository) Save(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(employee).Error
	})
}

// ExistsExact reports whether an employee with identical identity and position
// columns exists. NULL matches NULL.
func (r *EmployeeRepository) ExistsExact(ctx context.Context, employee *models.Employee) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_id = ?", employee.EmployeeID).
		Where("first_name IS NOT DISTINCT FROM ?", employee.FirstName).
		Where("last_name IS NOT DISTINCT FROM ?", employee.LastName).
		Where("email IS NOT DISTINCT FROM ?", employee.Email).
		Where("position_id IS NOT DISTINCT FROM ?", employee.PositionID).
		Where("position_title IS NOT DISTINCT FROM ?", employee.PositionTitle).
		Count(&count).Error
	return count > 0, err
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

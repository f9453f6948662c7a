package repository

import (
	"context"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationDetailRepository handles database operations for organization details
type OrganizationDetailRepository struct {
	db *gorm.DB
}

// NewOrganizationDetailRepository creates a new organization detail repository
func NewOrganizationDetailRepository(db *gorm.DB) *OrganizationDetailRepository {
	return &OrganizationDetailRepository{db: db}
}

// Save inserts one organization detail in its own top-level transaction
func (r *OrganizationDetailRepository) Save(ctx context.Context, detail *models.OrganizationDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(detail).Error
	})
}

// GetByID retrieves an organization detail by ID
func (r *OrganizationDetailRepository) GetByID(id uuid.UUID) (*models.OrganizationDetail, error) {
	var detail models.OrganizationDetail
	err := r.db.First(&detail, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

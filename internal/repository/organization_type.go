package repository

import (
	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationTypeRepository handles database operations for organization types
type OrganizationTypeRepository struct {
	db *gorm.DB
}

// NewOrganizationTypeRepository creates a new organization type repository
func NewOrganizationTypeRepository(db *gorm.DB) *OrganizationTypeRepository {
	return &OrganizationTypeRepository{db: db}
}

// Create creates a new organization type
func (r *OrganizationTypeRepository) Create(orgType *models.OrganizationType) error {
	return r.db.Create(orgType).Error
}

// GetByID retrieves an organization type by ID
func (r *OrganizationTypeRepository) GetByID(id uuid.UUID) (*models.OrganizationType, error) {
	var orgType models.OrganizationType
	err := r.db.First(&orgType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &orgType, nil
}

// GetByName retrieves an organization type by its unique name
func (r *OrganizationTypeRepository) GetByName(name string) (*models.OrganizationType, error) {
	var orgType models.OrganizationType
	err := r.db.First(&orgType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &orgType, nil
}

// GetBySlug retrieves an organization type by its unique slug
func (r *OrganizationTypeRepository) GetBySlug(slug string) (*models.OrganizationType, error) {
	var orgType models.OrganizationType
	err := r.db.First(&orgType, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &orgType, nil
}

// GetAll retrieves every organization type ordered for display
func (r *OrganizationTypeRepository) GetAll() ([]models.OrganizationType, error) {
	var orgTypes []models.OrganizationType
	err := r.db.Order("display_order ASC, name ASC").Find(&orgTypes).Error
	return orgTypes, err
}

// GetActive retrieves active organization types ordered for display
func (r *OrganizationTypeRepository) GetActive() ([]models.OrganizationType, error) {
	var orgTypes []models.OrganizationType
	err := r.db.Where("active = ?", true).Order("display_order ASC, name ASC").Find(&orgTypes).Error
	return orgTypes, err
}

// Update updates an organization type
func (r *OrganizationTypeRepository) Update(orgType *models.OrganizationType) error {
	return r.db.Save(orgType).Error
}

// SoftDelete marks an organization type inactive
func (r *OrganizationTypeRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.OrganizationType{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

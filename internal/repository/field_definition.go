package repository

import (
	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldDefinitionRepository handles database operations for assignment field definitions
type FieldDefinitionRepository struct {
	db *gorm.DB
}

// NewFieldDefinitionRepository creates a new field definition repository
func NewFieldDefinitionRepository(db *gorm.DB) *FieldDefinitionRepository {
	return &FieldDefinitionRepository{db: db}
}

// Create creates a new field definition
func (r *FieldDefinitionRepository) Create(def *models.AssignmentFieldDefinition) error {
	return r.db.Create(def).Error
}

// GetByID retrieves a field definition by ID
func (r *FieldDefinitionRepository) GetByID(id uuid.UUID) (*models.AssignmentFieldDefinition, error) {
	var def models.AssignmentFieldDefinition
	err := r.db.First(&def, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ExistsByOrganizationTypeAndKey checks the (organization type, field key) uniqueness rule.
// Inactive definitions count: a soft-deleted key stays reserved.
func (r *FieldDefinitionRepository) ExistsByOrganizationTypeAndKey(orgTypeID uuid.UUID, fieldKey string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AssignmentFieldDefinition{}).
		Where("organization_type_id = ? AND field_key = ?", orgTypeID, fieldKey).
		Count(&count).Error
	return count > 0, err
}

// GetActiveByOrganizationType retrieves active definitions in display order
func (r *FieldDefinitionRepository) GetActiveByOrganizationType(orgTypeID uuid.UUID) ([]models.AssignmentFieldDefinition, error) {
	var defs []models.AssignmentFieldDefinition
	err := r.db.Where("organization_type_id = ? AND active = ?", orgTypeID, true).
		Order("display_order ASC").
		Find(&defs).Error
	return defs, err
}

// GetAllByOrganizationType retrieves every definition, active or not, in display order
func (r *FieldDefinitionRepository) GetAllByOrganizationType(orgTypeID uuid.UUID) ([]models.AssignmentFieldDefinition, error) {
	var defs []models.AssignmentFieldDefinition
	err := r.db.Where("organization_type_id = ?", orgTypeID).
		Order("display_order ASC").
		Find(&defs).Error
	return defs, err
}

// Update updates a field definition
func (r *FieldDefinitionRepository) Update(def *models.AssignmentFieldDefinition) error {
	return r.db.Save(def).Error
}

// SoftDelete hides a definition; its stored values are kept
func (r *FieldDefinitionRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.AssignmentFieldDefinition{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete removes a definition together with every value stored for it
func (r *FieldDefinitionRepository) HardDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_definition_id = ?", id).Delete(&models.AssignmentFieldValue{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.AssignmentFieldDefinition{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

package repository

import (
	"time"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateWithValues inserts the assignment and its field values in one transaction
func (r *AssignmentRepository) CreateWithValues(assignment *models.Assignment, values []models.AssignmentFieldValue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		for i := range values {
			values[i].AssignmentID = assignment.ID
		}
		return tx.Create(&values).Error
	})
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ExistsForSubject reports whether the subject is already assigned to the organization detail
func (r *AssignmentRepository) ExistsForSubject(subjectType models.SubjectType, subjectID, orgDetailID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("subject_type = ? AND subject_id = ? AND organization_detail_id = ?", subjectType, subjectID, orgDetailID).
		Count(&count).Error
	return count > 0, err
}

// GetByOrganizationDetailID retrieves all assignments of one organization detail
func (r *AssignmentRepository) GetByOrganizationDetailID(orgDetailID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("organization_detail_id = ?", orgDetailID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// GetByOrganizationType retrieves a page of assignments whose organization detail
// belongs to the named organization type
func (r *AssignmentRepository) GetByOrganizationType(orgTypeName string, limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	byType := func() *gorm.DB {
		return r.db.Model(&models.Assignment{}).
			Joins("JOIN organization_details ON organization_details.id = assignments.organization_detail_id").
			Where("organization_details.organization_type = ?", orgTypeName)
	}

	if err := byType().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := byType().Select("assignments.*").
		Order("assignments.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

type organizationTypeCount struct {
	OrganizationType string
	Total            int64
}

// CountByOrganizationType returns the number of assignments per organization type name
func (r *AssignmentRepository) CountByOrganizationType() (map[string]int64, error) {
	var rows []organizationTypeCount
	err := r.db.Model(&models.Assignment{}).
		Select("organization_details.organization_type AS organization_type, COUNT(*) AS total").
		Joins("JOIN organization_details ON organization_details.id = assignments.organization_detail_id").
		Where("organization_details.organization_type IS NOT NULL").
		Group("organization_details.organization_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.OrganizationType] = row.Total
	}
	return counts, nil
}

// UpdateValues upserts the assignment's field values and bumps its updated_at in one transaction
func (r *AssignmentRepository) UpdateValues(id uuid.UUID, values []models.AssignmentFieldValue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range values {
			values[i].AssignmentID = id
		}
		if err := upsertFieldValues(tx, values); err != nil {
			return err
		}
		result := tx.Model(&models.Assignment{}).Where("id = ?", id).Update("updated_at", time.Now())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete deletes an assignment; field values go with it via ON DELETE CASCADE
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Assignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

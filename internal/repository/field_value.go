package repository

import (
	"time"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FieldValueWithKey is one stored value joined with its definition's key
type FieldValueWithKey struct {
	AssignmentID uuid.UUID
	FieldKey     string
	Value        bool
}

// FieldValueRepository handles database operations for assignment field values
type FieldValueRepository struct {
	db *gorm.DB
}

// NewFieldValueRepository creates a new field value repository
func NewFieldValueRepository(db *gorm.DB) *FieldValueRepository {
	return &FieldValueRepository{db: db}
}

// GetByAssignmentIDs loads the values of many assignments with a single joined query.
// Every active field of the assignment's organization type yields one row; a field with
// no stored value reads false and values of inactive fields are left out.
func (r *FieldValueRepository) GetByAssignmentIDs(assignmentIDs []uuid.UUID) ([]FieldValueWithKey, error) {
	if len(assignmentIDs) == 0 {
		return nil, nil
	}
	var rows []FieldValueWithKey
	err := r.db.Table("assignments AS a").
		Select("a.id AS assignment_id, d.field_key, COALESCE(v.value, FALSE) AS value").
		Joins("JOIN organization_details AS od ON od.id = a.organization_detail_id").
		Joins("JOIN organization_types AS ot ON ot.name = od.organization_type").
		Joins("JOIN assignment_field_definitions AS d ON d.organization_type_id = ot.id AND d.active = ?", true).
		Joins("LEFT JOIN assignment_field_values AS v ON v.assignment_id = a.id AND v.field_definition_id = d.id").
		Where("a.id IN ?", assignmentIDs).
		Order("d.display_order ASC").
		Scan(&rows).Error
	return rows, err
}

// upsertFieldValues writes values, updating rows that already exist for (assignment, field definition)
func upsertFieldValues(tx *gorm.DB, values []models.AssignmentFieldValue) error {
	if len(values) == 0 {
		return nil
	}
	now := time.Now()
	for i := range values {
		values[i].UpdatedAt = now
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "field_definition_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&values).Error
}

package models

import "github.com/google/uuid"

// Assignment links a subject (employee or user) to an organization detail
type Assignment struct {
	BaseModel
	SubjectType          SubjectType `json:"subject_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_assignments_subject_detail" validate:"required"`
	SubjectID            uuid.UUID   `json:"subject_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_subject_detail"`
	OrganizationDetailID uuid.UUID   `json:"organization_detail_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_subject_detail"`
	CreatedByID          *uuid.UUID  `json:"created_by_id,omitempty" gorm:"type:uuid"`

	// Relationships
	FieldValues []AssignmentFieldValue `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentFieldValue stores the boolean value of one field definition for one assignment
type AssignmentFieldValue struct {
	BaseModel
	AssignmentID      uuid.UUID `json:"assignment_id" gorm:"type:uuid;not null;uniqueIndex:idx_field_values_assignment_field"`
	FieldDefinitionID uuid.UUID `json:"field_definition_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_field_values_assignment_field"`
	Value             bool      `json:"value" gorm:"not null;default:false"`
}

// TableName returns the table name for AssignmentFieldValue
func (AssignmentFieldValue) TableName() string {
	return "assignment_field_values"
}

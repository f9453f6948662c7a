package models

import "github.com/google/uuid"

// AssignmentFieldDefinition declares one boolean capability flag available to
// assignments of an organization type.
type AssignmentFieldDefinition struct {
	BaseModel
	OrganizationTypeID uuid.UUID `json:"organization_type_id" gorm:"type:uuid;not null;uniqueIndex:idx_field_definitions_type_key"`
	FieldKey           string    `json:"field_key" gorm:"not null;size:100;uniqueIndex:idx_field_definitions_type_key" validate:"required,min=1,max=100"`
	FieldTitle         string    `json:"field_title" gorm:"not null;size:200" validate:"required,max=200"`
	FieldDescription   string    `json:"field_description" gorm:"type:text"`
	DisplayOrder       int       `json:"display_order" gorm:"not null;default:0"`
	Active             bool      `json:"active" gorm:"not null;default:true"`

	// Relationships
	Values []AssignmentFieldValue `json:"-" gorm:"foreignKey:FieldDefinitionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentFieldDefinition
func (AssignmentFieldDefinition) TableName() string {
	return "assignment_field_definitions"
}

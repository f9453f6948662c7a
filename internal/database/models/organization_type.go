package models

// OrganizationType is one node of the configurable organization taxonomy
type OrganizationType struct {
	BaseModel
	Name         string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName  string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	IconName     string `json:"icon_name" gorm:"size:100" validate:"max=100"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
	Active       bool   `json:"active" gorm:"not null;default:true"`

	// Relationships
	FieldDefinitions []AssignmentFieldDefinition `json:"field_definitions,omitempty" gorm:"foreignKey:OrganizationTypeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationType
func (OrganizationType) TableName() string {
	return "organization_types"
}

package models

// OrganizationDetail is an organization record that assignments point at.
// OrganizationType holds the name of an OrganizationType.
type OrganizationDetail struct {
	BaseModel
	LegacyOrganizationName *string `json:"legacy_organization_name,omitempty" gorm:"size:100"`
	Organization           *string `json:"organization,omitempty" gorm:"size:100"`
	OrganizationType       *string `json:"organization_type,omitempty" gorm:"size:100;index"`
	ReferenceID            *string `json:"reference_id,omitempty" gorm:"size:100"`
}

// TableName returns the table name for OrganizationDetail
func (OrganizationDetail) TableName() string {
	return "organization_details"
}

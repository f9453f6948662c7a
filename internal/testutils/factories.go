package testutils

import (
	"fmt"
	"time"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

func base() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func strPtr(s string) *string {
	return &s
}

// OrganizationTypeFactory provides methods to create test OrganizationType data
type OrganizationTypeFactory struct{}

// NewOrganizationTypeFactory creates a new OrganizationTypeFactory
func NewOrganizationTypeFactory() *OrganizationTypeFactory {
	return &OrganizationTypeFactory{}
}

// Create creates a test OrganizationType with default values
func (f *OrganizationTypeFactory) Create() *models.OrganizationType {
	return &models.OrganizationType{
		BaseModel:    base(),
		Name:         "Gift",
		Slug:         "gift",
		DisplayName:  "Gifts",
		IconName:     "gift",
		DisplayOrder: 1,
		Active:       true,
	}
}

// WithName creates an organization type whose slug is derived from name
func (f *OrganizationTypeFactory) WithName(name, slug string) *models.OrganizationType {
	orgType := f.Create()
	orgType.Name = name
	orgType.Slug = slug
	orgType.DisplayName = name
	return orgType
}

// FieldDefinitionFactory provides methods to create test AssignmentFieldDefinition data
type FieldDefinitionFactory struct{}

// NewFieldDefinitionFactory creates a new FieldDefinitionFactory
func NewFieldDefinitionFactory() *FieldDefinitionFactory {
	return &FieldDefinitionFactory{}
}

// Create creates an active field definition under orgTypeID
func (f *FieldDefinitionFactory) Create(orgTypeID uuid.UUID, key string, order int) *models.AssignmentFieldDefinition {
	return &models.AssignmentFieldDefinition{
		BaseModel:          base(),
		OrganizationTypeID: orgTypeID,
		FieldKey:           key,
		FieldTitle:         fmt.Sprintf("Title for %s", key),
		FieldDescription:   "created by test factory",
		DisplayOrder:       order,
		Active:             true,
	}
}

// OrganizationDetailFactory provides methods to create test OrganizationDetail data
type OrganizationDetailFactory struct{}

// NewOrganizationDetailFactory creates a new OrganizationDetailFactory
func NewOrganizationDetailFactory() *OrganizationDetailFactory {
	return &OrganizationDetailFactory{}
}

// Create creates an organization detail of the given organization type name
func (f *OrganizationDetailFactory) Create(orgTypeName string) *models.OrganizationDetail {
	return &models.OrganizationDetail{
		BaseModel:        base(),
		Organization:     strPtr("Acme Foundation"),
		OrganizationType: strPtr(orgTypeName),
		ReferenceID:      strPtr("REF-" + uuid.NewString()[:8]),
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with every optional column set
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		BaseModel:     base(),
		EmployeeID:    "E" + uuid.NewString()[:6],
		FirstName:     strPtr("Ada"),
		LastName:      strPtr("Lovelace"),
		Email:         strPtr("ada@example.com"),
		PositionID:    strPtr("P-1"),
		PositionTitle: strPtr("Engineer"),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User without position or password
func (f *UserFactory) Create() *models.User {
	return &models.User{
		BaseModel:  base(),
		EmployeeID: "U" + uuid.NewString()[:6],
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Role:       models.RoleUser,
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an employee assignment to orgDetailID
func (f *AssignmentFactory) Create(subjectID, orgDetailID uuid.UUID) *models.Assignment {
	return &models.Assignment{
		BaseModel:            base(),
		SubjectType:          models.SubjectTypeEmployee,
		SubjectID:            subjectID,
		OrganizationDetailID: orgDetailID,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	OrganizationType   *OrganizationTypeFactory
	FieldDefinition    *FieldDefinitionFactory
	OrganizationDetail *OrganizationDetailFactory
	Employee           *EmployeeFactory
	User               *UserFactory
	Assignment         *AssignmentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		OrganizationType:   NewOrganizationTypeFactory(),
		FieldDefinition:    NewFieldDefinitionFactory(),
		OrganizationDetail: NewOrganizationDetailFactory(),
		Employee:           NewEmployeeFactory(),
		User:               NewUserFactory(),
		Assignment:         NewAssignmentFactory(),
	}
}

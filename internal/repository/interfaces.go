package repository

import (
	"context"

	"assignment-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationTypeRepositoryInterface defines the interface for organization type repository operations
type OrganizationTypeRepositoryInterface interface {
	Create(orgType *models.OrganizationType) error
	GetByID(id uuid.UUID) (*models.OrganizationType, error)
	GetByName(name string) (*models.OrganizationType, error)
	GetBySlug(slug string) (*models.OrganizationType, error)
	GetAll() ([]models.OrganizationType, error)
	GetActive() ([]models.OrganizationType, error)
	Update(orgType *models.OrganizationType) error
	SoftDelete(id uuid.UUID) error
}

// FieldDefinitionRepositoryInterface defines the interface for assignment field definition operations
type FieldDefinitionRepositoryInterface interface {
	Create(def *models.AssignmentFieldDefinition) error
	GetByID(id uuid.UUID) (*models.AssignmentFieldDefinition, error)
	ExistsByOrganizationTypeAndKey(orgTypeID uuid.UUID, fieldKey string) (bool, error)
	GetActiveByOrganizationType(orgTypeID uuid.UUID) ([]models.AssignmentFieldDefinition, error)
	GetAllByOrganizationType(orgTypeID uuid.UUID) ([]models.AssignmentFieldDefinition, error)
	Update(def *models.AssignmentFieldDefinition) error
	SoftDelete(id uuid.UUID) error
	HardDelete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	CreateWithValues(assignment *models.Assignment, values []models.AssignmentFieldValue) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	ExistsForSubject(subjectType models.SubjectType, subjectID, orgDetailID uuid.UUID) (bool, error)
	GetByOrganizationDetailID(orgDetailID uuid.UUID) ([]models.Assignment, error)
	GetByOrganizationType(orgTypeName string, limit, offset int) ([]models.Assignment, int64, error)
	CountByOrganizationType() (map[string]int64, error)
	UpdateValues(id uuid.UUID, values []models.AssignmentFieldValue) error
	Delete(id uuid.UUID) error
}

// FieldValueRepositoryInterface defines the interface for assignment field value operations
type FieldValueRepositoryInterface interface {
	GetByAssignmentIDs(assignmentIDs []uuid.UUID) ([]FieldValueWithKey, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Save(ctx context.Context, employee *models.Employee) error
	ExistsExact(ctx context.Context, employee *models.Employee) (bool, error)
	GetByID(id uuid.UUID) (*models.Employee, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Save(ctx context.Context, user *models.User) error
	ExistsExact(ctx context.Context, user *models.User) (bool, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// OrganizationDetailRepositoryInterface defines the interface for organization detail repository operations
type OrganizationDetailRepositoryInterface interface {
	Save(ctx context.Context, detail *models.OrganizationDetail) error
	GetByID(id uuid.UUID) (*models.OrganizationDetail, error)
}

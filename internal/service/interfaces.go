package service

import (
	"context"
	"io"

	"assignment-admin-backend/internal/ingest"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationTypeServiceInterface defines the interface for organization type service
type OrganizationTypeServiceInterface interface {
	Create(req *CreateOrganizationTypeRequest) (*OrganizationTypeResponse, error)
	GetByID(id uuid.UUID) (*OrganizationTypeResponse, error)
	GetBySlug(slug string) (*OrganizationTypeResponse, error)
	GetAll() ([]OrganizationTypeResponse, error)
	GetActive() ([]OrganizationTypeResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationTypeRequest) (*OrganizationTypeResponse, error)
	Delete(id uuid.UUID) error
}

// FieldDefinitionServiceInterface defines the interface for the assignment field schema registry
type FieldDefinitionServiceInterface interface {
	ListActive(orgTypeID uuid.UUID) ([]FieldDefinitionResponse, error)
	ListActiveBySlug(slug string) ([]FieldDefinitionResponse, error)
	ListAll(orgTypeID uuid.UUID) ([]FieldDefinitionResponse, error)
	GetByID(id uuid.UUID) (*FieldDefinitionResponse, error)
	Create(req *CreateFieldDefinitionRequest) (*FieldDefinitionResponse, error)
	Update(id uuid.UUID, req *UpdateFieldDefinitionRequest) (*FieldDefinitionResponse, error)
	SoftDelete(id uuid.UUID) error
	HardDelete(id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest, actorID *uuid.UUID) (*AssignmentResponse, error)
	Update(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	GetByID(id uuid.UUID) (*AssignmentResponse, error)
	Delete(id uuid.UUID) error
	ListByOrganizationDetail(orgDetailID uuid.UUID) ([]AssignmentResponse, error)
	ListByOrganizationType(slug string, page, pageSize int) (*AssignmentListResponse, error)
	Stats() ([]AssignmentStatsResponse, error)
}

// ImportServiceInterface defines the interface for bulk CSV import
type ImportServiceInterface interface {
	Import(ctx context.Context, kind ingest.Kind, filename string, r io.Reader) (*ImportResponse, error)
}

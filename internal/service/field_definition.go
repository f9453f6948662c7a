package service

import (
	"errors"
	"fmt"

	"assignment-admin-backend/internal/database/models"
	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldDefinitionService is the registry of boolean capability fields per organization type
type FieldDefinitionService struct {
	repo        repository.FieldDefinitionRepositoryInterface
	orgTypeRepo repository.OrganizationTypeRepositoryInterface
	validator   *validator.Validate
}

// NewFieldDefinitionService creates a new field definition service
func NewFieldDefinitionService(repo repository.FieldDefinitionRepositoryInterface, orgTypeRepo repository.OrganizationTypeRepositoryInterface, validator *validator.Validate) *FieldDefinitionService {
	return &FieldDefinitionService{
		repo:        repo,
		orgTypeRepo: orgTypeRepo,
		validator:   validator,
	}
}

// CreateFieldDefinitionRequest represents the request to create a field definition
type CreateFieldDefinitionRequest struct {
	OrganizationTypeID uuid.UUID `json:"organization_type_id" validate:"required"`
	FieldKey           string    `json:"field_key" validate:"required,min=1,max=100"`
	FieldTitle         string    `json:"field_title" validate:"required,max=200"`
	FieldDescription   string    `json:"field_description,omitempty"`
	DisplayOrder       int       `json:"display_order"`
}

// UpdateFieldDefinitionRequest represents a partial update; Active=true reactivates a soft-deleted field
type UpdateFieldDefinitionRequest struct {
	FieldKey         *string `json:"field_key,omitempty" validate:"omitempty,min=1,max=100"`
	FieldTitle       *string `json:"field_title,omitempty" validate:"omitempty,max=200"`
	FieldDescription *string `json:"field_description,omitempty"`
	DisplayOrder     *int    `json:"display_order,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

// FieldDefinitionResponse represents the response for field definition operations
type FieldDefinitionResponse struct {
	ID                 uuid.UUID `json:"id"`
	OrganizationTypeID uuid.UUID `json:"organization_type_id"`
	FieldKey           string    `json:"field_key"`
	FieldTitle         string    `json:"field_title"`
	FieldDescription   string    `json:"field_description"`
	DisplayOrder       int       `json:"display_order"`
	Active             bool      `json:"active"`
}

// ListActive lists the active fields of an organization type in display order
func (s *FieldDefinitionService) ListActive(orgTypeID uuid.UUID) ([]FieldDefinitionResponse, error) {
	defs, err := s.repo.GetActiveByOrganizationType(orgTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list field definitions: %w", err)
	}
	return toFieldDefinitionResponses(defs), nil
}

// ListActiveBySlug resolves the organization type by slug and lists its active fields
func (s *FieldDefinitionService) ListActiveBySlug(slug string) ([]FieldDefinitionResponse, error) {
	orgType, err := s.orgTypeRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}
	return s.ListActive(orgType.ID)
}

// ListAll lists every field of an organization type including soft-deleted ones
func (s *FieldDefinitionService) ListAll(orgTypeID uuid.UUID) ([]FieldDefinitionResponse, error) {
	defs, err := s.repo.GetAllByOrganizationType(orgTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list field definitions: %w", err)
	}
	return toFieldDefinitionResponses(defs), nil
}

// GetByID retrieves a field definition by ID
func (s *FieldDefinitionService) GetByID(id uuid.UUID) (*FieldDefinitionResponse, error) {
	def, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toFieldDefinitionResponse(def), nil
}

// Create adds a field to an organization type. The field key must be unused within that type.
func (s *FieldDefinitionService) Create(req *CreateFieldDefinitionRequest) (*FieldDefinitionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.orgTypeRepo.GetByID(req.OrganizationTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}

	exists, err := s.repo.ExistsByOrganizationTypeAndKey(req.OrganizationTypeID, req.FieldKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing field definition: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFieldDefinitionExists
	}

	def := &models.AssignmentFieldDefinition{
		OrganizationTypeID: req.OrganizationTypeID,
		FieldKey:           req.FieldKey,
		FieldTitle:         req.FieldTitle,
		FieldDescription:   req.FieldDescription,
		DisplayOrder:       req.DisplayOrder,
		Active:             true,
	}
	if err := s.repo.Create(def); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFieldDefinitionExists
		}
		return nil, fmt.Errorf("failed to create field definition: %w", err)
	}

	return toFieldDefinitionResponse(def), nil
}

// Update applies a partial update; a changed key is checked for uniqueness again
func (s *FieldDefinitionService) Update(id uuid.UUID, req *UpdateFieldDefinitionRequest) (*FieldDefinitionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	def, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.FieldKey != nil && *req.FieldKey != def.FieldKey {
		exists, err := s.repo.ExistsByOrganizationTypeAndKey(def.OrganizationTypeID, *req.FieldKey)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing field definition: %w", err)
		}
		if exists {
			return nil, apperrors.ErrFieldDefinitionExists
		}
		def.FieldKey = *req.FieldKey
	}
	if req.FieldTitle != nil {
		def.FieldTitle = *req.FieldTitle
	}
	if req.FieldDescription != nil {
		def.FieldDescription = *req.FieldDescription
	}
	if req.DisplayOrder != nil {
		def.DisplayOrder = *req.DisplayOrder
	}
	if req.Active != nil {
		def.Active = *req.Active
	}

	if err := s.repo.Update(def); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFieldDefinitionExists
		}
		return nil, fmt.Errorf("failed to update field definition: %w", err)
	}
	return toFieldDefinitionResponse(def), nil
}

// SoftDelete hides a field from new and updated assignments; stored values are kept
func (s *FieldDefinitionService) SoftDelete(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFieldDefinitionNotFound
		}
		return fmt.Errorf("failed to deactivate field definition: %w", err)
	}
	return nil
}

// HardDelete removes a field and all values stored for it
func (s *FieldDefinitionService) HardDelete(id uuid.UUID) error {
	if err := s.repo.HardDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFieldDefinitionNotFound
		}
		return fmt.Errorf("failed to delete field definition: %w", err)
	}
	return nil
}

func (s *FieldDefinitionService) get(id uuid.UUID) (*models.AssignmentFieldDefinition, error) {
	def, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFieldDefinitionNotFound
		}
		return nil, fmt.Errorf("failed to get field definition: %w", err)
	}
	return def, nil
}

func toFieldDefinitionResponse(def *models.AssignmentFieldDefinition) *FieldDefinitionResponse {
	return &FieldDefinitionResponse{
		ID:                 def.ID,
		OrganizationTypeID: def.OrganizationTypeID,
		FieldKey:           def.FieldKey,
		FieldTitle:         def.FieldTitle,
		FieldDescription:   def.FieldDescription,
		DisplayOrder:       def.DisplayOrder,
		Active:             def.Active,
	}
}

func toFieldDefinitionResponses(defs []models.AssignmentFieldDefinition) []FieldDefinitionResponse {
	responses := make([]FieldDefinitionResponse, len(defs))
	for i := range defs {
		responses[i] = *toFieldDefinitionResponse(&defs[i])
	}
	return responses
}

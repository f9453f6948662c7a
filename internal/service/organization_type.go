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

// OrganizationTypeService handles business logic for organization types
type OrganizationTypeService struct {
	repo      repository.OrganizationTypeRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationTypeService creates a new organization type service
func NewOrganizationTypeService(repo repository.OrganizationTypeRepositoryInterface, validator *validator.Validate) *OrganizationTypeService {
	return &OrganizationTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationTypeRequest represents the request to create an organization type
type CreateOrganizationTypeRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Slug         string `json:"slug" validate:"required,min=1,max=100"`
	DisplayName  string `json:"display_name" validate:"required,max=200"`
	IconName     string `json:"icon_name,omitempty" validate:"max=100"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateOrganizationTypeRequest represents a partial update of an organization type
type UpdateOrganizationTypeRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug         *string `json:"slug,omitempty" validate:"omitempty,min=1,max=100"`
	DisplayName  *string `json:"display_name,omitempty" validate:"omitempty,max=200"`
	IconName     *string `json:"icon_name,omitempty" validate:"omitempty,max=100"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// OrganizationTypeResponse represents the response for organization type operations
type OrganizationTypeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	DisplayName  string    `json:"display_name"`
	IconName     string    `json:"icon_name"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    string    `json:"created_at"`
}

// Create creates a new organization type; name and slug must both be unused
func (s *OrganizationTypeService) Create(req *CreateOrganizationTypeRequest) (*OrganizationTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if err := s.ensureNameFree(req.Name); err != nil {
		return nil, err
	}
	if err := s.ensureSlugFree(req.Slug); err != nil {
		return nil, err
	}

	orgType := &models.OrganizationType{
		Name:         req.Name,
		Slug:         req.Slug,
		DisplayName:  req.DisplayName,
		IconName:     req.IconName,
		DisplayOrder: req.DisplayOrder,
		Active:       true,
	}
	if err := s.repo.Create(orgType); err != nil {
		return nil, fmt.Errorf("failed to create organization type: %w", err)
	}

	return toOrganizationTypeResponse(orgType), nil
}

// GetByID retrieves an organization type by ID
func (s *OrganizationTypeService) GetByID(id uuid.UUID) (*OrganizationTypeResponse, error) {
	orgType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}
	return toOrganizationTypeResponse(orgType), nil
}

// GetBySlug retrieves an organization type by slug
func (s *OrganizationTypeService) GetBySlug(slug string) (*OrganizationTypeResponse, error) {
	orgType, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}
	return toOrganizationTypeResponse(orgType), nil
}

// GetAll lists every organization type
func (s *OrganizationTypeService) GetAll() ([]OrganizationTypeResponse, error) {
	orgTypes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list organization types: %w", err)
	}
	return toOrganizationTypeResponses(orgTypes), nil
}

// GetActive lists active organization types
func (s *OrganizationTypeService) GetActive() ([]OrganizationTypeResponse, error) {
	orgTypes, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active organization types: %w", err)
	}
	return toOrganizationTypeResponses(orgTypes), nil
}

// Update applies a partial update, re-checking uniqueness of a changed name or slug
func (s *OrganizationTypeService) Update(id uuid.UUID, req *UpdateOrganizationTypeRequest) (*OrganizationTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	orgType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}

	if req.Name != nil && *req.Name != orgType.Name {
		if err := s.ensureNameFree(*req.Name); err != nil {
			return nil, err
		}
		orgType.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != orgType.Slug {
		if err := s.ensureSlugFree(*req.Slug); err != nil {
			return nil, err
		}
		orgType.Slug = *req.Slug
	}
	if req.DisplayName != nil {
		orgType.DisplayName = *req.DisplayName
	}
	if req.IconName != nil {
		orgType.IconName = *req.IconName
	}
	if req.DisplayOrder != nil {
		orgType.DisplayOrder = *req.DisplayOrder
	}
	if req.Active != nil {
		orgType.Active = *req.Active
	}

	if err := s.repo.Update(orgType); err != nil {
		return nil, fmt.Errorf("failed to update organization type: %w", err)
	}
	return toOrganizationTypeResponse(orgType), nil
}

// Delete soft-deletes an organization type
func (s *OrganizationTypeService) Delete(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationTypeNotFound
		}
		return fmt.Errorf("failed to delete organization type: %w", err)
	}
	return nil
}

func (s *OrganizationTypeService) ensureNameFree(name string) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing organization type by name: %w", err)
	}
	if existing != nil {
		return apperrors.ErrOrganizationTypeNameExists
	}
	return nil
}

func (s *OrganizationTypeService) ensureSlugFree(slug string) error {
	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing organization type by slug: %w", err)
	}
	if existing != nil {
		return apperrors.ErrOrganizationTypeSlugExists
	}
	return nil
}

func toOrganizationTypeResponse(orgType *models.OrganizationType) *OrganizationTypeResponse {
	return &OrganizationTypeResponse{
		ID:           orgType.ID,
		Name:         orgType.Name,
		Slug:         orgType.Slug,
		DisplayName:  orgType.DisplayName,
		IconName:     orgType.IconName,
		DisplayOrder: orgType.DisplayOrder,
		Active:       orgType.Active,
		CreatedAt:    orgType.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toOrganizationTypeResponses(orgTypes []models.OrganizationType) []OrganizationTypeResponse {
	responses := make([]OrganizationTypeResponse, len(orgTypes))
	for i := range orgTypes {
		responses[i] = *toOrganizationTypeResponse(&orgTypes[i])
	}
	return responses
}

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

// AssignmentService handles assignments and the field values mirrored onto them
type AssignmentService struct {
	repo           repository.AssignmentRepositoryInterface
	valueRepo      repository.FieldValueRepositoryInterface
	definitionRepo repository.FieldDefinitionRepositoryInterface
	orgTypeRepo    repository.OrganizationTypeRepositoryInterface
	orgDetailRepo  repository.OrganizationDetailRepositoryInterface
	employeeRepo   repository.EmployeeRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	validator      *validator.Validate
}

// AssignmentRepositories groups the stores the assignment service reads and writes
type AssignmentRepositories struct {
	Assignments        repository.AssignmentRepositoryInterface
	FieldValues        repository.FieldValueRepositoryInterface
	FieldDefinitions   repository.FieldDefinitionRepositoryInterface
	OrganizationTypes  repository.OrganizationTypeRepositoryInterface
	OrganizationDetail repository.OrganizationDetailRepositoryInterface
	Employees          repository.EmployeeRepositoryInterface
	Users              repository.UserRepositoryInterface
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repos AssignmentRepositories, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:           repos.Assignments,
		valueRepo:      repos.FieldValues,
		definitionRepo: repos.FieldDefinitions,
		orgTypeRepo:    repos.OrganizationTypes,
		orgDetailRepo:  repos.OrganizationDetail,
		employeeRepo:   repos.Employees,
		userRepo:       repos.Users,
		validator:      validator,
	}
}

// CreateAssignmentRequest represents the request to create an assignment
type CreateAssignmentRequest struct {
	SubjectType          models.SubjectType `json:"subject_type" validate:"required"`
	SubjectID            uuid.UUID          `json:"subject_id" validate:"required"`
	OrganizationDetailID uuid.UUID          `json:"organization_detail_id" validate:"required"`
	OrganizationTypeID   uuid.UUID          `json:"organization_type_id" validate:"required"`
	FieldValues          map[string]bool    `json:"field_values"`
}

// UpdateAssignmentRequest replaces the field values of an assignment.
// Active fields missing from FieldValues are set to false.
type UpdateAssignmentRequest struct {
	FieldValues map[string]bool `json:"field_values"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID                   uuid.UUID          `json:"id"`
	SubjectType          models.SubjectType `json:"subject_type"`
	SubjectID            uuid.UUID          `json:"subject_id"`
	OrganizationDetailID uuid.UUID          `json:"organization_detail_id"`
	CreatedByID          *uuid.UUID         `json:"created_by_id,omitempty"`
	FieldValues          map[string]bool    `json:"field_values"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// AssignmentStatsResponse is the assignment count of one active organization type
type AssignmentStatsResponse struct {
	OrganizationTypeID uuid.UUID `json:"organization_type_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Count              int64     `json:"count"`
}

// Create assigns a subject to an organization detail and writes one value per
// active field of the organization type; fields not supplied default to false.
func (s *AssignmentService) Create(req *CreateAssignmentRequest, actorID *uuid.UUID) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if !req.SubjectType.IsValid() {
		return nil, apperrors.ErrInvalidSubjectType
	}

	if err := s.ensureSubjectExists(req.SubjectType, req.SubjectID); err != nil {
		return nil, err
	}

	detail, err := s.orgDetailRepo.GetByID(req.OrganizationDetailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationDetailNotFound
		}
		return nil, fmt.Errorf("failed to get organization detail: %w", err)
	}

	orgType, err := s.orgTypeRepo.GetByID(req.OrganizationTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}
	if detail.OrganizationType == nil || *detail.OrganizationType != orgType.Name {
		return nil, apperrors.ErrOrganizationTypeMismatch
	}

	exists, err := s.repo.ExistsForSubject(req.SubjectType, req.SubjectID, req.OrganizationDetailID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAssignmentExists
	}

	defs, err := s.definitionRepo.GetActiveByOrganizationType(orgType.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load field definitions: %w", err)
	}
	values, mirrored := mirrorValues(defs, req.FieldValues)

	assignment := &models.Assignment{
		SubjectType:          req.SubjectType,
		SubjectID:            req.SubjectID,
		OrganizationDetailID: req.OrganizationDetailID,
		CreatedByID:          actorID,
	}
	if err := s.repo.CreateWithValues(assignment, values); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAssignmentExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return toAssignmentResponse(assignment, mirrored), nil
}

// Update rewrites the values of every active field of the assignment's organization type
func (s *AssignmentService) Update(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	assignment, err := s.get(id)
	if err != nil {
		return nil, err
	}

	detail, err := s.orgDetailRepo.GetByID(assignment.OrganizationDetailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationDetailNotFound
		}
		return nil, fmt.Errorf("failed to get organization detail: %w", err)
	}
	if detail.OrganizationType == nil {
		return nil, apperrors.ErrOrganizationTypeNotFound
	}

	orgType, err := s.orgTypeRepo.GetByName(*detail.OrganizationType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}

	defs, err := s.definitionRepo.GetActiveByOrganizationType(orgType.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load field definitions: %w", err)
	}
	values, mirrored := mirrorValues(defs, req.FieldValues)

	if err := s.repo.UpdateValues(assignment.ID, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to update field values: %w", err)
	}

	return toAssignmentResponse(assignment, mirrored), nil
}

// GetByID retrieves an assignment with the values of its type's active fields
func (s *AssignmentService) GetByID(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.get(id)
	if err != nil {
		return nil, err
	}

	values, err := s.LoadFieldValues([]uuid.UUID{assignment.ID})
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment, values[assignment.ID]), nil
}

// Delete removes an assignment and its values
func (s *AssignmentService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// ListByOrganizationDetail lists the assignments of one organization detail
func (s *AssignmentService) ListByOrganizationDetail(orgDetailID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetByOrganizationDetailID(orgDetailID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return s.withValues(assignments)
}

// ListByOrganizationType lists a page of assignments whose organization detail has the type named by slug
func (s *AssignmentService) ListByOrganizationType(slug string, page, pageSize int) (*AssignmentListResponse, error) {
	orgType, err := s.orgTypeRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	assignments, total, err := s.repo.GetByOrganizationType(orgType.Name, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses, err := s.withValues(assignments)
	if err != nil {
		return nil, err
	}

	return &AssignmentListResponse{
		Assignments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Stats counts assignments for every active organization type; types without assignments report zero
func (s *AssignmentService) Stats() ([]AssignmentStatsResponse, error) {
	orgTypes, err := s.orgTypeRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active organization types: %w", err)
	}
	counts, err := s.repo.CountByOrganizationType()
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	stats := make([]AssignmentStatsResponse, len(orgTypes))
	for i, orgType := range orgTypes {
		stats[i] = AssignmentStatsResponse{
			OrganizationTypeID: orgType.ID,
			Name:               orgType.Name,
			Slug:               orgType.Slug,
			Count:              counts[orgType.Name],
		}
	}
	return stats, nil
}

// LoadFieldValues fetches the values of many assignments in one query, keyed by assignment then field key
func (s *AssignmentService) LoadFieldValues(assignmentIDs []uuid.UUID) (map[uuid.UUID]map[string]bool, error) {
	rows, err := s.valueRepo.GetByAssignmentIDs(assignmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load field values: %w", err)
	}

	values := make(map[uuid.UUID]map[string]bool, len(assignmentIDs))
	for _, row := range rows {
		byKey, ok := values[row.AssignmentID]
		if !ok {
			byKey = make(map[string]bool)
			values[row.AssignmentID] = byKey
		}
		byKey[row.FieldKey] = row.Value
	}
	return values, nil
}

func (s *AssignmentService) withValues(assignments []models.Assignment) ([]AssignmentResponse, error) {
	ids := make([]uuid.UUID, len(assignments))
	for i := range assignments {
		ids[i] = assignments[i].ID
	}

	values, err := s.LoadFieldValues(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i], values[assignments[i].ID])
	}
	return responses, nil
}

func (s *AssignmentService) get(id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

func (s *AssignmentService) ensureSubjectExists(subjectType models.SubjectType, subjectID uuid.UUID) error {
	var err error
	notFound := apperrors.ErrEmployeeNotFound
	switch subjectType {
	case models.SubjectTypeEmployee:
		_, err = s.employeeRepo.GetByID(subjectID)
	case models.SubjectTypeUser:
		_, err = s.userRepo.GetByID(subjectID)
		notFound = apperrors.ErrUserNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return fmt.Errorf("failed to get %s: %w", subjectType, err)
	}
	return nil
}

// mirrorValues builds one value per definition. Keys in supplied that match no
// active definition are ignored.
func mirrorValues(defs []models.AssignmentFieldDefinition, supplied map[string]bool) ([]models.AssignmentFieldValue, map[string]bool) {
	values := make([]models.AssignmentFieldValue, 0, len(defs))
	mirrored := make(map[string]bool, len(defs))
	for _, def := range defs {
		value := supplied[def.FieldKey]
		values = append(values, models.AssignmentFieldValue{
			FieldDefinitionID: def.ID,
			Value:             value,
		})
		mirrored[def.FieldKey] = value
	}
	return values, mirrored
}

func toAssignmentResponse(assignment *models.Assignment, values map[string]bool) *AssignmentResponse {
	if values == nil {
		values = map[string]bool{}
	}
	return &AssignmentResponse{
		ID:                   assignment.ID,
		SubjectType:          assignment.SubjectType,
		SubjectID:            assignment.SubjectID,
		OrganizationDetailID: assignment.OrganizationDetailID,
		CreatedByID:          assignment.CreatedByID,
		FieldValues:          values,
		CreatedAt:            assignment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            assignment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this organization type"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors.
// Import pipelines return it when a file cannot be processed at all.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationTypeNotFound   = &NotFoundError{Entity: "organization type"}
	ErrFieldDefinitionNotFound    = &NotFoundError{Entity: "assignment field definition"}
	ErrAssignmentNotFound         = &NotFoundError{Entity: "assignment"}
	ErrOrganizationDetailNotFound = &NotFoundError{Entity: "organization detail"}
	ErrEmployeeNotFound           = &NotFoundError{Entity: "employee"}
	ErrUserNotFound               = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrOrganizationTypeNameExists = &AlreadyExistsError{Entity: "organization type", Context: "with this name"}
	ErrOrganizationTypeSlugExists = &AlreadyExistsError{Entity: "organization type slug", Context: "with this value"}
	ErrFieldDefinitionExists      = &AlreadyExistsError{Entity: "assignment field", Context: "with this key for this organization type"}
	ErrAssignmentExists           = &AlreadyExistsError{Entity: "assignment", Context: "for this subject and organization"}
)

// Schema Invariant Errors
var (
	ErrOrganizationTypeMismatch = &ValidationError{Field: "organization_type_id", Message: "organization detail belongs to a different organization type"}
	ErrInvalidSubjectType       = &ValidationError{Field: "subject_type", Message: "must be one of: employee, user"}
)

// Import Configuration Errors
var (
	ErrEmptyImportFile       = &ConfigurationError{Message: "CSV file is empty or has no headers"}
	ErrUnsupportedImportFile = &ConfigurationError{Message: "uploaded file is not a delimited text file"}
	ErrImportFileTooLarge    = &ConfigurationError{Message: "uploaded file exceeds the maximum allowed size"}
)

// Authentication Errors
var (
	ErrActorNotFound = &AuthenticationError{Message: "acting user not found in request context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewMissingColumnsError reports required logical fields that no header could be mapped to
func NewMissingColumnsError(fields []string) error {
	return &ConfigurationError{Message: fmt.Sprintf("CSV must contain columns for: %v", fields)}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "assignment"}
		assert.Equal(t, "assignment not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "assignment"}
		err2 := &NotFoundError{Entity: "assignment"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrAssignmentNotFound, ErrOrganizationTypeNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load: %w", ErrFieldDefinitionNotFound)
		assert.True(t, errors.Is(wrapped, ErrFieldDefinitionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationDetailNotFound))
		assert.False(t, IsNotFound(ErrFieldDefinitionExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "assignment field already exists with this key for this organization type", ErrFieldDefinitionExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "assignment"}
		assert.Equal(t, "assignment already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAssignmentExists))
		assert.False(t, IsAlreadyExists(ErrAssignmentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("field_key", "is required")
		assert.Equal(t, "validation error: field_key - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewValidationError("", "bad input")
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("organization type mismatch is a validation error", func(t *testing.T) {
		wrapped := fmt.Errorf("create assignment: %w", ErrOrganizationTypeMismatch)
		assert.True(t, IsValidation(wrapped))
		assert.True(t, errors.Is(wrapped, ErrOrganizationTypeMismatch))
		assert.False(t, errors.Is(wrapped, ErrInvalidSubjectType))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Run("missing columns message", func(t *testing.T) {
		err := NewMissingColumnsError([]string{"email", "employeeId"})
		assert.Equal(t, "CSV must contain columns for: [email employeeId]", err.Error())
		assert.True(t, IsConfiguration(err))
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrEmptyImportFile))
		assert.False(t, IsConfiguration(ErrAssignmentExists))
	})
}

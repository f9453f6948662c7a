package handlers

import (
	"net/http"
	"strconv"

	"assignment-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FieldDefinitionHandler handles HTTP requests for assignment field definitions
type FieldDefinitionHandler struct {
	service service.FieldDefinitionServiceInterface
}

// NewFieldDefinitionHandler creates a new field definition handler
func NewFieldDefinitionHandler(service service.FieldDefinitionServiceInterface) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{service: service}
}

// ListFields handles GET /organization-types/:id/fields
// @Summary List fields of an organization type
// @Description Active fields in display order; all=true also returns deactivated fields
// @Tags fields
// @Produce json
// @Param id path string true "Organization type ID (UUID)"
// @Param all query bool false "Include deactivated fields" default(false)
// @Success 200 {array} service.FieldDefinitionResponse "Successfully retrieved fields"
// @Failure 400 {object} ErrorResponse "Invalid organization type ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization-types/{id}/fields [get]
func (h *FieldDefinitionHandler) ListFields(c *gin.Context) {
	orgTypeID, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	var (
		fields []service.FieldDefinitionResponse
		err    error
	)
	if all {
		fields, err = h.service.ListAll(orgTypeID)
	} else {
		fields, err = h.service.ListActive(orgTypeID)
	}
	if err != nil {
		respondError(c, err, "Failed to get fields")
		return
	}
	c.JSON(http.StatusOK, fields)
}

// ListFieldsBySlug handles GET /organization-types/by-slug/:slug/fields
// @Summary List active fields by organization type slug
// @Tags fields
// @Produce json
// @Param slug path string true "Organization type slug"
// @Success 200 {array} service.FieldDefinitionResponse "Successfully retrieved fields"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/by-slug/{slug}/fields [get]
func (h *FieldDefinitionHandler) ListFieldsBySlug(c *gin.Context) {
	fields, err := h.service.ListActiveBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get fields")
		return
	}
	c.JSON(http.StatusOK, fields)
}

// CreateField handles POST /fields
// @Summary Create a field
// @Description Add a boolean capability field to an organization type; the key must be unique within the type
// @Tags fields
// @Accept json
// @Produce json
// @Param field body service.CreateFieldDefinitionRequest true "Field data"
// @Success 201 {object} service.FieldDefinitionResponse "Successfully created field"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Failure 409 {object} ErrorResponse "Field key already used by this organization type"
// @Security BearerAuth
// @Router /fields [post]
func (h *FieldDefinitionHandler) CreateField(c *gin.Context) {
	var req service.CreateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	field, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create field")
		return
	}
	c.JSON(http.StatusCreated, field)
}

// GetField handles GET /fields/:id
// @Summary Get field by ID
// @Tags fields
// @Produce json
// @Param id path string true "Field ID (UUID)"
// @Success 200 {object} service.FieldDefinitionResponse "Successfully retrieved field"
// @Failure 400 {object} ErrorResponse "Invalid field ID"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Security BearerAuth
// @Router /fields/{id} [get]
func (h *FieldDefinitionHandler) GetField(c *gin.Context) {
	id, ok := parseID(c, "id", "field")
	if !ok {
		return
	}

	field, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get field")
		return
	}
	c.JSON(http.StatusOK, field)
}

// UpdateField handles PUT /fields/:id
// @Summary Update field
// @Description Partially update a field; active=true reactivates a deactivated field
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID (UUID)"
// @Param field body service.UpdateFieldDefinitionRequest true "Fields to change"
// @Success 200 {object} service.FieldDefinitionResponse "Successfully updated field"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Failure 409 {object} ErrorResponse "Field key already used by this organization type"
// @Security BearerAuth
// @Router /fields/{id} [put]
func (h *FieldDefinitionHandler) UpdateField(c *gin.Context) {
	id, ok := parseID(c, "id", "field")
	if !ok {
		return
	}

	var req service.UpdateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	field, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update field")
		return
	}
	c.JSON(http.StatusOK, field)
}

// DeactivateField handles DELETE /fields/:id
// @Summary Deactivate field
// @Description Hide a field from new and updated assignments; stored values are kept
// @Tags fields
// @Param id path string true "Field ID (UUID)"
// @Success 204 "Field deactivated"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Security BearerAuth
// @Router /fields/{id} [delete]
func (h *FieldDefinitionHandler) DeactivateField(c *gin.Context) {
	id, ok := parseID(c, "id", "field")
	if !ok {
		return
	}

	if err := h.service.SoftDelete(id); err != nil {
		respondError(c, err, "Failed to deactivate field")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteField handles DELETE /fields/:id/hard
// @Summary Delete field permanently
// @Description Remove a field together with every value stored for it
// @Tags fields
// @Param id path string true "Field ID (UUID)"
// @Success 204 "Field deleted"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Security BearerAuth
// @Router /fields/{id}/hard [delete]
func (h *FieldDefinitionHandler) DeleteField(c *gin.Context) {
	id, ok := parseID(c, "id", "field")
	if !ok {
		return
	}

	if err := h.service.HardDelete(id); err != nil {
		respondError(c, err, "Failed to delete field")
		return
	}
	c.Status(http.StatusNoContent)
}

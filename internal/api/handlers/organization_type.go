package handlers

import (
	"net/http"

	"assignment-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationTypeHandler handles HTTP requests for organization types
type OrganizationTypeHandler struct {
	service service.OrganizationTypeServiceInterface
}

// NewOrganizationTypeHandler creates a new organization type handler
func NewOrganizationTypeHandler(service service.OrganizationTypeServiceInterface) *OrganizationTypeHandler {
	return &OrganizationTypeHandler{service: service}
}

// ListOrganizationTypes handles GET /organization-types
// @Summary List organization types
// @Description Get every organization type, active or not, in display order
// @Tags organization-types
// @Produce json
// @Success 200 {array} service.OrganizationTypeResponse "Successfully retrieved organization types"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization-types [get]
func (h *OrganizationTypeHandler) ListOrganizationTypes(c *gin.Context) {
	types, err := h.service.GetAll()
	if err != nil {
		respondError(c, err, "Failed to get organization types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListActiveOrganizationTypes handles GET /organization-types/active
// @Summary List active organization types
// @Tags organization-types
// @Produce json
// @Success 200 {array} service.OrganizationTypeResponse "Successfully retrieved organization types"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization-types/active [get]
func (h *OrganizationTypeHandler) ListActiveOrganizationTypes(c *gin.Context) {
	types, err := h.service.GetActive()
	if err != nil {
		respondError(c, err, "Failed to get organization types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateOrganizationType handles POST /organization-types
// @Summary Create an organization type
// @Description Create a new organization type; name and slug must be unique
// @Tags organization-types
// @Accept json
// @Produce json
// @Param organizationType body service.CreateOrganizationTypeRequest true "Organization type data"
// @Success 201 {object} service.OrganizationTypeResponse "Successfully created organization type"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Name or slug already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization-types [post]
func (h *OrganizationTypeHandler) CreateOrganizationType(c *gin.Context) {
	var req service.CreateOrganizationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orgType, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create organization type")
		return
	}
	c.JSON(http.StatusCreated, orgType)
}

// GetOrganizationType handles GET /organization-types/:id
// @Summary Get organization type by ID
// @Tags organization-types
// @Produce json
// @Param id path string true "Organization type ID (UUID)"
// @Success 200 {object} service.OrganizationTypeResponse "Successfully retrieved organization type"
// @Failure 400 {object} ErrorResponse "Invalid organization type ID"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/{id} [get]
func (h *OrganizationTypeHandler) GetOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	orgType, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get organization type")
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// GetOrganizationTypeBySlug handles GET /organization-types/by-slug/:slug
// @Summary Get organization type by slug
// @Tags organization-types
// @Produce json
// @Param slug path string true "Organization type slug"
// @Success 200 {object} service.OrganizationTypeResponse "Successfully retrieved organization type"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/by-slug/{slug} [get]
func (h *OrganizationTypeHandler) GetOrganizationTypeBySlug(c *gin.Context) {
	orgType, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get organization type")
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// UpdateOrganizationType handles PUT /organization-types/:id
// @Summary Update organization type
// @Description Partially update an organization type; setting active=false hides it
// @Tags organization-types
// @Accept json
// @Produce json
// @Param id path string true "Organization type ID (UUID)"
// @Param organizationType body service.UpdateOrganizationTypeRequest true "Fields to change"
// @Success 200 {object} service.OrganizationTypeResponse "Successfully updated organization type"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Failure 409 {object} ErrorResponse "Name or slug already in use"
// @Security BearerAuth
// @Router /organization-types/{id} [put]
func (h *OrganizationTypeHandler) UpdateOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	var req service.UpdateOrganizationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orgType, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization type")
		return
	}
	c.JSON(http.StatusOK, orgType)
}

// DeleteOrganizationType handles DELETE /organization-types/:id
// @Summary Deactivate organization type
// @Tags organization-types
// @Param id path string true "Organization type ID (UUID)"
// @Success 204 "Organization type deactivated"
// @Failure 400 {object} ErrorResponse "Invalid organization type ID"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /organization-types/{id} [delete]
func (h *OrganizationTypeHandler) DeleteOrganizationType(c *gin.Context) {
	id, ok := parseID(c, "id", "organization type")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete organization type")
		return
	}
	c.Status(http.StatusNoContent)
}

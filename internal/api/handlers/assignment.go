package handlers

import (
	"net/http"
	"strconv"

	"assignment-admin-backend/internal/auth"
	"assignment-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for assignments
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ListAssignments handles GET /assignments
// @Summary List assignments of an organization type
// @Description Page through assignments whose organization detail belongs to the type with the given slug
// @Tags assignments
// @Produce json
// @Param org_type_slug query string true "Organization type slug"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssignmentListResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Missing organization type slug"
// @Failure 404 {object} ErrorResponse "Organization type not found"
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	slug := c.Query("org_type_slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "org_type_slug query parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.service.ListByOrganizationType(slug, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get assignments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAssignmentStats handles GET /assignments/stats
// @Summary Assignment counts per organization type
// @Description Number of assignments for every active organization type, zero included
// @Tags assignments
// @Produce json
// @Success 200 {array} service.AssignmentStatsResponse "Successfully counted assignments"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/stats [get]
func (h *AssignmentHandler) GetAssignmentStats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		respondError(c, err, "Failed to count assignments")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListAssignmentsByOrganizationDetail handles GET /assignments/by-org-detail/:id
// @Summary List assignments of an organization detail
// @Tags assignments
// @Produce json
// @Param id path string true "Organization detail ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid organization detail ID"
// @Security BearerAuth
// @Router /assignments/by-org-detail/{id} [get]
func (h *AssignmentHandler) ListAssignmentsByOrganizationDetail(c *gin.Context) {
	detailID, ok := parseID(c, "id", "organization detail")
	if !ok {
		return
	}

	assignments, err := h.service.ListByOrganizationDetail(detailID)
	if err != nil {
		respondError(c, err, "Failed to get assignments")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment handles POST /assignments
// @Summary Create an assignment
// @Description Assign an employee or user to an organization detail. One value is stored for every active field of the organization type; omitted fields are false.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request or organization type mismatch"
// @Failure 404 {object} ErrorResponse "Subject, organization detail or organization type not found"
// @Failure 409 {object} ErrorResponse "Subject already assigned to this organization detail"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	actorID, _ := auth.GetActorID(c)
	assignment, err := h.service.Create(&req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create assignment")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// GetAssignment handles GET /assignments/:id
// @Summary Get assignment by ID
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully retrieved assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := parseID(c, "id", "assignment")
	if !ok {
		return
	}

	assignment, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// UpdateAssignment handles PUT /assignments/:id
// @Summary Update assignment field values
// @Description Rewrite the value of every active field; omitted fields become false
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateAssignmentRequest true "Field values"
// @Success 200 {object} service.AssignmentResponse "Successfully updated assignment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseID(c, "id", "assignment")
	if !ok {
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /assignments/:id
// @Summary Delete assignment
// @Tags assignments
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment deleted"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c, "id", "assignment")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete assignment")
		return
	}
	c.Status(http.StatusNoContent)
}

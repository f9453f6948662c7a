package handlers

import (
	"net/http"

	"assignment-admin-backend/internal/ingest"
	"assignment-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler handles CSV uploads
type ImportHandler struct {
	service service.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(service service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportEmployees handles POST /employees/import
// @Summary Import employees from CSV
// @Description Comma or pipe delimited file with a header row. Rows that fail are skipped and logged.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResponse "Import finished"
// @Failure 400 {object} ErrorResponse "File missing, empty, not delimited text or lacking required columns"
// @Security BearerAuth
// @Router /employees/import [post]
func (h *ImportHandler) ImportEmployees(c *gin.Context) {
	h.importFile(c, ingest.KindEmployee)
}

// ImportUsers handles POST /users/import
// @Summary Import users from CSV
// @Description Requires email, employee id, first name and last name columns. Passwords are stored hashed.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResponse "Import finished"
// @Failure 400 {object} ErrorResponse "File missing, empty, not delimited text or lacking required columns"
// @Security BearerAuth
// @Router /users/import [post]
func (h *ImportHandler) ImportUsers(c *gin.Context) {
	h.importFile(c, ingest.KindUser)
}

// ImportOrganizationDetails handles POST /organization-details/import
// @Summary Import organization details from CSV
// @Description All columns are optional; spreadsheet error markers and overlong values are stored as empty.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResponse "Import finished"
// @Failure 400 {object} ErrorResponse "File missing, empty or not delimited text"
// @Security BearerAuth
// @Router /organization-details/import [post]
func (h *ImportHandler) ImportOrganizationDetails(c *gin.Context) {
	h.importFile(c, ingest.KindOrganizationDetail)
}

func (h *ImportHandler) importFile(c *gin.Context, kind ingest.Kind) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading CSV file", "details": err.Error()})
		return
	}
	defer file.Close()

	resp, err := h.service.Import(c.Request.Context(), kind, header.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to import "+kind.Noun())
		return
	}
	c.JSON(http.StatusOK, resp)
}

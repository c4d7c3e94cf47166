package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docreview/internal/service"
)

// ExportHandler handles export download and upload endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Text handles GET /api/v1/sessions/:id/export/text
// Responds with a zip archive of one text file per document.
func (h *ExportHandler) Text(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.TextArchive(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondArtifact(c, artifact)
}

// CSV handles GET /api/v1/sessions/:id/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.CSV(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondArtifact(c, artifact)
}

// XLSX handles GET /api/v1/sessions/:id/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.XLSX(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondArtifact(c, artifact)
}

// Upload handles POST /api/v1/sessions/:id/export/upload
func (h *ExportHandler) Upload(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	results, err := h.exportService.Upload(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	uploaded := 0
	for _, r := range results {
		if r.Success {
			uploaded++
		}
	}
	RespondOK(c, gin.H{"results": results, "uploaded": uploaded})
}

func respondArtifact(c *gin.Context, artifact *service.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}

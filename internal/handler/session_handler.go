package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreview/internal/review"
	"docreview/internal/service"
)

// SessionHandler handles review session endpoints.
type SessionHandler struct {
	reviewService service.ReviewService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(reviewService service.ReviewService) *SessionHandler {
	return &SessionHandler{reviewService: reviewService}
}

// maxBatchBytes bounds the accepted extraction payload size.
const maxBatchBytes = 32 << 20

// Create handles POST /api/v1/sessions
// The request body is the raw extraction batch JSON produced upstream.
func (h *SessionHandler) Create(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBatchBytes))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to read request body")
		return
	}

	sess, err := h.reviewService.CreateSession(payload)
	if err != nil {
		HandleError(c, err)
		return
	}

	batch := sess.Store.Snapshot()
	RespondCreated(c, gin.H{
		"session_id": sess.ID,
		"documents":  len(batch.Documents),
		"pages":      batch.PageCount(),
		"created_at": sess.CreatedAt,
	})
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	sess, err := h.reviewService.GetSession(sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	batch := sess.Store.Snapshot()
	names := make([]string, 0, len(batch.Documents))
	for i := range batch.Documents {
		names = append(names, batch.Documents[i].Filename)
	}

	RespondOK(c, gin.H{
		"session_id":    sess.ID,
		"documents":     names,
		"pages":         batch.PageCount(),
		"edited_fields": batch.EditCount(),
		"has_edits":     batch.HasEdits(),
		"created_at":    sess.CreatedAt,
	})
}

// Field handles GET /api/v1/sessions/:id/documents/:doc/pages/:page/fields/:field
func (h *SessionHandler) Field(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}
	page, ok := parsePageNumber(c)
	if !ok {
		return
	}

	field, err := h.reviewService.FieldValue(sessionID, c.Param("doc"), page, c.Param("field"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"value":           field.Value,
		"confidence":      field.Confidence,
		"manually_edited": field.ManuallyEdited,
	})
}

// PageError handles GET /api/v1/sessions/:id/documents/:doc/pages/:page/error
func (h *SessionHandler) PageError(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}
	page, ok := parsePageNumber(c)
	if !ok {
		return
	}

	msg, failed, err := h.reviewService.PageError(sessionID, c.Param("doc"), page)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"failed": failed, "error": msg})
}

// ApplyEdits handles POST /api/v1/sessions/:id/edits
func (h *SessionHandler) ApplyEdits(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req struct {
		Edits []review.Edit `json:"edits" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "edits array is required")
		return
	}

	applied, err := h.reviewService.ApplyEdits(sessionID, req.Edits)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"edited_fields": applied})
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	h.reviewService.DeleteSession(sessionID)
	RespondOK(c, gin.H{"deleted": true})
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

func parsePageNumber(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "page must be an integer")
		return 0, false
	}
	return page, true
}

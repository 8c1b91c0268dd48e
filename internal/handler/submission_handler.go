package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-review/internal/domain"
	"museum-review/internal/service"
)

// SubmissionHandler handles the public submission form.
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit handles POST /api/v1/submissions. The form carries a JSON "payload"
// field and the "similarity_report" and "ai_report" files.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	payload := c.PostForm("payload")
	if payload == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payload is required"})
		return
	}

	var submission domain.Submission
	if err := json.Unmarshal([]byte(payload), &submission); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payload must be valid JSON"})
		return
	}

	// Reports only ever come from the file parts.
	var err error
	if submission.SimilarityReport, err = readUpload(c, "similarity_report"); err != nil {
		respondError(c, err, "read similarity report")
		return
	}
	if submission.AIReport, err = readUpload(c, "ai_report"); err != nil {
		respondError(c, err, "read ai report")
		return
	}

	article, err := h.submissionService.Submit(c.Request.Context(), &submission)
	if err != nil {
		respondError(c, err, "submit article")
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

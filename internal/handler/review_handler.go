package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-review/internal/middleware"
	"museum-review/internal/service"
)

// ReviewHandler handles the reviewer dashboard requests. Routes are mounted
// behind middleware.RequireSession.
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RejectRequest is the body of a reject call.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// EditRequest is the body of an edit call. Absent fields are left unchanged.
type EditRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListStages handles GET /api/v1/review/stages
func (h *ReviewHandler) ListStages(c *gin.Context) {
	stages, err := h.reviewService.Stages(middleware.GetSession(c))
	if err != nil {
		respondError(c, err, "list stages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": toStageResponses(stages)})
}

// ListPending handles GET /api/v1/review/stages/:stage/articles
func (h *ReviewHandler) ListPending(c *gin.Context) {
	articles, err := h.reviewService.ListPending(c.Request.Context(), middleware.GetSession(c), c.Param("stage"))
	if err != nil {
		respondError(c, err, "list pending articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": toArticleResponses(articles, toArticleResponse)})
}

// GetArticle handles GET /api/v1/review/articles/:id
func (h *ReviewHandler) GetArticle(c *gin.Context) {
	article, err := h.reviewService.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve article")
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Approve handles POST /api/v1/review/stages/:stage/articles/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	result, err := h.reviewService.Approve(c.Request.Context(), middleware.GetSession(c), c.Param("stage"), c.Param("id"))
	if err != nil {
		respondError(c, err, "approve article")
		return
	}
	c.JSON(http.StatusOK, toTransitionResponse(result))
}

// Reject handles POST /api/v1/review/stages/:stage/articles/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be JSON with a reason"})
		return
	}

	result, err := h.reviewService.Reject(c.Request.Context(), middleware.GetSession(c), c.Param("stage"), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err, "reject article")
		return
	}
	c.JSON(http.StatusOK, toTransitionResponse(result))
}

// Edit handles PATCH /api/v1/review/articles/:id
func (h *ReviewHandler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be JSON"})
		return
	}

	article, err := h.reviewService.Edit(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.Title, req.Description)
	if err != nil {
		respondError(c, err, "edit article")
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"museum-review/internal/domain"
	"museum-review/internal/keywords"
	"museum-review/internal/middleware"
	"museum-review/internal/service"
)

// PublicationHandler handles the final archive and publication stage.
type PublicationHandler struct {
	publicationService service.PublicationServiceInterface
}

// NewPublicationHandler creates a new PublicationHandler.
func NewPublicationHandler(publicationService service.PublicationServiceInterface) *PublicationHandler {
	return &PublicationHandler{publicationService: publicationService}
}

// RemoveTagsRequest is the body of a tag removal.
type RemoveTagsRequest struct {
	Tags []string `json:"tags"`
}

// KeywordsResponse is returned by the keyword extraction endpoint.
type KeywordsResponse struct {
	Article    ArticleResponse  `json:"article"`
	Tags       []string         `json:"tags"`
	Extraction *keywords.Result `json:"extraction,omitempty"`
}

// ExtractKeywords handles POST /api/v1/review/publication/articles/:id/keywords
// with an optional "document" file and a comma-separated "manual" field.
func (h *PublicationHandler) ExtractKeywords(c *gin.Context) {
	document, err := readUpload(c, "document")
	if err != nil {
		respondError(c, err, "read document")
		return
	}

	result, err := h.publicationService.ExtractKeywords(c.Request.Context(), middleware.GetSession(c), c.Param("id"), document, c.PostForm("manual"))
	if err != nil {
		respondError(c, err, "extract keywords")
		return
	}

	c.JSON(http.StatusOK, KeywordsResponse{
		Article:    toArticleResponse(result.Article),
		Tags:       result.Tags,
		Extraction: result.Extraction,
	})
}

// RemoveTags handles DELETE /api/v1/review/publication/articles/:id/tags
func (h *PublicationHandler) RemoveTags(c *gin.Context) {
	var req RemoveTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Tags) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tags is required"})
		return
	}

	article, err := h.publicationService.RemoveTags(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.Tags)
	if err != nil {
		respondError(c, err, "remove tags")
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Publish handles POST /api/v1/review/publication/articles/:id/publish. The
// form carries the "archive" PDF, optional "manual" tags and
// "publish_without_keywords" to confirm an untagged publication.
func (h *PublicationHandler) Publish(c *gin.Context) {
	archive, err := readUpload(c, "archive")
	if err != nil {
		respondError(c, err, "read archive")
		return
	}

	allowEmpty := false
	if raw := c.PostForm("publish_without_keywords"); raw != "" {
		if allowEmpty, err = strconv.ParseBool(raw); err != nil {
			respondError(c, domain.NewValidationError("publish_without_keywords", "invalid_boolean"), "publish article")
			return
		}
	}

	article, err := h.publicationService.Publish(c.Request.Context(), middleware.GetSession(c), c.Param("id"), service.PublishRequest{
		Archive:        archive,
		Manual:         c.PostForm("manual"),
		AllowEmptyTags: allowEmpty,
	})
	if err != nil {
		respondError(c, err, "publish article")
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

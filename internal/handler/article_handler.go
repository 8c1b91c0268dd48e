package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-review/internal/service"
)

// ArticleHandler serves published articles to the public site.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListPublished handles GET /api/v1/articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	articles, err := h.articleService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err, "list articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": toArticleResponses(articles, toPublicArticleResponse)})
}

// GetPublished handles GET /api/v1/articles/:id
func (h *ArticleHandler) GetPublished(c *gin.Context) {
	article, err := h.articleService.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve article")
		return
	}
	c.JSON(http.StatusOK, toPublicArticleResponse(article))
}

package service

import (
	"context"
	"fmt"

	"museum-review/internal/domain"
	"museum-review/internal/repository"
)

// ArticleService serves published articles to the public site.
type ArticleService struct {
	repo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

// ListPublished returns published articles, newest first.
func (s *ArticleService) ListPublished(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.repo.ListByStatus(ctx, domain.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return articles, nil
}

// GetPublished returns the article only once it is published; anything else
// is reported as not found.
func (s *ArticleService) GetPublished(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.StatusPublished {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

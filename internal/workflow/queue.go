package workflow

import (
	"context"
	"fmt"

	"museum-review/internal/domain"
	"museum-review/internal/metrics"
	"museum-review/internal/repository"
)

// Queue lists the articles awaiting a stage. Every call reads the store.
type Queue struct {
	repo repository.ArticleRepository
}

// NewQueue creates a reviewer queue over repo.
func NewQueue(repo repository.ArticleRepository) *Queue {
	return &Queue{repo: repo}
}

// ListPending returns the articles whose status is status (or one of its
// legacy spellings), newest submission first.
func (q *Queue) ListPending(ctx context.Context, status domain.Status) ([]domain.Article, error) {
	if !domain.IsValidStatus(status) {
		return nil, domain.NewValidationError("status", "invalid_status")
	}
	articles, err := q.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list %s articles: %w", status, err)
	}
	metrics.SetQueuePending(string(status), len(articles))
	return articles, nil
}

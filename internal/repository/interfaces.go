package repository

import (
	"context"

	"museum-review/internal/domain"
)

// ArticleRepository is the durable Article Store.
//
// Implementations store canonical status values and translate legacy values
// on read. Status filters passed in are canonical; implementations expand them
// with domain.AliasesOf before querying.
type ArticleRepository interface {
	// Insert stores a new article.
	Insert(ctx context.Context, article *domain.Article) error
	// Get returns the article or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Article, error)
	// ListByStatus returns articles in any of statuses, newest first, ties
	// broken by id.
	ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Article, error)
	// Update applies patch atomically when the stored status is one of
	// expected (any status when expected is empty). It returns
	// domain.ErrNotFound for a missing article and domain.ErrConflict when the
	// status predicate does not hold.
	Update(ctx context.Context, id string, patch domain.ArticlePatch, expected ...domain.Status) (*domain.Article, error)
}

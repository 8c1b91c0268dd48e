package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"museum-review/internal/domain"
)

// MemoryArticleRepository keeps articles in process memory. It honours the
// same conditional-update contract as the durable stores.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
	now      func() time.Time
}

// NewMemoryArticleRepository creates an empty in-memory store.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles: make(map[string]domain.Article),
		now:      time.Now,
	}
}

// Insert stores a copy of article.
func (r *MemoryArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.articles[article.ID]; exists {
		return fmt.Errorf("insert article %s: duplicate id", article.ID)
	}
	r.articles[article.ID] = clone(*article)
	return nil
}

// Get returns a copy of the stored article.
func (r *MemoryArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := clone(a)
	return &out, nil
}

// ListByStatus returns matching articles, newest first, ties broken by id.
func (r *MemoryArticleRepository) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Article, 0)
	for _, a := range r.articles {
		if len(statuses) == 0 || statusIn(a.Status, statuses) {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update applies patch while holding the write lock, so the status and
// version checks and the write are atomic.
func (r *MemoryArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, expected ...domain.Status) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if len(expected) > 0 && !statusIn(a.Status, expected) {
		return nil, domain.ErrConflict
	}
	if !patch.Unmodified(&a) {
		return nil, domain.ErrConflict
	}

	patch.Apply(&a)
	a.UpdatedAt = domain.NextUpdatedAt(r.now(), a.UpdatedAt, time.Nanosecond)
	r.articles[id] = a

	out := clone(a)
	return &out, nil
}

func statusIn(status domain.Status, set []domain.Status) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func clone(a domain.Article) domain.Article {
	a.Authors = append([]domain.Author(nil), a.Authors...)
	if a.Tags != nil {
		a.Tags = append([]string{}, a.Tags...)
	}
	return a
}

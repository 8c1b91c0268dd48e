package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-review/internal/domain"
	"museum-review/internal/repository"
)

func TestMemoryArticleRepository(t *testing.T) {
	var repo *repository.MemoryArticleRepository
	proxy := &swappableRepo{}
	reset := func(t *testing.T) {
		repo = repository.NewMemoryArticleRepository()
		proxy.ArticleRepository = repo
	}
	reset(t)

	runArticleRepositoryContract(t, proxy, reset)
}

func TestMemoryArticleRepository_ReturnsCopies(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	ctx := context.Background()

	a := newArticle("Copper Plates", domain.StatusSubmitted, time.Now())
	a.Tags = []string{"copper"}
	require.NoError(t, repo.Insert(ctx, a))

	a.Title = "mutated after insert"
	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Copper Plates", got.Title)

	got.Tags[0] = "mutated"
	again, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"copper"}, again.Tags)
}

func TestMemoryArticleRepository_DuplicateInsert(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	ctx := context.Background()

	a := newArticle("Twice", domain.StatusSubmitted, time.Now())
	require.NoError(t, repo.Insert(ctx, a))
	assert.Error(t, repo.Insert(ctx, a))
}

func TestMemoryArticleRepository_CancelledContext(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListByStatus(ctx, domain.StatusSubmitted)
	assert.ErrorIs(t, err, context.Canceled)
}

// swappableRepo lets the contract suite swap in a fresh store on reset.
type swappableRepo struct {
	repository.ArticleRepository
}

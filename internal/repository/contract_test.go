package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-review/internal/domain"
	"museum-review/internal/repository"
)

func newArticle(title string, status domain.Status, createdAt time.Time) *domain.Article {
	return &domain.Article{
		ID:    uuid.New().String(),
		Title: title,
		Authors: []domain.Author{
			{Name: "Asha Rao", Email: "asha@christuniversity.in", Designation: "Professor"},
			{Name: "Vikram Iyer", Email: "vikram@christuniversity.in", Designation: "Student"},
		},
		NumAuthors:           2,
		SubmitterEmail:       "asha@christuniversity.in",
		Description:          "A study of palm-leaf manuscripts",
		Keywords:             "manuscripts, conservation",
		SimilarityReportURL:  "http://files.local/reports/sim.pdf",
		AIReportURL:          "http://files.local/reports/ai.pdf",
		OriginalityConfirmed: true,
		FileURL:              "https://docs.google.com/document/d/abc",
		Status:               status,
		CreatedAt:            createdAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:            createdAt.UTC().Truncate(time.Millisecond),
	}
}

// runArticleRepositoryContract exercises the behaviour every store must share.
// reset must leave the store empty.
func runArticleRepositoryContract(t *testing.T, repo repository.ArticleRepository, reset func(t *testing.T)) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("insert and get round trip", func(t *testing.T) {
		reset(t)
		a := newArticle("Temple Bells", domain.StatusSubmitted, base)
		require.NoError(t, repo.Insert(ctx, a))

		got, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Title, got.Title)
		assert.Equal(t, a.Authors, got.Authors)
		assert.Equal(t, domain.StatusSubmitted, got.Status)
		assert.True(t, got.OriginalityConfirmed)
		assert.True(t, a.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get missing article", func(t *testing.T) {
		reset(t)
		_, err := repo.Get(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list by status is newest first with id tiebreak", func(t *testing.T) {
		reset(t)
		older := newArticle("Older", domain.StatusSubmitted, base)
		newer := newArticle("Newer", domain.StatusSubmitted, base.Add(time.Hour))
		tieA := newArticle("Tie A", domain.StatusSubmitted, base.Add(30*time.Minute))
		tieB := newArticle("Tie B", domain.StatusSubmitted, base.Add(30*time.Minute))
		other := newArticle("Other stage", domain.StatusAdminApproved, base.Add(2*time.Hour))
		for _, a := range []*domain.Article{older, newer, tieA, tieB, other} {
			require.NoError(t, repo.Insert(ctx, a))
		}

		got, err := repo.ListByStatus(ctx, domain.StatusSubmitted)
		require.NoError(t, err)
		require.Len(t, got, 4)

		first, second := tieA.ID, tieB.ID
		if second < first {
			first, second = second, first
		}
		assert.Equal(t, []string{newer.ID, first, second, older.ID},
			[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("list by status with no matches", func(t *testing.T) {
		reset(t)
		got, err := repo.ListByStatus(ctx, domain.StatusPublished)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("conditional update succeeds on matching status", func(t *testing.T) {
		reset(t)
		a := newArticle("Bronze Casting", domain.StatusSubmitted, base)
		require.NoError(t, repo.Insert(ctx, a))

		next := domain.StatusAdminApproved
		got, err := repo.Update(ctx, a.ID, domain.ArticlePatch{Status: &next}, domain.StatusSubmitted)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAdminApproved, got.Status)
		assert.Equal(t, a.Title, got.Title)
	})

	t.Run("conditional update conflicts on other status", func(t *testing.T) {
		reset(t)
		a := newArticle("Bronze Casting", domain.StatusITApproved, base)
		require.NoError(t, repo.Insert(ctx, a))

		next := domain.StatusAdminApproved
		_, err := repo.Update(ctx, a.ID, domain.ArticlePatch{Status: &next}, domain.StatusSubmitted)
		assert.ErrorIs(t, err, domain.ErrConflict)

		stored, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusITApproved, stored.Status)
	})

	t.Run("update missing article", func(t *testing.T) {
		reset(t)
		title := "x"
		_, err := repo.Update(ctx, uuid.New().String(), domain.ArticlePatch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update writes tags and file url together", func(t *testing.T) {
		reset(t)
		a := newArticle("Stone Inscriptions", domain.StatusLitApproved, base)
		require.NoError(t, repo.Insert(ctx, a))

		published := domain.StatusPublished
		fileURL := "http://files.local/articles/final.pdf"
		got, err := repo.Update(ctx, a.ID, domain.ArticlePatch{
			Status:  &published,
			SetTags: true,
			Tags:    []string{"Chola", "inscriptions"},
			FileURL: &fileURL,
		}, domain.StatusLitApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, got.Status)
		assert.Equal(t, []string{"Chola", "inscriptions"}, got.Tags)
		assert.Equal(t, fileURL, got.FileURL)
	})

	t.Run("concurrent conditional updates have one winner", func(t *testing.T) {
		reset(t)
		a := newArticle("Race", domain.StatusSubmitted, base)
		require.NoError(t, repo.Insert(ctx, a))

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				next := domain.StatusAdminApproved
				_, err := repo.Update(ctx, a.ID, domain.ArticlePatch{Status: &next}, domain.StatusSubmitted)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var ok, conflicts int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, domain.ErrConflict):
				conflicts++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, workers-1, conflicts)
	})

	t.Run("update with a stale version conflicts", func(t *testing.T) {
		reset(t)
		a := newArticle("Bronze Lamps", domain.StatusLitApproved, base)
		require.NoError(t, repo.Insert(ctx, a))

		read, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)

		first, err := repo.Update(ctx, a.ID, domain.ArticlePatch{
			SetTags:           true,
			Tags:              []string{"bronze"},
			ExpectedUpdatedAt: &read.UpdatedAt,
		}, domain.StatusLitApproved)
		require.NoError(t, err)
		assert.True(t, first.UpdatedAt.After(read.UpdatedAt))

		_, err = repo.Update(ctx, a.ID, domain.ArticlePatch{
			SetTags:           true,
			Tags:              []string{"lamps"},
			ExpectedUpdatedAt: &read.UpdatedAt,
		}, domain.StatusLitApproved)
		assert.ErrorIs(t, err, domain.ErrConflict)

		fresh, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"bronze"}, fresh.Tags)

		second, err := repo.Update(ctx, a.ID, domain.ArticlePatch{
			SetTags:           true,
			Tags:              []string{"bronze", "lamps"},
			ExpectedUpdatedAt: &fresh.UpdatedAt,
		}, domain.StatusLitApproved)
		require.NoError(t, err)
		assert.Equal(t, []string{"bronze", "lamps"}, second.Tags)
	})

	t.Run("concurrent versioned updates have one winner", func(t *testing.T) {
		reset(t)
		a := newArticle("Palm Leaves", domain.StatusLitApproved, base)
		require.NoError(t, repo.Insert(ctx, a))
		read, err := repo.Get(ctx, a.ID)
		require.NoError(t, err)

		const workers = 6
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, a.ID, domain.ArticlePatch{
					SetTags:           true,
					Tags:              []string{"palm", uuid.NewString()},
					ExpectedUpdatedAt: &read.UpdatedAt,
				}, domain.StatusLitApproved)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var ok int
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrConflict)
		}
		assert.Equal(t, 1, ok)
	})
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"museum-review/internal/domain"
)

var articleColumns = []string{
	"id", "title", "authors", "num_authors", "submitter_email", "description",
	"keywords", "similarity_report_url", "ai_report_url", "originality_confirmed",
	"file_url", "status", "tags", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Insert stores a new article.
func (r *PostgresArticleRepository) Insert(ctx context.Context, a *domain.Article) error {
	authors, err := json.Marshal(a.Authors)
	if err != nil {
		return fmt.Errorf("encode authors: %w", err)
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psql.Insert("articles").
		Columns(articleColumns...).
		Values(a.ID, a.Title, string(authors), a.NumAuthors, a.SubmitterEmail, a.Description,
			a.Keywords, a.SimilarityReportURL, a.AIReportURL, a.OriginalityConfirmed,
			a.FileURL, string(a.Status), tags, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Get returns a single article.
func (r *PostgresArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	query, args, err := psql.Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// ListByStatus returns articles in any of statuses (and their legacy
// spellings), newest first.
func (r *PostgresArticleRepository) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Article, error) {
	builder := psql.Select(articleColumns...).
		From("articles").
		OrderBy("created_at DESC", "id ASC")
	if len(statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": domain.AliasesOf(statuses...)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// Update applies patch in a single conditional statement. The status and
// updated_at predicates and the write happen atomically, so two reviewers racing on the
// same article cannot both succeed.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, expected ...domain.Status) (*domain.Article, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	builder := psql.Update("articles").
		Set("updated_at", sq.Expr("GREATEST(clock_timestamp(), updated_at + INTERVAL '1 microsecond')")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(articleColumns, ", "))
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.SetTags {
		tags := patch.Tags
		if tags == nil {
			tags = []string{}
		}
		builder = builder.Set("tags", tags)
	}
	if patch.FileURL != nil {
		builder = builder.Set("file_url", *patch.FileURL)
	}
	if len(expected) > 0 {
		builder = builder.Where(sq.Eq{"status": domain.AliasesOf(expected...)})
	}
	if patch.ExpectedUpdatedAt != nil {
		builder = builder.Where(sq.Eq{"updated_at": *patch.ExpectedUpdatedAt})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.missOrConflict(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

func (r *PostgresArticleRepository) missOrConflict(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		a       domain.Article
		authors []byte
		status  string
	)
	err := row.Scan(&a.ID, &a.Title, &authors, &a.NumAuthors, &a.SubmitterEmail, &a.Description,
		&a.Keywords, &a.SimilarityReportURL, &a.AIReportURL, &a.OriginalityConfirmed,
		&a.FileURL, &status, &a.Tags, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(authors, &a.Authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	if a.Status, err = domain.ParseStatus(status); err != nil {
		return nil, fmt.Errorf("article %s: %w", a.ID, err)
	}
	return &a, nil
}

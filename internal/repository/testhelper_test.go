package repository_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"museum-review/internal/infrastructure/database"
)

// museumDB is a migrated museum_review database in a throwaway container.
type museumDB struct {
	Pool *pgxpool.Pool
}

// setupMuseumDB starts PostgreSQL, applies the service's own migrations with
// the same code the server runs at startup, and tears everything down when
// the test ends.
func setupMuseumDB(t *testing.T) *museumDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("museum_review_test"),
		postgres.WithUsername("museum"),
		postgres.WithPassword("museum"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}
	if err := database.Migrate(connStr, migrationsDir); err != nil {
		t.Fatalf("Failed to migrate museum schema: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.HealthCheck(ctx, pool); err != nil {
		t.Fatalf("Database not healthy: %v", err)
	}
	return &museumDB{Pool: pool}
}

// TruncateArticles empties the articles table between subtests.
func (db *museumDB) TruncateArticles(t *testing.T) {
	t.Helper()
	if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE articles"); err != nil {
		t.Fatalf("Failed to truncate articles: %v", err)
	}
}

// InsertRawArticle writes a row with a literal status string, bypassing the
// repository so older status spellings can be stored.
func (db *museumDB) InsertRawArticle(t *testing.T, status string, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO articles (id, title, authors, num_authors, originality_confirmed, status, created_at, updated_at)
		VALUES ($1, 'Legacy row', '[{"name":"Old Author","email":"old@christuniversity.in","designation":"Staff"}]', 1, true, $2, $3, $3)
	`, id, status, createdAt)
	if err != nil {
		t.Fatalf("Failed to insert %s article: %v", status, err)
	}
	return id
}

// StoredStatus reads the literal status column of an article.
func (db *museumDB) StoredStatus(t *testing.T, id string) string {
	t.Helper()
	var status string
	if err := db.Pool.QueryRow(context.Background(), `SELECT status FROM articles WHERE id = $1`, id).Scan(&status); err != nil {
		t.Fatalf("Failed to read status of %s: %v", id, err)
	}
	return status
}

package service

import (
	"context"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/workflow"
)

// SubmissionServiceInterface defines the public submission operation.
// Used for dependency injection and mocking in tests.
type SubmissionServiceInterface interface {
	// Submit validates the form, stores the reports and creates the article.
	Submit(ctx context.Context, submission *domain.Submission) (*domain.Article, error)
}

// ArticleServiceInterface defines the public read operations.
type ArticleServiceInterface interface {
	// ListPublished returns published articles, newest first.
	ListPublished(ctx context.Context) ([]domain.Article, error)
	// GetPublished returns a published article.
	GetPublished(ctx context.Context, id string) (*domain.Article, error)
}

// ReviewServiceInterface defines the reviewer operations.
type ReviewServiceInterface interface {
	// Stages returns the stages the session may act on.
	Stages(session *auth.Session) ([]workflow.Stage, error)
	// ListPending returns the queue of a stage.
	ListPending(ctx context.Context, session *auth.Session, stage string) ([]domain.Article, error)
	// Get returns any article to an authenticated reviewer.
	Get(ctx context.Context, session *auth.Session, id string) (*domain.Article, error)
	// Approve moves an article to the stage's next status.
	Approve(ctx context.Context, session *auth.Session, stage, id string) (*workflow.TransitionResult, error)
	// Reject moves an article to the stage's rejection status.
	Reject(ctx context.Context, session *auth.Session, stage, id, reason string) (*workflow.TransitionResult, error)
	// Edit changes title and description without a status change.
	Edit(ctx context.Context, session *auth.Session, id string, title, description *string) (*domain.Article, error)
}

// PublicationServiceInterface defines the final-stage operations.
type PublicationServiceInterface interface {
	// ExtractKeywords merges candidate tags from an optional document and
	// manual additions into the article's tags.
	ExtractKeywords(ctx context.Context, session *auth.Session, id string, document *domain.Upload, manual string) (*KeywordsResult, error)
	// RemoveTags drops tags chosen by the reviewer.
	RemoveTags(ctx context.Context, session *auth.Session, id string, tags []string) (*domain.Article, error)
	// Publish uploads the archival PDF and publishes the article.
	Publish(ctx context.Context, session *auth.Session, id string, req PublishRequest) (*domain.Article, error)
}

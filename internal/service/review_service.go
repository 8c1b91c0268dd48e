package service

import (
	"context"
	"fmt"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/repository"
	"museum-review/internal/workflow"
)

// ReviewService runs the per-stage reviewer actions. Every operation takes
// the caller's session and authorizes it against the stage table.
type ReviewService struct {
	repo   repository.ArticleRepository
	table  *workflow.Table
	queue  *workflow.Queue
	engine *workflow.Engine
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ArticleRepository, table *workflow.Table, engine *workflow.Engine) *ReviewService {
	return &ReviewService{
		repo:   repo,
		table:  table,
		queue:  workflow.NewQueue(repo),
		engine: engine,
	}
}

// Stages returns the stages the session may act on.
func (s *ReviewService) Stages(session *auth.Session) ([]workflow.Stage, error) {
	if err := workflow.AuthorizeAny(session); err != nil {
		return nil, err
	}
	return s.table.VisibleTo(session), nil
}

// ListPending returns the articles awaiting stage.
func (s *ReviewService) ListPending(ctx context.Context, session *auth.Session, stageName string) ([]domain.Article, error) {
	stage, err := s.authorizedStage(session, stageName)
	if err != nil {
		return nil, err
	}
	return s.queue.ListPending(ctx, stage.CurrentStatus)
}

// Get returns an article to any authenticated reviewer.
func (s *ReviewService) Get(ctx context.Context, session *auth.Session, id string) (*domain.Article, error) {
	if err := workflow.AuthorizeAny(session); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Approve moves the article to the stage's next status. The publication
// stage is approved only through Publish, which carries the archive.
func (s *ReviewService) Approve(ctx context.Context, session *auth.Session, stageName, id string) (*workflow.TransitionResult, error) {
	stage, err := s.authorizedStage(session, stageName)
	if err != nil {
		return nil, err
	}
	if stage.RequiresArchive {
		return nil, &domain.InvalidTransitionError{
			ArticleID: id,
			From:      stage.CurrentStatus,
			To:        stage.NextStatus,
			Reason:    "publication requires the archival PDF",
		}
	}

	req := workflow.StageRequest(stage, workflow.ActionApprove, id)
	req.Actor = session.Email
	return s.engine.Transition(ctx, req)
}

// Reject moves the article to the stage's rejection status and schedules the
// rejection email.
func (s *ReviewService) Reject(ctx context.Context, session *auth.Session, stageName, id, reason string) (*workflow.TransitionResult, error) {
	stage, err := s.authorizedStage(session, stageName)
	if err != nil {
		return nil, err
	}
	if !stage.CanReject() {
		return nil, &domain.InvalidTransitionError{
			ArticleID: id,
			From:      stage.CurrentStatus,
			Reason:    fmt.Sprintf("stage %s has no rejection", stage.Name),
		}
	}

	req := workflow.StageRequest(stage, workflow.ActionReject, id)
	req.Reason = reason
	req.Actor = session.Email
	return s.engine.Transition(ctx, req)
}

// Edit changes title and description of an article sitting in a stage the
// session reviews.
func (s *ReviewService) Edit(ctx context.Context, session *auth.Session, id string, title, description *string) (*domain.Article, error) {
	if err := workflow.AuthorizeAny(session); err != nil {
		return nil, err
	}
	article, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stage, ok := s.table.ForStatus(article.Status)
	if !ok {
		return nil, &domain.InvalidTransitionError{
			ArticleID: id,
			From:      article.Status,
			Reason:    "article is final and can no longer be edited",
		}
	}
	if err := workflow.Authorize(session, stage); err != nil {
		return nil, err
	}
	// The write only lands while the article is still in the stage the
	// session was authorized for.
	return s.engine.Edit(ctx, id, article.Status, title, description)
}

func (s *ReviewService) authorizedStage(session *auth.Session, name string) (workflow.Stage, error) {
	if err := workflow.AuthorizeAny(session); err != nil {
		return workflow.Stage{}, err
	}
	stage, ok := s.table.Lookup(name)
	if !ok {
		return workflow.Stage{}, fmt.Errorf("stage %q: %w", name, domain.ErrNotFound)
	}
	if err := workflow.Authorize(session, stage); err != nil {
		return workflow.Stage{}, err
	}
	return stage, nil
}

package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"museum-review/internal/domain"
	"museum-review/internal/events"
	"museum-review/internal/logger"
	"museum-review/internal/metrics"
	"museum-review/internal/notification"
	"museum-review/internal/repository"
)

// Action is a reviewer decision.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Notifier schedules rejection emails without blocking the caller.
type Notifier interface {
	Enqueue(article domain.Article, reason string) notification.Outcome
}

// TransitionRequest describes one status change.
type TransitionRequest struct {
	ArticleID string
	Action    Action
	Current   domain.Status
	Next      domain.Status
	Rejection domain.Status
	Reason    string

	// Stage and Actor are recorded on the emitted event and in logs.
	Stage string
	Actor string

	// Patch carries fields written in the same statement as the status,
	// e.g. tags and the archival file URL on publication. Its Status is
	// ignored.
	Patch domain.ArticlePatch
}

// StageRequest builds a request for stage. The caller fills in reason, actor
// and any bundled patch.
func StageRequest(stage Stage, action Action, articleID string) TransitionRequest {
	return TransitionRequest{
		ArticleID: articleID,
		Action:    action,
		Current:   stage.CurrentStatus,
		Next:      stage.NextStatus,
		Rejection: stage.RejectionStatus,
		Stage:     stage.Name,
	}
}

// TransitionResult is the committed outcome of a transition.
type TransitionResult struct {
	Article *domain.Article
	From    domain.Status
	// Notification is set for rejections only.
	Notification notification.Outcome
}

// Engine validates and applies status changes. The store's conditional
// update is the only concurrency guard.
type Engine struct {
	repo      repository.ArticleRepository
	notifier  Notifier
	publisher events.Publisher
}

// NewEngine creates a new transition engine.
func NewEngine(repo repository.ArticleRepository, notifier Notifier, publisher events.Publisher) *Engine {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Engine{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Transition applies an approve or reject action.
func (e *Engine) Transition(ctx context.Context, req TransitionRequest) (*TransitionResult, error) {
	timer := metrics.NewTimer()
	log := logger.WithArticleID(req.ArticleID).With(
		slog.String("stage", req.Stage),
		slog.String("action", string(req.Action)),
	)

	target, err := validateRequest(req)
	if err != nil {
		e.observe(req, "invalid_transition", timer)
		return nil, err
	}

	patch := req.Patch
	patch.Status = &target

	// A started write must complete even if the client goes away.
	writeCtx := context.WithoutCancel(ctx)
	updated, err := e.repo.Update(writeCtx, req.ArticleID, patch, req.Current)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			err = e.classifyConflict(writeCtx, req.ArticleID, req.Current)
		}
		e.observe(req, resultLabel(err), timer)
		log.Info("Transition refused", slog.String("error", err.Error()))
		return nil, err
	}

	e.observe(req, "success", timer)
	log.Info("Article transitioned",
		slog.String("from", string(req.Current)),
		slog.String("to", string(target)),
		slog.String("actor", req.Actor),
	)

	result := &TransitionResult{Article: updated, From: req.Current}
	if req.Action == ActionReject && e.notifier != nil {
		result.Notification = e.notifier.Enqueue(*updated, strings.TrimSpace(req.Reason))
	}

	e.publish(writeCtx, events.StatusChanged{
		ArticleID: updated.ID,
		Title:     updated.Title,
		From:      req.Current,
		To:        target,
		Stage:     req.Stage,
		Actor:     req.Actor,
		Reason:    strings.TrimSpace(req.Reason),
		Timestamp: time.Now().UTC(),
	})

	return result, nil
}

// Edit changes title and/or description of an article that is still in
// expected, the status the caller was authorized for. It never touches
// status.
func (e *Engine) Edit(ctx context.Context, articleID string, expected domain.Status, title, description *string) (*domain.Article, error) {
	if domain.IsTerminal(expected) {
		return nil, &domain.InvalidTransitionError{
			ArticleID: articleID,
			From:      expected,
			Reason:    "article is final and can no longer be edited",
		}
	}

	patch := domain.ArticlePatch{}
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return nil, domain.NewValidationError("title", "title_required")
		}
		patch.Title = &t
	}
	if description != nil {
		d := strings.TrimSpace(*description)
		patch.Description = &d
	}
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("patch", "nothing_to_update")
	}

	writeCtx := context.WithoutCancel(ctx)
	updated, err := e.repo.Update(writeCtx, articleID, patch, expected)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, e.classifyConflict(writeCtx, articleID, expected)
		}
		return nil, fmt.Errorf("edit article: %w", err)
	}

	logger.WithArticleID(articleID).Info("Article edited",
		slog.Bool("title", patch.Title != nil),
		slog.Bool("description", patch.Description != nil),
	)
	return updated, nil
}

func validateRequest(req TransitionRequest) (domain.Status, error) {
	invalid := func(to domain.Status, reason string) error {
		return &domain.InvalidTransitionError{ArticleID: req.ArticleID, From: req.Current, To: to, Reason: reason}
	}

	if !domain.IsValidStatus(req.Current) {
		return "", invalid("", fmt.Sprintf("unknown status %q", req.Current))
	}
	if domain.IsTerminal(req.Current) {
		return "", invalid("", "status is terminal")
	}
	successor, _ := domain.Successor(req.Current)

	switch req.Action {
	case ActionApprove:
		if req.Next != successor {
			return "", invalid(req.Next, fmt.Sprintf("next status must be %s", successor))
		}
		return req.Next, nil
	case ActionReject:
		rejection, ok := domain.RejectionFor(successor)
		if !ok {
			return "", invalid(req.Rejection, "stage has no rejection branch")
		}
		if req.Rejection != rejection {
			return "", invalid(req.Rejection, fmt.Sprintf("rejection status must be %s", rejection))
		}
		if strings.TrimSpace(req.Reason) == "" {
			return "", invalid(req.Rejection, "a rejection reason is required")
		}
		return req.Rejection, nil
	default:
		return "", invalid("", fmt.Sprintf("unknown action %q", req.Action))
	}
}

// classifyConflict explains why the conditional update matched nothing.
func (e *Engine) classifyConflict(ctx context.Context, articleID string, expected domain.Status) error {
	current, err := e.repo.Get(ctx, articleID)
	if err != nil {
		return err
	}
	if err := RequireStatus(current, expected); err != nil {
		return err
	}
	// Matched on re-read: the write lost a race, so report it as stale.
	return &domain.StaleStateError{ArticleID: articleID, Expected: expected, Actual: current.Status}
}

// RequireStatus checks that article is still in expected. A terminal article
// yields an InvalidTransitionError, any other mismatch a StaleStateError.
func RequireStatus(article *domain.Article, expected domain.Status) error {
	if article.Status == expected {
		return nil
	}
	if domain.IsTerminal(article.Status) {
		return &domain.InvalidTransitionError{
			ArticleID: article.ID,
			From:      article.Status,
			Reason:    "status is terminal",
		}
	}
	return &domain.StaleStateError{ArticleID: article.ID, Expected: expected, Actual: article.Status}
}

func (e *Engine) publish(ctx context.Context, event events.StatusChanged) {
	if err := e.publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.WithArticleID(event.ArticleID).Warn("Failed to publish status event",
			slog.String("error", err.Error()))
	}
}

func (e *Engine) observe(req TransitionRequest, result string, timer *metrics.Timer) {
	stage := req.Stage
	if stage == "" {
		stage = string(req.Current)
	}
	metrics.ObserveTransition(stage, string(req.Action), result, timer.Elapsed().Seconds())
}

func resultLabel(err error) string {
	var stale *domain.StaleStateError
	var invalid *domain.InvalidTransitionError
	switch {
	case errors.As(err, &stale):
		return "stale_state"
	case errors.As(err, &invalid):
		return "invalid_transition"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

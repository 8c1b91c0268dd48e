package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"museum-review/internal/domain"
	"museum-review/internal/events"
	"museum-review/internal/logger"
	"museum-review/internal/metrics"
	"museum-review/internal/repository"
	"museum-review/internal/storage"
	"museum-review/internal/validator"
)

// SubmissionService accepts articles from the public form.
type SubmissionService struct {
	repo      repository.ArticleRepository
	store     storage.Store
	validator *validator.Validator
	publisher events.Publisher
	now       func() time.Time
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	repo repository.ArticleRepository,
	store storage.Store,
	v *validator.Validator,
	publisher events.Publisher,
) *SubmissionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &SubmissionService{
		repo:      repo,
		store:     store,
		validator: v,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit validates the submission before any write, uploads both reports and
// stores the article as SUBMITTED.
func (s *SubmissionService) Submit(ctx context.Context, sub *domain.Submission) (*domain.Article, error) {
	if err := s.validator.ValidateSubmission(sub); err != nil {
		metrics.ObserveSubmission("invalid")
		return nil, validator.ConvertValidationErrors(err)
	}

	similarityURL, err := s.upload(ctx, sub.SimilarityReport)
	if err != nil {
		metrics.ObserveSubmission("error")
		return nil, fmt.Errorf("upload similarity report: %w", err)
	}
	aiURL, err := s.upload(ctx, sub.AIReport)
	if err != nil {
		metrics.ObserveSubmission("error")
		return nil, fmt.Errorf("upload ai report: %w", err)
	}

	now := s.now().UTC()
	authors := make([]domain.Author, len(sub.Authors))
	for i, a := range sub.Authors {
		authors[i] = domain.Author{
			Name:        strings.TrimSpace(a.Name),
			Email:       strings.TrimSpace(a.Email),
			Designation: strings.TrimSpace(a.Designation),
		}
	}
	article := &domain.Article{
		ID:                   uuid.New().String(),
		Title:                strings.TrimSpace(sub.Title),
		Authors:              authors,
		NumAuthors:           sub.NumAuthors,
		SubmitterEmail:       strings.TrimSpace(sub.SubmitterEmail),
		Description:          strings.TrimSpace(sub.Description),
		Keywords:             strings.TrimSpace(sub.Keywords),
		SimilarityReportURL:  similarityURL,
		AIReportURL:          aiURL,
		OriginalityConfirmed: true,
		FileURL:              strings.TrimSpace(sub.DocumentURL),
		Status:               domain.StatusSubmitted,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Insert(ctx, article); err != nil {
		metrics.ObserveSubmission("error")
		return nil, fmt.Errorf("store submission: %w", err)
	}
	metrics.ObserveSubmission("accepted")

	logger.WithArticleID(article.ID).Info("Article submitted",
		slog.Int("num_authors", article.NumAuthors),
		slog.String("submitter", article.SubmitterEmail),
	)

	if err := s.publisher.PublishStatusChanged(ctx, events.StatusChanged{
		ArticleID: article.ID,
		Title:     article.Title,
		To:        domain.StatusSubmitted,
		Actor:     article.SubmitterEmail,
		Timestamp: now,
	}); err != nil {
		logger.WithArticleID(article.ID).Warn("Failed to publish status event", slog.String("error", err.Error()))
	}

	return article, nil
}

func (s *SubmissionService) upload(ctx context.Context, u *domain.Upload) (string, error) {
	contentType := u.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	return s.store.Upload(ctx, storage.ObjectPath(storage.PrefixReports, u.Filename), u.Data, contentType)
}

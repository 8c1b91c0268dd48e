package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/keywords"
	"museum-review/internal/logger"
	"museum-review/internal/metrics"
	"museum-review/internal/repository"
	"museum-review/internal/storage"
	"museum-review/internal/textextract"
	"museum-review/internal/workflow"
)

// KeywordsResult is the article after a keyword run, plus the extraction
// statistics when a document was analysed.
type KeywordsResult struct {
	Article    *domain.Article  `json:"article"`
	Tags       []string         `json:"tags"`
	Extraction *keywords.Result `json:"extraction,omitempty"`
}

// PublishRequest carries the final-stage inputs.
type PublishRequest struct {
	// Archive is the final PDF. It replaces the submitted document URL.
	Archive *domain.Upload
	// Manual is a comma-separated list of reviewer tags.
	Manual string
	// AllowEmptyTags confirms publishing an article without any tag.
	AllowEmptyTags bool
}

// PublicationService runs the final stage: tag curation and publication.
type PublicationService struct {
	repo      repository.ArticleRepository
	table     *workflow.Table
	engine    *workflow.Engine
	extractor textextract.Extractor
	store     storage.Store
}

// NewPublicationService creates a new PublicationService.
func NewPublicationService(
	repo repository.ArticleRepository,
	table *workflow.Table,
	engine *workflow.Engine,
	extractor textextract.Extractor,
	store storage.Store,
) *PublicationService {
	return &PublicationService{
		repo:      repo,
		table:     table,
		engine:    engine,
		extractor: extractor,
		store:     store,
	}
}

// ExtractKeywords merges the article's tags, the submitter keywords,
// candidates extracted from document (optional) and manual tags, and saves
// the result on the article.
func (s *PublicationService) ExtractKeywords(ctx context.Context, session *auth.Session, id string, document *domain.Upload, manual string) (*KeywordsResult, error) {
	stage, article, err := s.pendingArticle(ctx, session, id)
	if err != nil {
		return nil, err
	}

	var extraction *keywords.Result
	if document != nil {
		kind := textextract.Kind(document.Filename, document.ContentType)
		text, err := s.extractor.ExtractText(document.Filename, document.Data, document.ContentType)
		if err != nil {
			metrics.ObserveKeywordExtraction(kind, "error", 0)
			return nil, err
		}
		result := keywords.Analyze(text)
		metrics.ObserveKeywordExtraction(kind, "success", len(result.Candidates))
		extraction = &result
	}

	var candidates []string
	if extraction != nil {
		candidates = extraction.Candidates
	}
	tags := keywords.Combine(article.Tags, article.Keywords, candidates, manual)

	updated, err := s.saveTags(ctx, stage, article, tags)
	if err != nil {
		return nil, err
	}

	log := logger.WithArticleID(id).With(slog.Int("tags", len(tags)))
	if extraction != nil {
		log = log.With(slog.Int("candidates", len(extraction.Candidates)), slog.Int("word_count", extraction.WordCount))
	}
	log.Info("Keywords merged")

	return &KeywordsResult{Article: updated, Tags: updated.Tags, Extraction: extraction}, nil
}

// RemoveTags drops the given tags from an article awaiting publication.
func (s *PublicationService) RemoveTags(ctx context.Context, session *auth.Session, id string, drop []string) (*domain.Article, error) {
	stage, article, err := s.pendingArticle(ctx, session, id)
	if err != nil {
		return nil, err
	}
	return s.saveTags(ctx, stage, article, keywords.Remove(article.Tags, drop))
}

// Publish uploads the archival PDF and moves the article to PUBLISHED with
// its final tags and file URL in one conditional write.
func (s *PublicationService) Publish(ctx context.Context, session *auth.Session, id string, req PublishRequest) (*domain.Article, error) {
	if req.Archive == nil || len(req.Archive.Data) == 0 {
		return nil, domain.NewValidationError("archive", "archive_required")
	}
	if textextract.Kind(req.Archive.Filename, req.Archive.ContentType) != "pdf" {
		return nil, domain.NewValidationError("archive", "archive_must_be_pdf")
	}

	stage, article, err := s.pendingArticle(ctx, session, id)
	if err != nil {
		return nil, err
	}

	tags := keywords.Combine(article.Tags, article.Keywords, nil, req.Manual)
	if len(tags) == 0 && !req.AllowEmptyTags {
		return nil, domain.NewValidationError("tags", "tags_empty_unconfirmed")
	}

	fileURL, err := s.store.Upload(ctx, storage.ObjectPath(storage.PrefixArticles, req.Archive.Filename), req.Archive.Data, textextract.MimePDF)
	if err != nil {
		return nil, fmt.Errorf("upload archive: %w", err)
	}

	transition := workflow.StageRequest(stage, workflow.ActionApprove, id)
	transition.Actor = session.Email
	transition.Patch = domain.ArticlePatch{
		Tags:              tags,
		SetTags:           true,
		FileURL:           &fileURL,
		ExpectedUpdatedAt: &article.UpdatedAt,
	}

	result, err := s.engine.Transition(ctx, transition)
	if err != nil {
		return nil, err
	}
	return result.Article, nil
}

// pendingArticle authorizes the session for the publication stage and loads
// an article that is still waiting in it.
func (s *PublicationService) pendingArticle(ctx context.Context, session *auth.Session, id string) (workflow.Stage, *domain.Article, error) {
	if err := workflow.AuthorizeAny(session); err != nil {
		return workflow.Stage{}, nil, err
	}
	stage, ok := s.table.Publication()
	if !ok {
		return workflow.Stage{}, nil, fmt.Errorf("publication stage: %w", domain.ErrNotFound)
	}
	if err := workflow.Authorize(session, stage); err != nil {
		return workflow.Stage{}, nil, err
	}

	article, err := s.repo.Get(ctx, id)
	if err != nil {
		return workflow.Stage{}, nil, err
	}
	if err := workflow.RequireStatus(article, stage.CurrentStatus); err != nil {
		return workflow.Stage{}, nil, err
	}
	return stage, article, nil
}

// saveTags writes tags computed from article. The write is refused when the
// article changed since it was read, so a concurrent tag save is never
// overwritten; the caller re-fetches and merges again.
func (s *PublicationService) saveTags(ctx context.Context, stage workflow.Stage, article *domain.Article, tags []string) (*domain.Article, error) {
	patch := domain.ArticlePatch{Tags: tags, SetTags: true, ExpectedUpdatedAt: &article.UpdatedAt}
	updated, err := s.repo.Update(context.WithoutCancel(ctx), article.ID, patch, stage.CurrentStatus)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, fmt.Errorf("save tags: %w", err)
	}

	current, getErr := s.repo.Get(ctx, article.ID)
	if getErr != nil {
		return nil, getErr
	}
	if err := workflow.RequireStatus(current, stage.CurrentStatus); err != nil {
		return nil, err
	}
	return nil, &domain.StaleStateError{ArticleID: article.ID, Expected: stage.CurrentStatus, Actual: current.Status}
}

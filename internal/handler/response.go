package handler

import (
	"museum-review/internal/domain"
	"museum-review/internal/workflow"
)

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Authors              []domain.Author `json:"authors"`
	NumAuthors           int             `json:"num_authors"`
	SubmitterEmail       string          `json:"submitter_email,omitempty"`
	Description          string          `json:"description"`
	Keywords             string          `json:"keywords"`
	SimilarityReportURL  string          `json:"similarity_report_url,omitempty"`
	AIReportURL          string          `json:"ai_report_url,omitempty"`
	OriginalityConfirmed bool            `json:"originality_confirmed"`
	FileURL              string          `json:"file_url"`
	Status               string          `json:"status"`
	Tags                 []string        `json:"tags"`
	CreatedAt            string          `json:"created_at"`
	UpdatedAt            string          `json:"updated_at,omitempty"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	response := ArticleResponse{
		ID:                   a.ID,
		Title:                a.Title,
		Authors:              a.Authors,
		NumAuthors:           a.NumAuthors,
		SubmitterEmail:       a.SubmitterEmail,
		Description:          a.Description,
		Keywords:             a.Keywords,
		SimilarityReportURL:  a.SimilarityReportURL,
		AIReportURL:          a.AIReportURL,
		OriginalityConfirmed: a.OriginalityConfirmed,
		FileURL:              a.FileURL,
		Status:               string(a.Status),
		Tags:                 tags,
		CreatedAt:            a.CreatedAt.Format(TimeFormat),
	}
	if !a.UpdatedAt.IsZero() {
		response.UpdatedAt = a.UpdatedAt.Format(TimeFormat)
	}
	return response
}

// toPublicArticleResponse hides reviewer-only fields.
func toPublicArticleResponse(a *domain.Article) ArticleResponse {
	response := toArticleResponse(a)
	response.SubmitterEmail = ""
	response.SimilarityReportURL = ""
	response.AIReportURL = ""
	response.Authors = make([]domain.Author, len(a.Authors))
	for i, author := range a.Authors {
		response.Authors[i] = domain.Author{Name: author.Name, Designation: author.Designation}
	}
	return response
}

func toArticleResponses(articles []domain.Article, convert func(*domain.Article) ArticleResponse) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, convert(&articles[i]))
	}
	return out
}

// TransitionResponse is returned by approve and reject.
type TransitionResponse struct {
	Article      ArticleResponse `json:"article"`
	From         string          `json:"from"`
	Notification string          `json:"notification,omitempty"`
}

func toTransitionResponse(r *workflow.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Article:      toArticleResponse(r.Article),
		From:         string(r.From),
		Notification: string(r.Notification),
	}
}

// StageResponse describes a stage to reviewer clients.
type StageResponse struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	CurrentStatus   string `json:"current_status"`
	NextStatus      string `json:"next_status"`
	RejectionStatus string `json:"rejection_status,omitempty"`
	RequiresArchive bool   `json:"requires_archive"`
}

func toStageResponses(stages []workflow.Stage) []StageResponse {
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, StageResponse{
			Name:            s.Name,
			Title:           s.Title,
			CurrentStatus:   string(s.CurrentStatus),
			NextStatus:      string(s.NextStatus),
			RejectionStatus: string(s.RejectionStatus),
			RequiresArchive: s.RequiresArchive,
		})
	}
	return out
}

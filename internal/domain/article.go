package domain

import (
	"strings"
	"time"
)

// MaxAuthors is the largest author list a submission may carry.
const MaxAuthors = 10

// Author is one contributor listed on a submission.
type Author struct {
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Designation string `json:"designation" bson:"designation"`
}

// Article represents a submitted article moving through the review pipeline.
type Article struct {
	ID                   string    `json:"id" bson:"_id"`
	Title                string    `json:"title" bson:"title"`
	Authors              []Author  `json:"authors" bson:"authors"`
	NumAuthors           int       `json:"num_authors" bson:"num_authors"`
	SubmitterEmail       string    `json:"submitter_email" bson:"submitter_email"`
	Description          string    `json:"description" bson:"description"`
	Keywords             string    `json:"keywords" bson:"keywords"`
	SimilarityReportURL  string    `json:"similarity_report_url" bson:"similarity_report_url"`
	AIReportURL          string    `json:"ai_report_url" bson:"ai_report_url"`
	OriginalityConfirmed bool      `json:"originality_confirmed" bson:"originality_confirmed"`
	FileURL              string    `json:"file_url" bson:"file_url"`
	Status               Status    `json:"status" bson:"status"`
	Tags                 []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}

// AuthorNames returns the author names joined the way they appear on the
// public site ("Ada Lovelace, Charles Babbage").
func (a *Article) AuthorNames() string {
	names := make([]string, 0, len(a.Authors))
	for _, author := range a.Authors {
		names = append(names, author.Name)
	}
	return strings.Join(names, ", ")
}

// RecipientEmail resolves where review correspondence goes: the submitter
// email, or the first author's email when the submitter left it blank.
func (a *Article) RecipientEmail() string {
	if email := strings.TrimSpace(a.SubmitterEmail); email != "" {
		return email
	}
	for _, author := range a.Authors {
		if email := strings.TrimSpace(author.Email); email != "" {
			return email
		}
	}
	return ""
}

// RecipientName is the first token of the author name field before any comma.
func (a *Article) RecipientName() string {
	first, _, _ := strings.Cut(a.AuthorNames(), ",")
	return strings.TrimSpace(first)
}

// ArticlePatch describes a partial update. Nil fields are left untouched.
type ArticlePatch struct {
	Title       *string
	Description *string
	Status      *Status
	Tags        []string
	SetTags     bool
	FileURL     *string

	// ExpectedUpdatedAt is a precondition, not a write: when set, the update
	// only applies if the stored UpdatedAt still equals it.
	ExpectedUpdatedAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && !p.SetTags && p.FileURL == nil
}

// Unmodified reports whether a stored article still satisfies the
// ExpectedUpdatedAt precondition.
func (p ArticlePatch) Unmodified(a *Article) bool {
	return p.ExpectedUpdatedAt == nil || p.ExpectedUpdatedAt.Equal(a.UpdatedAt)
}

// NextUpdatedAt returns the timestamp to store for a write at now. It always
// moves past previous so that version checks on UpdatedAt cannot collide.
func NextUpdatedAt(now, previous time.Time, resolution time.Duration) time.Time {
	now = now.UTC().Truncate(resolution)
	if !now.After(previous) {
		return previous.UTC().Add(resolution)
	}
	return now
}

// Apply copies the patched fields onto the article.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.SetTags {
		a.Tags = append([]string(nil), p.Tags...)
	}
	if p.FileURL != nil {
		a.FileURL = *p.FileURL
	}
}

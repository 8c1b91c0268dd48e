package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-review/internal/domain"
)

func validSubmission() *domain.Submission {
	return &domain.Submission{
		Title:          "Chola Bronzes of Thanjavur",
		Description:    "A survey of lost-wax casting in the Kaveri delta.",
		Keywords:       "Chola bronzes, lost-wax casting, temple art",
		NumAuthors:     2,
		SubmitterEmail: "office@christuniversity.in",
		Authors: []domain.Author{
			{Name: "Asha Rao", Email: "asha@christuniversity.in", Designation: "Professor"},
			{Name: "Vikram Iyer", Email: "vikram@christuniversity.in", Designation: "Student"},
		},
		DocumentURL:          "https://docs.google.com/document/d/1AbC/edit",
		OriginalityConfirmed: true,
		SimilarityReport:     &domain.Upload{Filename: "sim.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		AIReport:             &domain.Upload{Filename: "ai.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	}
}

func TestValidateSubmission(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		mutate    func(s *domain.Submission)
		wantField string
		wantCode  string
	}{
		{
			name:   "valid submission",
			mutate: func(s *domain.Submission) {},
		},
		{
			name:   "drive url is accepted",
			mutate: func(s *domain.Submission) { s.DocumentURL = "https://drive.google.com/file/d/xyz/view" },
		},
		{
			name:      "blank title",
			mutate:    func(s *domain.Submission) { s.Title = "   " },
			wantField: "title",
			wantCode:  "title_required",
		},
		{
			name:      "missing description",
			mutate:    func(s *domain.Submission) { s.Description = "" },
			wantField: "description",
			wantCode:  "description_required",
		},
		{
			name:      "keywords not comma separated",
			mutate:    func(s *domain.Submission) { s.Keywords = "AI; Machine Learning" },
			wantField: "keywords",
			wantCode:  "invalid_keywords_format",
		},
		{
			name:      "trailing comma in keywords",
			mutate:    func(s *domain.Submission) { s.Keywords = "AI, Machine Learning," },
			wantField: "keywords",
			wantCode:  "invalid_keywords_format",
		},
		{
			name:      "empty keywords",
			mutate:    func(s *domain.Submission) { s.Keywords = "" },
			wantField: "keywords",
			wantCode:  "invalid_keywords_format",
		},
		{
			name:      "invalid submitter email",
			mutate:    func(s *domain.Submission) { s.SubmitterEmail = "not-an-email" },
			wantField: "submitter_email",
			wantCode:  "invalid_email_format",
		},
		{
			name:      "no authors",
			mutate:    func(s *domain.Submission) { s.Authors = nil; s.NumAuthors = 0 },
			wantField: "authors",
			wantCode:  "authors_required",
		},
		{
			name: "eleven authors",
			mutate: func(s *domain.Submission) {
				s.Authors = make([]domain.Author, 11)
				for i := range s.Authors {
					s.Authors[i] = domain.Author{Name: "A", Email: "a@christuniversity.in", Designation: "Staff"}
				}
				s.NumAuthors = 11
			},
			wantField: "authors",
			wantCode:  "too_many_authors",
		},
		{
			name:      "author missing email",
			mutate:    func(s *domain.Submission) { s.Authors[1].Email = "" },
			wantField: "authors.1.email",
			wantCode:  "author_email_required",
		},
		{
			name:      "author missing designation",
			mutate:    func(s *domain.Submission) { s.Authors[0].Designation = " " },
			wantField: "authors.0.designation",
			wantCode:  "author_designation_required",
		},
		{
			name:      "document not on google",
			mutate:    func(s *domain.Submission) { s.DocumentURL = "https://example.com/paper.docx" },
			wantField: "document_url",
			wantCode:  "document_url_not_google",
		},
		{
			name:      "originality not confirmed",
			mutate:    func(s *domain.Submission) { s.OriginalityConfirmed = false },
			wantField: "originality_confirmed",
			wantCode:  "originality_not_confirmed",
		},
		{
			name:      "missing similarity report",
			mutate:    func(s *domain.Submission) { s.SimilarityReport = nil },
			wantField: "similarity_report",
			wantCode:  "similarity_report_required",
		},
		{
			name:      "empty ai report",
			mutate:    func(s *domain.Submission) { s.AIReport = &domain.Upload{Filename: "ai.pdf"} },
			wantField: "ai_report",
			wantCode:  "ai_report_required",
		},
		{
			name:      "author count mismatch",
			mutate:    func(s *domain.Submission) { s.NumAuthors = 3 },
			wantField: "num_authors",
			wantCode:  "num_authors_mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(s)

			err := v.ValidateSubmission(s)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			verr := ConvertValidationErrors(err)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantCode, verr.Fields[tt.wantField], "fields: %v", verr.Fields)
		})
	}
}

func TestConvertValidationErrors(t *testing.T) {
	assert.Nil(t, ConvertValidationErrors(nil))

	verr := ConvertValidationErrors(errors.New("boom"))
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{"unknown": "boom"}, verr.Fields)

	s := validSubmission()
	s.Title = ""
	s.OriginalityConfirmed = false
	verr = ConvertValidationErrors(NewValidator().ValidateSubmission(s))
	require.NotNil(t, verr)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, verr.Error(), "title: title_required")
}

func TestValidateSubmission_ReportsAuthorCountWithOtherErrors(t *testing.T) {
	s := validSubmission()
	s.NumAuthors = 3
	s.Title = " "
	s.SimilarityReport = nil

	verr := ConvertValidationErrors(NewValidator().ValidateSubmission(s))
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{
		"num_authors":       "num_authors_mismatch",
		"title":             "title_required",
		"similarity_report": "similarity_report_required",
	}, verr.Fields)
}

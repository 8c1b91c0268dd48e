package validator

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"museum-review/internal/domain"
)

var keywordsRegex = regexp.MustCompile(`^([a-zA-Z0-9\s-]+,)*[a-zA-Z0-9\s-]+$`)

// documentHosts are the places a reviewable draft may live.
var documentHosts = []string{"docs.google.com/document", "drive.google.com"}

// Validator provides validation methods for submissions.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmission checks the public submission form. It returns ozzo
// validation.Errors keyed by field.
func (v *Validator) ValidateSubmission(s *domain.Submission) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title,
			validation.By(requiredText("title_required")),
		),
		validation.Field(&s.Description,
			validation.By(requiredText("description_required")),
		),
		validation.Field(&s.Keywords,
			validation.By(keywordsRule),
		),
		validation.Field(&s.SubmitterEmail,
			validation.Required.Error("submitter_email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&s.NumAuthors,
			validation.By(func(value interface{}) error {
				if n, _ := value.(int); n != len(s.Authors) {
					return validation.NewError("num_authors_mismatch", "num_authors_mismatch")
				}
				return nil
			}),
		),
		validation.Field(&s.Authors,
			validation.Required.Error("authors_required"),
			validation.Length(1, domain.MaxAuthors).Error("too_many_authors"),
			validation.Each(validation.By(authorRule)),
		),
		validation.Field(&s.DocumentURL,
			validation.Required.Error("document_url_required"),
			is.URL.Error("invalid_document_url"),
			validation.By(documentHostRule),
		),
		validation.Field(&s.OriginalityConfirmed,
			validation.By(func(value interface{}) error {
				if confirmed, _ := value.(bool); !confirmed {
					return validation.NewError("originality_not_confirmed", "originality_not_confirmed")
				}
				return nil
			}),
		),
		validation.Field(&s.SimilarityReport,
			validation.By(reportRule("similarity_report_required")),
		),
		validation.Field(&s.AIReport,
			validation.By(reportRule("ai_report_required")),
		),
	)
}

func requiredText(code string) validation.RuleFunc {
	return func(value interface{}) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

func keywordsRule(value interface{}) error {
	s, _ := value.(string)
	if !keywordsRegex.MatchString(strings.TrimSpace(s)) {
		return validation.NewError("invalid_keywords_format", "invalid_keywords_format")
	}
	return nil
}

func documentHostRule(value interface{}) error {
	s, _ := value.(string)
	for _, host := range documentHosts {
		if strings.Contains(s, host) {
			return nil
		}
	}
	return validation.NewError("document_url_not_google", "document_url_not_google")
}

func authorRule(value interface{}) error {
	a, ok := value.(domain.Author)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name,
			validation.By(requiredText("author_name_required")),
		),
		validation.Field(&a.Email,
			validation.Required.Error("author_email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&a.Designation,
			validation.By(requiredText("author_designation_required")),
		),
	)
}

func reportRule(code string) validation.RuleFunc {
	return func(value interface{}) error {
		u, _ := value.(*domain.Upload)
		if u == nil || len(u.Data) == 0 {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// ConvertValidationErrors converts ozzo validation errors to a
// domain.ValidationError. Nested errors are flattened to dotted keys such as
// "authors.0.email".
func ConvertValidationErrors(err error) *domain.ValidationError {
	if err == nil {
		return nil
	}
	out := &domain.ValidationError{Fields: map[string]string{}}
	flatten("", err, out.Fields)
	return out
}

func flatten(prefix string, err error, fields map[string]string) {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		key := prefix
		if key == "" {
			key = "unknown"
		}
		fields[key] = err.Error()
		return
	}

	keys := make([]string, 0, len(ve))
	for k := range ve {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if ve[k] == nil {
			continue
		}
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flatten(key, ve[k], fields)
	}
}

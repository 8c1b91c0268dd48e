// Package workflow holds the review pipeline: the stage table, stage
// authorization, and the status transition engine.
package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
)

// Stage is one reviewer role's position in the pipeline.
type Stage struct {
	Name            string        `yaml:"name" json:"name"`
	Title           string        `yaml:"title" json:"title"`
	CurrentStatus   domain.Status `yaml:"current" json:"current_status"`
	NextStatus      domain.Status `yaml:"next" json:"next_status"`
	RejectionStatus domain.Status `yaml:"rejection" json:"rejection_status,omitempty"`
	RequiredRole    auth.Role     `yaml:"role" json:"required_role"`
	// RequiresArchive marks the publication stage, which is approved only
	// together with the archival PDF upload.
	RequiresArchive bool `yaml:"archive" json:"requires_archive"`
}

// CanReject reports whether the stage has a rejection branch.
func (s Stage) CanReject() bool {
	return s.RejectionStatus != ""
}

// Stage names used by the default table.
const (
	StageAdmin       = "admin"
	StageIT          = "it"
	StageTechnical   = "technical"
	StageLiterature  = "literature"
	StagePublication = "publication"
)

// DefaultStages is the museum's review pipeline.
func DefaultStages() []Stage {
	return []Stage{
		{
			Name:            StageAdmin,
			Title:           "Admin Triage & Review",
			CurrentStatus:   domain.StatusSubmitted,
			NextStatus:      domain.StatusAdminApproved,
			RejectionStatus: domain.StatusAdminRejected,
			RequiredRole:    auth.RoleAdmin,
		},
		{
			Name:            StageIT,
			Title:           "IT Review Panel",
			CurrentStatus:   domain.StatusAdminApproved,
			NextStatus:      domain.StatusITApproved,
			RejectionStatus: domain.StatusITRejected,
			RequiredRole:    auth.RoleReviewerIT,
		},
		{
			Name:            StageTechnical,
			Title:           "Technical Review Panel",
			CurrentStatus:   domain.StatusITApproved,
			NextStatus:      domain.StatusTechApproved,
			RejectionStatus: domain.StatusTechRejected,
			RequiredRole:    auth.RoleReviewerTechnical,
		},
		{
			Name:            StageLiterature,
			Title:           "Literature Review Panel",
			CurrentStatus:   domain.StatusTechApproved,
			NextStatus:      domain.StatusLitApproved,
			RejectionStatus: domain.StatusLitRejected,
			RequiredRole:    auth.RoleReviewerLiterature,
		},
		{
			Name:            StagePublication,
			Title:           "Final Archive & Publication",
			CurrentStatus:   domain.StatusLitApproved,
			NextStatus:      domain.StatusPublished,
			RequiredRole:    auth.RoleReviewerLiterature,
			RequiresArchive: true,
		},
	}
}

// Table is an immutable, validated set of stages.
type Table struct {
	stages []Stage
	byName map[string]Stage
}

// NewTable validates stages and indexes them by name.
func NewTable(stages []Stage) (*Table, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("stage table is empty")
	}
	t := &Table{byName: make(map[string]Stage, len(stages))}
	seenCurrent := make(map[domain.Status]string, len(stages))
	for _, s := range stages {
		if err := validateStage(s); err != nil {
			return nil, err
		}
		if _, dup := t.byName[s.Name]; dup {
			return nil, fmt.Errorf("stage %q defined twice", s.Name)
		}
		if other, dup := seenCurrent[s.CurrentStatus]; dup {
			return nil, fmt.Errorf("stages %q and %q both consume %s", other, s.Name, s.CurrentStatus)
		}
		seenCurrent[s.CurrentStatus] = s.Name
		t.byName[s.Name] = s
		t.stages = append(t.stages, s)
	}
	return t, nil
}

func validateStage(s Stage) error {
	if s.Name == "" {
		return fmt.Errorf("stage name is required")
	}
	if !domain.IsValidStatus(s.CurrentStatus) || domain.IsTerminal(s.CurrentStatus) {
		return fmt.Errorf("stage %q: current status %q must be a non-terminal status", s.Name, s.CurrentStatus)
	}
	next, ok := domain.Successor(s.CurrentStatus)
	if !ok || next != s.NextStatus {
		return fmt.Errorf("stage %q: next status %q does not follow %s", s.Name, s.NextStatus, s.CurrentStatus)
	}
	if s.RejectionStatus != "" {
		want, ok := domain.RejectionFor(s.NextStatus)
		if !ok || want != s.RejectionStatus {
			return fmt.Errorf("stage %q: rejection status %q is not paired with %s", s.Name, s.RejectionStatus, s.NextStatus)
		}
	}
	if !auth.IsValidRole(s.RequiredRole) {
		return fmt.Errorf("stage %q: unknown role %q", s.Name, s.RequiredRole)
	}
	if s.NextStatus == domain.StatusPublished && !s.RequiresArchive {
		return fmt.Errorf("stage %q: publishing requires the archive flag", s.Name)
	}
	return nil
}

// Lookup returns the stage with the given name.
func (t *Table) Lookup(name string) (Stage, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// ForStatus returns the stage that consumes articles in status.
func (t *Table) ForStatus(status domain.Status) (Stage, bool) {
	for _, s := range t.stages {
		if s.CurrentStatus == status {
			return s, true
		}
	}
	return Stage{}, false
}

// Publication returns the stage that publishes articles.
func (t *Table) Publication() (Stage, bool) {
	for _, s := range t.stages {
		if s.RequiresArchive {
			return s, true
		}
	}
	return Stage{}, false
}

// Stages returns the stages in pipeline order.
func (t *Table) Stages() []Stage {
	return append([]Stage(nil), t.stages...)
}

// VisibleTo returns the stages a session may act on.
func (t *Table) VisibleTo(session *auth.Session) []Stage {
	var out []Stage
	for _, s := range t.stages {
		if Authorize(session, s) == nil {
			out = append(out, s)
		}
	}
	return out
}

type stageFile struct {
	Stages []Stage `yaml:"stages"`
}

// LoadTable reads a YAML stage file. An empty path yields DefaultStages.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return NewTable(DefaultStages())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage file: %w", err)
	}
	var f stageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stage file: %w", err)
	}
	return NewTable(f.Stages)
}

package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Status is the position of an article in the review pipeline.
type Status string

const (
	StatusSubmitted     Status = "SUBMITTED"
	StatusAdminApproved Status = "ADMIN_APPROVED"
	StatusAdminRejected Status = "ADMIN_REJECTED"
	StatusITApproved    Status = "IT_APPROVED"
	StatusITRejected    Status = "IT_REJECTED"
	StatusTechApproved  Status = "TECH_APPROVED"
	StatusTechRejected  Status = "TECH_REJECTED"
	StatusLitApproved   Status = "LIT_APPROVED"
	StatusLitRejected   Status = "LIT_REJECTED"
	StatusPublished     Status = "PUBLISHED"
)

// progression is the single forward path through the pipeline.
var progression = []Status{
	StatusSubmitted,
	StatusAdminApproved,
	StatusITApproved,
	StatusTechApproved,
	StatusLitApproved,
	StatusPublished,
}

// rejectionFor pairs each approval value with the rejection recorded by the
// same reviewer role.
var rejectionFor = map[Status]Status{
	StatusAdminApproved: StatusAdminRejected,
	StatusITApproved:    StatusITRejected,
	StatusTechApproved:  StatusTechRejected,
	StatusLitApproved:   StatusLitRejected,
}

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{
	StatusSubmitted,
	StatusAdminApproved,
	StatusAdminRejected,
	StatusITApproved,
	StatusITRejected,
	StatusTechApproved,
	StatusTechRejected,
	StatusLitApproved,
	StatusLitRejected,
	StatusPublished,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(ValidStatuses))
	for _, s := range ValidStatuses {
		set[s] = struct{}{}
	}
	return set
}()

// legacyStatuses maps status strings written by earlier versions of the
// museum site onto the canonical enum.
var legacyStatuses = map[string]Status{
	"pending":              StatusSubmitted,
	"ready_for_publishing": StatusLitApproved,
	"published":            StatusPublished,
}

// IsValidStatus checks if a status is one of the canonical values.
func IsValidStatus(status Status) bool {
	_, ok := statusSet[status]
	return ok
}

// ParseStatus canonicalizes a stored status value, translating legacy
// vocabulary. Unknown values are an error.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if IsValidStatus(s) {
		return s, nil
	}
	if canonical, ok := legacyStatuses[strings.ToLower(string(s))]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unknown article status %q", raw)
}

// Aliases returns every stored value that means status, canonical first.
func Aliases(status Status) []string {
	out := []string{string(status)}
	for legacy, canonical := range legacyStatuses {
		if canonical == status {
			out = append(out, legacy)
		}
	}
	sort.Strings(out[1:])
	return out
}

// AliasesOf expands a set of statuses into all matching stored values.
func AliasesOf(statuses ...Status) []string {
	var out []string
	for _, s := range statuses {
		out = append(out, Aliases(s)...)
	}
	return out
}

// IsRejection reports whether status is one of the *_REJECTED values.
func IsRejection(status Status) bool {
	for _, r := range rejectionFor {
		if r == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(status Status) bool {
	return status == StatusPublished || IsRejection(status)
}

// NonTerminalStatuses lists every status an article can still move from.
func NonTerminalStatuses() []Status {
	out := make([]Status, 0, len(progression)-1)
	for _, s := range progression {
		if !IsTerminal(s) {
			out = append(out, s)
		}
	}
	return out
}

// Successor returns the next status on the forward path.
func Successor(status Status) (Status, bool) {
	for i, s := range progression {
		if s == status && i+1 < len(progression) {
			return progression[i+1], true
		}
	}
	return "", false
}

// RejectionFor returns the rejection value paired with an approval value.
func RejectionFor(approved Status) (Status, bool) {
	r, ok := rejectionFor[approved]
	return r, ok
}

package query

import (
	"strings"
	"time"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
)

// Accessor sets for the two record shapes. Sort field names accept both
// lower-camel and snake case ("roundsCompleted", "rounds_completed").

// CandidateFields drives the engine over candidate records.
var CandidateFields = Fields[domain.Candidate]{
	SearchText: func(c domain.Candidate) []string {
		return []string{c.Name, c.Email, c.Position, string(c.Status), c.CandidateID, c.CurrentRound}
	},
	Status:   func(c domain.Candidate) string { return string(c.Status) },
	Category: func(c domain.Candidate) string { return c.Position },
	Scope:    func(c domain.Candidate) string { return c.JobID },
	Compare:  candidateCompare,
}

// JobFields drives the engine over job records.
var JobFields = Fields[domain.Job]{
	SearchText: func(j domain.Job) []string {
		return []string{j.JobID, j.JDLink, string(j.Status)}
	},
	Status:  func(j domain.Job) string { return string(j.Status) },
	Scope:   func(j domain.Job) string { return j.JobID },
	Compare: jobCompare,
}

func candidateCompare(field string) func(a, b domain.Candidate) int {
	switch normalizeField(field) {
	case "name":
		return func(a, b domain.Candidate) int { return strings.Compare(a.Name, b.Name) }
	case "email":
		return func(a, b domain.Candidate) int { return strings.Compare(a.Email, b.Email) }
	case "position":
		return func(a, b domain.Candidate) int { return strings.Compare(a.Position, b.Position) }
	case "status":
		return func(a, b domain.Candidate) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "candidateid":
		return func(a, b domain.Candidate) int { return strings.Compare(a.CandidateID, b.CandidateID) }
	case "rating":
		return func(a, b domain.Candidate) int { return compareInt(a.Rating, b.Rating) }
	case "roundscompleted":
		return func(a, b domain.Candidate) int { return compareInt(a.RoundsCompleted, b.RoundsCompleted) }
	case "lastupdated":
		return func(a, b domain.Candidate) int { return compareTime(a.LastUpdated, b.LastUpdated) }
	}
	return nil
}

func jobCompare(field string) func(a, b domain.Job) int {
	switch normalizeField(field) {
	case "jobid":
		return func(a, b domain.Job) int { return strings.Compare(a.JobID, b.JobID) }
	case "status":
		return func(a, b domain.Job) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "candidates":
		return func(a, b domain.Job) int { return compareInt(a.Candidates, b.Candidates) }
	case "createdat":
		return func(a, b domain.Job) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case "updatedat":
		return func(a, b domain.Job) int { return compareTime(a.UpdatedAt, b.UpdatedAt) }
	}
	return nil
}

func normalizeField(field string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(field)), "_", "")
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlannedRound is one stage of a job's interview plan.
type PlannedRound struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Interviewer  string    `json:"interviewer"`
	SelfAssigned bool      `json:"is_self_assigned"`
}

// Job represents a job interview process record.
type Job struct {
	ID         uuid.UUID      `json:"id"`
	JobID      string         `json:"job_id"`
	JDLink     string         `json:"jd_link,omitempty"`
	Rounds     []PlannedRound `json:"rounds"`
	Status     JobStatus      `json:"status"`
	Candidates int            `json:"candidates"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Candidate represents a candidate interview record.
type Candidate struct {
	ID              uuid.UUID        `json:"id"`
	CandidateID     string           `json:"candidate_id"`
	JobID           string           `json:"job_id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Position        string           `json:"position"`
	Location        string           `json:"location,omitempty"`
	Experience      string           `json:"experience,omitempty"`
	Source          string           `json:"source,omitempty"`
	Skills          []string         `json:"skills"`
	Rating          int              `json:"rating"`
	CurrentRound    string           `json:"current_round,omitempty"`
	RoundsCompleted int              `json:"rounds_completed"`
	Status          CandidateStatus  `json:"status"`
	Rounds          []InterviewRound `json:"interview_rounds,omitempty"`
	LastUpdated     time.Time        `json:"last_updated"`
}

// JobInput carries the caller-supplied fields for creating a job record.
type JobInput struct {
	JobID      string         `json:"job_id" binding:"required"`
	JDLink     string         `json:"jd_link"`
	Rounds     []PlannedRound `json:"rounds" binding:"required"`
	Status     JobStatus      `json:"status"`
	Candidates int            `json:"candidates"`
}

// CandidateInput carries the caller-supplied fields for creating a candidate record.
type CandidateInput struct {
	JobID        string           `json:"job_id"`
	Name         string           `json:"name" binding:"required"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Position     string           `json:"position"`
	Location     string           `json:"location"`
	Experience   string           `json:"experience"`
	Source       string           `json:"source"`
	Skills       []string         `json:"skills"`
	Rating       int              `json:"rating"`
	CurrentRound string           `json:"current_round"`
	Status       CandidateStatus  `json:"status"`
	Rounds       []InterviewRound `json:"interview_rounds"`
}

// JobPatch is a partial update of a job record. Nil fields are left unchanged.
type JobPatch struct {
	JobID      *string        `json:"job_id,omitempty"`
	JDLink     *string        `json:"jd_link,omitempty"`
	Rounds     []PlannedRound `json:"rounds,omitempty"`
	Status     *JobStatus     `json:"status,omitempty"`
	Candidates *int           `json:"candidates,omitempty"`
}

// CandidatePatch is a partial update of a candidate record. Nil fields are left unchanged.
type CandidatePatch struct {
	JobID        *string          `json:"job_id,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Position     *string          `json:"position,omitempty"`
	Location     *string          `json:"location,omitempty"`
	Experience   *string          `json:"experience,omitempty"`
	Source       *string          `json:"source,omitempty"`
	Skills       []string         `json:"skills,omitempty"`
	Rating       *int             `json:"rating,omitempty"`
	CurrentRound *string          `json:"current_round,omitempty"`
	Status       *CandidateStatus `json:"status,omitempty"`
	Rounds       []InterviewRound `json:"interview_rounds,omitempty"`
}

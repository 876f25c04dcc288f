package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pure collection operations. Each takes the full collection and returns a new
// one; the caller is responsible for writing the result back to the store.
// Mutations targeting a missing ID leave the collection unchanged and report
// found=false rather than failing.

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// CreateJob assigns a fresh ID, applies defaults and appends the job to the
// end of the collection. A job must carry at least one named round.
func CreateJob(jobs []Job, input JobInput, now time.Time) ([]Job, Job, error) {
	if strings.TrimSpace(input.JobID) == "" {
		return jobs, Job{}, ErrEmptyJobID
	}
	if len(input.Rounds) == 0 {
		return jobs, Job{}, ErrNoRounds
	}

	rounds := make([]PlannedRound, len(input.Rounds))
	for i, r := range input.Rounds {
		if strings.TrimSpace(r.Name) == "" {
			return jobs, Job{}, ErrEmptyRoundName
		}
		rounds[i] = r
		if rounds[i].ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return jobs, Job{}, fmt.Errorf("generate round id: %w", err)
			}
			rounds[i].ID = id
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return jobs, Job{}, fmt.Errorf("generate job id: %w", err)
	}

	status := input.Status
	if !status.IsValid() {
		status = JobPending
	}

	job := Job{
		ID:         id,
		JobID:      input.JobID,
		JDLink:     input.JDLink,
		Rounds:     rounds,
		Status:     status,
		Candidates: nonNegative(input.Candidates),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	out := make([]Job, 0, len(jobs)+1)
	out = append(out, jobs...)
	out = append(out, job)
	return out, job, nil
}

// UpdateJob merges the patch onto the matching job and rewrites its timestamp.
func UpdateJob(jobs []Job, id uuid.UUID, patch JobPatch, now time.Time) ([]Job, bool, error) {
	if patch.Rounds != nil && len(patch.Rounds) == 0 {
		return jobs, false, ErrNoRounds
	}

	out := make([]Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.JobID != nil {
			out[i].JobID = *patch.JobID
		}
		if patch.JDLink != nil {
			out[i].JDLink = *patch.JDLink
		}
		if patch.Rounds != nil {
			for _, r := range patch.Rounds {
				if strings.TrimSpace(r.Name) == "" {
					return jobs, false, ErrEmptyRoundName
				}
			}
			out[i].Rounds = patch.Rounds
		}
		if patch.Status != nil {
			out[i].Status = *patch.Status
		}
		if patch.Candidates != nil {
			out[i].Candidates = nonNegative(*patch.Candidates)
		}
		out[i].UpdatedAt = now
		return out, true, nil
	}
	return jobs, false, nil
}

// UpdateJobStatus rewrites only the status and timestamp of the matching job.
// The status value is not validated; callers wanting strictness check first.
func UpdateJobStatus(jobs []Job, id uuid.UUID, status JobStatus, now time.Time) ([]Job, bool) {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			out[i].UpdatedAt = now
			return out, true
		}
	}
	return jobs, false
}

// DeleteJob removes the matching job. Deleting a missing ID is a no-op.
func DeleteJob(jobs []Job, id uuid.UUID) ([]Job, bool) {
	out := make([]Job, 0, len(jobs))
	found := false
	for _, j := range jobs {
		if j.ID == id {
			found = true
			continue
		}
		out = append(out, j)
	}
	if !found {
		return jobs, false
	}
	return out, true
}

// CreateCandidate assigns a fresh ID and a display ID derived from the current
// collection size, applies defaults and appends the candidate at the end. The
// display ID is stable for the record's lifetime but not globally unique.
func CreateCandidate(cs []Candidate, input CandidateInput, now time.Time) ([]Candidate, Candidate, error) {
	if strings.TrimSpace(input.Name) == "" {
		return cs, Candidate{}, ErrEmptyName
	}

	id, err := uuid.NewV7()
	if err != nil {
		return cs, Candidate{}, fmt.Errorf("generate candidate id: %w", err)
	}

	status := input.Status
	if !status.IsValid() {
		status = CandidateScheduled
	}
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	cand := Candidate{
		ID:              id,
		CandidateID:     fmt.Sprintf("CAND-%03d", len(cs)+1),
		JobID:           input.JobID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Position:        input.Position,
		Location:        input.Location,
		Experience:      input.Experience,
		Source:          input.Source,
		Skills:          skills,
		Rating:          clampInt(input.Rating, 0, 5),
		CurrentRound:    input.CurrentRound,
		RoundsCompleted: completedRounds(input.Rounds),
		Status:          status,
		Rounds:          input.Rounds,
		LastUpdated:     now,
	}

	out := make([]Candidate, 0, len(cs)+1)
	out = append(out, cs...)
	out = append(out, cand)
	return out, cand, nil
}

// UpdateCandidate merges the patch onto the matching candidate and rewrites
// its timestamp. Ratings are clamped rather than rejected.
func UpdateCandidate(cs []Candidate, id uuid.UUID, patch CandidatePatch, now time.Time) ([]Candidate, bool) {
	out := make([]Candidate, len(cs))
	copy(out, cs)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.JobID != nil {
			out[i].JobID = *patch.JobID
		}
		if patch.Name != nil {
			out[i].Name = *patch.Name
		}
		if patch.Email != nil {
			out[i].Email = *patch.Email
		}
		if patch.Phone != nil {
			out[i].Phone = *patch.Phone
		}
		if patch.Position != nil {
			out[i].Position = *patch.Position
		}
		if patch.Location != nil {
			out[i].Location = *patch.Location
		}
		if patch.Experience != nil {
			out[i].Experience = *patch.Experience
		}
		if patch.Source != nil {
			out[i].Source = *patch.Source
		}
		if patch.Skills != nil {
			out[i].Skills = patch.Skills
		}
		if patch.Rating != nil {
			out[i].Rating = clampInt(*patch.Rating, 0, 5)
		}
		if patch.CurrentRound != nil {
			out[i].CurrentRound = *patch.CurrentRound
		}
		if patch.Status != nil {
			out[i].Status = *patch.Status
		}
		if patch.Rounds != nil {
			out[i].Rounds = patch.Rounds
			out[i].RoundsCompleted = completedRounds(patch.Rounds)
		}
		out[i].LastUpdated = now
		return out, true
	}
	return cs, false
}

// UpdateCandidateStatus rewrites only the status and timestamp of the matching
// candidate. The status value is not validated.
func UpdateCandidateStatus(cs []Candidate, id uuid.UUID, status CandidateStatus, now time.Time) ([]Candidate, bool) {
	out := make([]Candidate, len(cs))
	copy(out, cs)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			out[i].LastUpdated = now
			return out, true
		}
	}
	return cs, false
}

// DeleteCandidate removes the matching candidate. Deleting a missing ID is a no-op.
func DeleteCandidate(cs []Candidate, id uuid.UUID) ([]Candidate, bool) {
	out := make([]Candidate, 0, len(cs))
	found := false
	for _, c := range cs {
		if c.ID == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		return cs, false
	}
	return out, true
}

func completedRounds(rounds []InterviewRound) int {
	n := 0
	for _, r := range rounds {
		if r.Status == RoundCompleted {
			n++
		}
	}
	return n
}

package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
)

func fixtureCandidates() []domain.Candidate {
	ratings := []int{4, 3, 5, 3, 4, 4, 4, 4, 3, 5}
	statuses := []domain.CandidateStatus{
		domain.CandidateScheduled, domain.CandidatePendingFeedback, domain.CandidateScheduled,
		domain.CandidateCompleted, domain.CandidateScheduled, domain.CandidateCancelled,
		domain.CandidateScheduled, domain.CandidateRescheduled, domain.CandidateNoShow,
		domain.CandidateScheduled,
	}
	positions := []string{
		"Frontend Developer", "Backend Developer", "QA Engineer", "DevOps Engineer",
		"Full Stack Developer", "Data Analyst", "Backend Developer", "Frontend Developer",
		"Product Manager", "Mobile Developer",
	}

	cs := make([]domain.Candidate, 10)
	for i := range cs {
		cs[i] = domain.Candidate{
			Name:            "Candidate",
			Position:        positions[i],
			Rating:          ratings[i],
			RoundsCompleted: i % 3,
			Status:          statuses[i],
		}
	}
	return cs
}

func TestCandidateAverageRating(t *testing.T) {
	s := Candidates(fixtureCandidates())
	if s.AvgRating != 3.9 {
		t.Errorf("expected average rating 3.9, got %v", s.AvgRating)
	}
	if s.Total != 10 {
		t.Errorf("expected total 10, got %d", s.Total)
	}
}

func TestCandidateStatusBreakdown(t *testing.T) {
	s := Candidates(fixtureCandidates())
	scheduled := s.ByStatus[string(domain.CandidateScheduled)]
	if scheduled.Count != 5 {
		t.Errorf("expected 5 scheduled, got %d", scheduled.Count)
	}
	if scheduled.Percent != 50.0 {
		t.Errorf("expected 50.0%%, got %v", scheduled.Percent)
	}
}

func TestSummaryIsIdempotent(t *testing.T) {
	cs := fixtureCandidates()
	first := Candidates(cs)
	second := Candidates(cs)
	if !reflect.DeepEqual(first, second) {
		t.Error("summarize is not a pure function of the collection")
	}
}

func TestPercentagesWellFormed(t *testing.T) {
	s := Candidates(fixtureCandidates())

	sum := 0.0
	for value, bucket := range s.ByStatus {
		if bucket.Percent < 0 || bucket.Percent > 100 {
			t.Errorf("status %q percent %v out of range", value, bucket.Percent)
		}
		sum += bucket.Percent
	}
	if math.Abs(sum-100) > 0.5 {
		t.Errorf("status percentages sum to %v, expected ~100", sum)
	}
}

func TestEmptyCollectionYieldsZeros(t *testing.T) {
	s := Candidates(nil)
	if s.Total != 0 {
		t.Errorf("expected total 0, got %d", s.Total)
	}
	if s.AvgRating != 0 || s.AvgRoundsCompleted != 0 {
		t.Errorf("expected zero averages, got %v / %v", s.AvgRating, s.AvgRoundsCompleted)
	}
	if len(s.ByStatus) != 0 || len(s.ByPosition) != 0 {
		t.Error("expected empty breakdowns")
	}
	for _, bucket := range s.ByStatus {
		if math.IsNaN(bucket.Percent) {
			t.Error("percent must never be NaN")
		}
	}
}

func TestJobStats(t *testing.T) {
	js := []domain.Job{
		{JobID: "ENG-01", Status: domain.JobInProgress, Candidates: 4,
			Rounds: []domain.PlannedRound{{Name: "Screening"}, {Name: "System Design"}}},
		{JobID: "ENG-02", Status: domain.JobPending, Candidates: 6,
			Rounds: []domain.PlannedRound{{Name: "Screening"}}},
		{JobID: "SALES-01", Status: domain.JobInProgress, Candidates: 2,
			Rounds: []domain.PlannedRound{{Name: "Culture Fit"}}},
	}

	s := Jobs(js)
	if s.Total != 3 {
		t.Errorf("expected 3 jobs, got %d", s.Total)
	}
	if s.TotalCandidates != 12 {
		t.Errorf("expected 12 candidates across jobs, got %d", s.TotalCandidates)
	}
	if s.AvgCandidates != 4.0 {
		t.Errorf("expected average 4.0 candidates, got %v", s.AvgCandidates)
	}
	inProgress := s.ByStatus[string(domain.JobInProgress)]
	if inProgress.Count != 2 || inProgress.Percent != 66.7 {
		t.Errorf("expected 2 in-progress at 66.7%%, got %d at %v", inProgress.Count, inProgress.Percent)
	}
	if s.AvgPlannedRounds != 1.3 {
		t.Errorf("expected 1.3 planned rounds on average, got %v", s.AvgPlannedRounds)
	}
}

func TestRoundStats(t *testing.T) {
	rs := []domain.InterviewRound{
		{RoundNumber: 1, Status: domain.RoundCompleted, Rating: 4,
			Questions: []domain.Question{
				{Type: domain.QuestionTheory}, {Type: domain.QuestionProgramming},
			}},
		{RoundNumber: 2, Status: domain.RoundCompleted, Rating: 3,
			Questions: []domain.Question{{Type: domain.QuestionTheory}}},
		{RoundNumber: 3, Status: domain.RoundPendingFeedback,
			Questions: []domain.Question{{Type: domain.QuestionPractical}}},
		{RoundNumber: 4, Status: domain.RoundScheduled},
	}

	s := Rounds(rs)
	if s.Total != 4 || s.Completed != 2 {
		t.Errorf("expected 4 rounds with 2 completed, got %d/%d", s.Total, s.Completed)
	}
	if s.AvgRating != 3.5 {
		t.Errorf("expected average rating 3.5 over completed rounds, got %v", s.AvgRating)
	}
	theory := s.ByQuestionType[string(domain.QuestionTheory)]
	if theory.Count != 2 || theory.Percent != 50.0 {
		t.Errorf("expected 2 theory questions at 50%%, got %d at %v", theory.Count, theory.Percent)
	}
}

func TestRoundStatsEmpty(t *testing.T) {
	s := Rounds(nil)
	if s.AvgRating != 0 || s.Total != 0 {
		t.Errorf("expected zeros for empty rounds, got %+v", s)
	}
}

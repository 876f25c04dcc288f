// Package stats computes summary figures over record collections. Every
// function is a pure reduction recomputed from scratch; nothing is cached.
package stats

import (
	"math"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
)

// Bucket is the count and percentage-of-total share for one categorical value.
type Bucket struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CandidateStats summarizes a candidate collection.
type CandidateStats struct {
	Total              int               `json:"total"`
	ByStatus           map[string]Bucket `json:"by_status"`
	ByPosition         map[string]Bucket `json:"by_position"`
	AvgRating          float64           `json:"avg_rating"`
	AvgRoundsCompleted float64           `json:"avg_rounds_completed"`
}

// JobStats summarizes a job collection.
type JobStats struct {
	Total            int               `json:"total"`
	ByStatus         map[string]Bucket `json:"by_status"`
	TotalCandidates  int               `json:"total_candidates"`
	AvgCandidates    float64           `json:"avg_candidates"`
	AvgPlannedRounds float64           `json:"avg_planned_rounds"`
}

// RoundStats summarizes a candidate's interview rounds.
type RoundStats struct {
	Total          int               `json:"total"`
	Completed      int               `json:"completed"`
	ByStatus       map[string]Bucket `json:"by_status"`
	ByQuestionType map[string]Bucket `json:"by_question_type"`
	AvgRating      float64           `json:"avg_rating"`
}

// Candidates reduces a candidate collection to summary figures. Percentages
// and averages are rounded to one decimal place; an empty collection yields
// zeros, never NaN.
func Candidates(cs []domain.Candidate) CandidateStats {
	s := CandidateStats{
		Total:      len(cs),
		ByStatus:   map[string]Bucket{},
		ByPosition: map[string]Bucket{},
	}

	var ratingSum, roundsSum float64
	statusCounts := map[string]int{}
	positionCounts := map[string]int{}
	for _, c := range cs {
		statusCounts[string(c.Status)]++
		if c.Position != "" {
			positionCounts[c.Position]++
		}
		ratingSum += float64(c.Rating)
		roundsSum += float64(c.RoundsCompleted)
	}

	s.ByStatus = buckets(statusCounts, s.Total)
	s.ByPosition = buckets(positionCounts, s.Total)
	s.AvgRating = average(ratingSum, s.Total)
	s.AvgRoundsCompleted = average(roundsSum, s.Total)
	return s
}

// Jobs reduces a job collection to summary figures.
func Jobs(js []domain.Job) JobStats {
	s := JobStats{Total: len(js)}

	var roundsSum float64
	statusCounts := map[string]int{}
	for _, j := range js {
		statusCounts[string(j.Status)]++
		s.TotalCandidates += j.Candidates
		roundsSum += float64(len(j.Rounds))
	}

	s.ByStatus = buckets(statusCounts, s.Total)
	s.AvgCandidates = average(float64(s.TotalCandidates), s.Total)
	s.AvgPlannedRounds = average(roundsSum, s.Total)
	return s
}

// Rounds reduces a candidate's interview rounds to summary figures. The
// question-type breakdown is computed over all questions across all rounds;
// the average rating covers completed rounds only.
func Rounds(rs []domain.InterviewRound) RoundStats {
	s := RoundStats{Total: len(rs)}

	var ratingSum float64
	totalQuestions := 0
	statusCounts := map[string]int{}
	typeCounts := map[string]int{}
	for _, r := range rs {
		statusCounts[string(r.Status)]++
		if r.Status == domain.RoundCompleted {
			s.Completed++
			ratingSum += r.Rating
		}
		for _, q := range r.Questions {
			typeCounts[string(q.Type)]++
			totalQuestions++
		}
	}

	s.ByStatus = buckets(statusCounts, s.Total)
	s.ByQuestionType = buckets(typeCounts, totalQuestions)
	s.AvgRating = average(ratingSum, s.Completed)
	return s
}

func buckets(counts map[string]int, total int) map[string]Bucket {
	out := make(map[string]Bucket, len(counts))
	for value, count := range counts {
		out[value] = Bucket{Count: count, Percent: percent(count, total)}
	}
	return out
}

// percent is the one-decimal share of total, 0 when total is 0.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(100 * float64(count) / float64(total))
}

// average is the one-decimal mean, 0 when the collection is empty.
func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return round1(sum / float64(n))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package query

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

// fixtureCandidates mirrors the seed data the list views ship with: ten
// candidates, ratings summing to 39.
func fixtureCandidates() []domain.Candidate {
	rows := []struct {
		name     string
		position string
		status   domain.CandidateStatus
		rating   int
		jobID    string
	}{
		{"Alice Johnson", "Frontend Developer", domain.CandidateScheduled, 4, "ENG-01"},
		{"Bob Smith", "Backend Developer", domain.CandidatePendingFeedback, 3, "ENG-01"},
		{"Carol White", "QA Engineer", domain.CandidateScheduled, 5, "ENG-02"},
		{"David Brown", "DevOps Engineer", domain.CandidateCompleted, 3, "ENG-02"},
		{"Eve Davis", "Full Stack Developer", domain.CandidateScheduled, 4, "ENG-01"},
		{"Frank Miller", "Data Analyst", domain.CandidateCancelled, 4, "ENG-03"},
		{"Grace Lee", "Backend Developer", domain.CandidateScheduled, 4, "ENG-01"},
		{"Henry Wilson", "Frontend Developer", domain.CandidateRescheduled, 4, "ENG-02"},
		{"Ivy Chen", "Product Manager", domain.CandidateNoShow, 3, "ENG-03"},
		{"Jack Taylor", "Mobile Developer", domain.CandidateScheduled, 5, "ENG-02"},
	}

	cs := make([]domain.Candidate, len(rows))
	for i, r := range rows {
		id, _ := uuid.NewV7()
		cs[i] = domain.Candidate{
			ID:              id,
			CandidateID:     fmt.Sprintf("CAND-%03d", i+1),
			JobID:           r.jobID,
			Name:            r.name,
			Email:           strings.ToLower(strings.Fields(r.name)[0]) + "@example.com",
			Position:        r.position,
			Rating:          r.rating,
			RoundsCompleted: i % 3,
			Status:          r.status,
			LastUpdated:     day(i + 1),
		}
	}
	return cs
}

func containsSearch(c domain.Candidate, search string) bool {
	for _, field := range CandidateFields.SearchText(c) {
		if strings.Contains(strings.ToLower(field), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

func TestSearchFilterCorrectness(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Search: "developer"}, CandidateFields)

	if len(result.Items) == 0 {
		t.Fatal("expected matches for 'developer'")
	}
	matched := map[string]bool{}
	for _, item := range result.Items {
		if !containsSearch(item, "developer") {
			t.Errorf("returned candidate %s does not match search", item.Name)
		}
		matched[item.ID.String()] = true
	}
	for _, c := range cs {
		if !matched[c.ID.String()] && containsSearch(c, "developer") {
			t.Errorf("candidate %s matches search but was excluded", c.Name)
		}
	}
}

func TestSearchAndStatusFilter(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{
		Search:   "developer",
		Statuses: []string{string(domain.CandidateScheduled)},
	}, CandidateFields)

	want := []string{"Alice Johnson", "Eve Davis", "Grace Lee", "Jack Taylor"}
	if result.Total != len(want) {
		t.Fatalf("expected total %d, got %d", len(want), result.Total)
	}
	for i, item := range result.Items {
		if item.Name != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], item.Name)
		}
	}
}

func TestStatusAllSentinel(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Statuses: []string{"all"}}, CandidateFields)
	if result.Total != len(cs) {
		t.Errorf("expected 'all' sentinel to disable filtering, total %d", result.Total)
	}
}

func TestStatusFilterCaseInsensitive(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Statuses: []string{"scheduled"}}, CandidateFields)
	if result.Total != 5 {
		t.Errorf("expected 5 scheduled candidates, got %d", result.Total)
	}
}

func TestCategoryFilter(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Categories: []string{"Backend Developer"}}, CandidateFields)
	if result.Total != 2 {
		t.Errorf("expected 2 backend developers, got %d", result.Total)
	}
}

func TestScopeFilter(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Scope: "ENG-01"}, CandidateFields)
	if result.Total != 4 {
		t.Fatalf("expected 4 candidates scoped to ENG-01, got %d", result.Total)
	}
	for _, item := range result.Items {
		if item.JobID != "ENG-01" {
			t.Errorf("candidate %s has job id %s", item.Name, item.JobID)
		}
	}
}

func TestPaginationTotals(t *testing.T) {
	cs := fixtureCandidates()
	spec := Spec{Statuses: []string{string(domain.CandidateScheduled)}, Limit: 2}

	first := Run(cs, spec, CandidateFields)
	seen := 0
	for page := 0; ; page++ {
		spec.Page = page
		result := Run(cs, spec, CandidateFields)
		if result.Total != first.Total {
			t.Errorf("page %d: total changed from %d to %d", page, first.Total, result.Total)
		}
		if len(result.Items) == 0 {
			break
		}
		if len(result.Items) > spec.Limit {
			t.Errorf("page %d: got %d items, limit %d", page, len(result.Items), spec.Limit)
		}
		seen += len(result.Items)
	}
	if seen != first.Total {
		t.Errorf("page sweep returned %d items, total is %d", seen, first.Total)
	}
}

func TestPageBeyondEnd(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Page: 5, Limit: 10}, CandidateFields)
	if len(result.Items) != 0 {
		t.Errorf("expected empty items, got %d", len(result.Items))
	}
	if result.Total != 10 {
		t.Errorf("expected total 10, got %d", result.Total)
	}
}

func TestHugePageDoesNotOverflow(t *testing.T) {
	cs := fixtureCandidates()
	for _, page := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt / 4} {
		result := Run(cs, Spec{Page: page, Limit: 4}, CandidateFields)
		if len(result.Items) != 0 {
			t.Errorf("page %d: expected empty items, got %d", page, len(result.Items))
		}
		if result.Total != len(cs) {
			t.Errorf("page %d: expected total %d, got %d", page, len(cs), result.Total)
		}
	}

	empty := Run(nil, Spec{Page: math.MaxInt, Limit: 4}, CandidateFields)
	if len(empty.Items) != 0 || empty.Total != 0 {
		t.Errorf("empty collection: got %d items, total %d", len(empty.Items), empty.Total)
	}
}

func TestNegativePageTreatedAsFirst(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Page: -3, Limit: 4}, CandidateFields)
	if len(result.Items) != 4 {
		t.Errorf("expected first page of 4 items, got %d", len(result.Items))
	}
}

func TestNoLimitReturnsEverything(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{Page: 3}, CandidateFields)
	if len(result.Items) != len(cs) {
		t.Errorf("expected all %d items without a limit, got %d", len(cs), len(result.Items))
	}
}

func TestSortByRatingDesc(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{SortBy: "rating", SortOrder: Desc}, CandidateFields)
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i].Rating > result.Items[i-1].Rating {
			t.Fatalf("items not sorted descending at index %d", i)
		}
	}
}

func TestSortByDate(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{SortBy: "last_updated", SortOrder: Desc}, CandidateFields)
	if result.Items[0].Name != "Jack Taylor" {
		t.Errorf("expected most recently updated candidate first, got %s", result.Items[0].Name)
	}
	result = Run(cs, Spec{SortBy: "lastUpdated"}, CandidateFields)
	if result.Items[0].Name != "Alice Johnson" {
		t.Errorf("expected oldest candidate first, got %s", result.Items[0].Name)
	}
}

func TestUnknownSortFieldPreservesOrder(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{SortBy: "shoe_size"}, CandidateFields)
	for i, item := range result.Items {
		if item.ID != cs[i].ID {
			t.Fatalf("order changed at index %d for an unknown sort field", i)
		}
	}
}

func TestEmptySpecReturnsAll(t *testing.T) {
	cs := fixtureCandidates()
	result := Run(cs, Spec{}, CandidateFields)
	if result.Total != len(cs) || len(result.Items) != len(cs) {
		t.Errorf("expected whole collection, got %d/%d", len(result.Items), result.Total)
	}
}

func TestInputNeverMutated(t *testing.T) {
	cs := fixtureCandidates()
	before := make([]domain.Candidate, len(cs))
	copy(before, cs)

	Run(cs, Spec{Search: "developer", SortBy: "rating", SortOrder: Desc, Limit: 2}, CandidateFields)

	if !reflect.DeepEqual(cs, before) {
		t.Error("source collection was mutated by the query")
	}
}

func TestJobFieldsSearchAndSort(t *testing.T) {
	mk := func(jobID string, status domain.JobStatus, candidates int, created time.Time) domain.Job {
		id, _ := uuid.NewV7()
		return domain.Job{
			ID:     id,
			JobID:  jobID,
			JDLink: "https://jobs.example.com/" + strings.ToLower(jobID),
			Rounds: []domain.PlannedRound{{Name: "Screening"}},
			Status: status, Candidates: candidates, CreatedAt: created, UpdatedAt: created,
		}
	}
	js := []domain.Job{
		mk("ENG-01", domain.JobInProgress, 4, day(1)),
		mk("ENG-02", domain.JobPending, 5, day(2)),
		mk("SALES-01", domain.JobDone, 1, day(3)),
	}

	result := Run(js, Spec{Search: "eng-"}, JobFields)
	if result.Total != 2 {
		t.Errorf("expected 2 engineering jobs, got %d", result.Total)
	}

	result = Run(js, Spec{SortBy: "candidates", SortOrder: Desc}, JobFields)
	if result.Items[0].JobID != "ENG-02" {
		t.Errorf("expected ENG-02 first by candidate count, got %s", result.Items[0].JobID)
	}

	result = Run(js, Spec{Statuses: []string{"Done", "Pending"}}, JobFields)
	if result.Total != 2 {
		t.Errorf("expected 2 jobs for status set, got %d", result.Total)
	}
}

package domain

import "testing"

func TestVisibilityTable(t *testing.T) {
	cases := []struct {
		status RoundStatus
		want   Visibility
	}{
		{RoundScheduled, Visibility{false, false, false}},
		{RoundRescheduled, Visibility{false, false, false}},
		{RoundCancelled, Visibility{false, false, false}},
		{RoundDidNotAttend, Visibility{false, false, false}},
		{RoundPendingFeedback, Visibility{ShowQuestions: true, ShowSubmitAction: true}},
		{RoundCompleted, Visibility{ShowQuestions: true, ShowFeedback: true}},
	}
	for _, tc := range cases {
		if got := VisibilityFor(tc.status); got != tc.want {
			t.Errorf("VisibilityFor(%s) = %+v, want %+v", tc.status, got, tc.want)
		}
	}
}

func TestTransitionTable(t *testing.T) {
	legal := []struct{ from, to RoundStatus }{
		{RoundScheduled, RoundRescheduled},
		{RoundScheduled, RoundPendingFeedback},
		{RoundScheduled, RoundCancelled},
		{RoundScheduled, RoundDidNotAttend},
		{RoundRescheduled, RoundCancelled},
		{RoundRescheduled, RoundDidNotAttend},
		{RoundPendingFeedback, RoundCompleted},
	}
	for _, tc := range legal {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be legal", tc.from, tc.to)
		}
	}

	illegal := []struct{ from, to RoundStatus }{
		{RoundCompleted, RoundScheduled},
		{RoundCompleted, RoundRescheduled},
		{RoundCompleted, RoundPendingFeedback},
		{RoundCancelled, RoundScheduled},
		{RoundDidNotAttend, RoundScheduled},
		{RoundScheduled, RoundCompleted}, // only feedback submission completes a round
		{RoundRescheduled, RoundPendingFeedback},
	}
	for _, tc := range illegal {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be illegal", tc.from, tc.to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []RoundStatus{RoundCompleted, RoundCancelled, RoundDidNotAttend} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
		if len(s.NextStatuses()) != 0 {
			t.Errorf("terminal state %s has transition targets", s)
		}
	}
	for _, s := range []RoundStatus{RoundScheduled, RoundRescheduled, RoundPendingFeedback} {
		if s.IsTerminal() {
			t.Errorf("did not expect %s to be terminal", s)
		}
	}
}

func TestSubmitFeedback(t *testing.T) {
	round := InterviewRound{RoundNumber: 1, Status: RoundPendingFeedback}

	if err := round.SubmitFeedback("strong on fundamentals", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round.Status != RoundCompleted {
		t.Errorf("expected Completed, got %s", round.Status)
	}
	if round.Rating != 5 {
		t.Errorf("expected rating clamped to 5, got %v", round.Rating)
	}
	if round.Feedback != "strong on fundamentals" {
		t.Errorf("feedback not recorded: %q", round.Feedback)
	}
	if !VisibilityFor(round.Status).ShowFeedback {
		t.Error("completed round must show the feedback panel")
	}
}

func TestSubmitFeedbackEmptyAccepted(t *testing.T) {
	round := InterviewRound{RoundNumber: 1, Status: RoundPendingFeedback}
	if err := round.SubmitFeedback("", 3.3); err != nil {
		t.Fatalf("empty feedback must be accepted: %v", err)
	}
	if round.Rating != 3.5 {
		t.Errorf("expected rating snapped to 3.5, got %v", round.Rating)
	}
}

func TestSubmitFeedbackOnlyFromPendingFeedback(t *testing.T) {
	for _, status := range []RoundStatus{RoundScheduled, RoundRescheduled, RoundCompleted, RoundCancelled, RoundDidNotAttend} {
		round := InterviewRound{RoundNumber: 1, Status: status, Feedback: "kept"}
		if err := round.SubmitFeedback("new", 4); err != ErrIllegalTransition {
			t.Errorf("status %s: expected ErrIllegalTransition, got %v", status, err)
		}
		if round.Status != status {
			t.Errorf("status %s changed to %s on rejected submission", status, round.Status)
		}
	}
}

func TestClampRating(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-1, 0},
		{0, 0},
		{2.26, 2.5},
		{2.24, 2},
		{3.3, 3.5},
		{5, 5},
		{9.9, 5},
	}
	for _, tc := range cases {
		if got := ClampRating(tc.in); got != tc.want {
			t.Errorf("ClampRating(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

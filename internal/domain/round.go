package domain

import "math"

// Question is a single question asked during an interview round.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Answer   string       `json:"answer,omitempty"`
	Options  []string     `json:"options,omitempty"`
	Rating   int          `json:"rating,omitempty"`
}

// InterviewRound is one stage of a candidate's interview plan, carrying its
// own status and Q&A content. RoundNumber is 1-based and stable once created.
type InterviewRound struct {
	RoundNumber int         `json:"round_number"`
	Status      RoundStatus `json:"status"`
	Questions   []Question  `json:"questions,omitempty"`
	Feedback    string      `json:"feedback,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
}

// Visibility describes which parts of a round's detail view may be rendered.
type Visibility struct {
	ShowQuestions    bool `json:"show_questions"`
	ShowFeedback     bool `json:"show_feedback"`
	ShowSubmitAction bool `json:"show_submit_action"`
}

// VisibilityFor returns the display policy for a round status. Question and
// answer content exists only once an interview has actually happened; the
// feedback panel only once it has been written up.
func VisibilityFor(status RoundStatus) Visibility {
	return Visibility{
		ShowQuestions:    status == RoundPendingFeedback || status == RoundCompleted,
		ShowFeedback:     status == RoundCompleted,
		ShowSubmitAction: status == RoundPendingFeedback,
	}
}

// ClampRating snaps a rating to the nearest half step within [0, 5].
func ClampRating(rating float64) float64 {
	snapped := math.Round(rating*2) / 2
	if snapped < 0 {
		return 0
	}
	if snapped > 5 {
		return 5
	}
	return snapped
}

// SubmitFeedback records feedback and a rating for the round and moves it to
// Completed. It is the only way a round reaches Completed. Empty feedback is
// accepted; the rating is clamped to [0, 5].
func (r *InterviewRound) SubmitFeedback(feedback string, rating float64) error {
	if r.Status != RoundPendingFeedback {
		return ErrIllegalTransition
	}
	r.Feedback = feedback
	r.Rating = ClampRating(rating)
	r.Status = RoundCompleted
	return nil
}

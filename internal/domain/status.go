package domain

// JobStatus represents the lifecycle state of a job interview process.
type JobStatus string

const (
	JobPending    JobStatus = "Pending"
	JobInProgress JobStatus = "In progress"
	JobDone       JobStatus = "Done"
)

// IsValid checks if the job status is a known value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobPending, JobInProgress, JobDone:
		return true
	}
	return false
}

// CandidateStatus represents the overall state of a candidate's interview process.
type CandidateStatus string

const (
	CandidateScheduled       CandidateStatus = "Scheduled"
	CandidatePendingFeedback CandidateStatus = "Pending Feedback"
	CandidateCompleted       CandidateStatus = "Completed"
	CandidateCancelled       CandidateStatus = "Cancelled"
	CandidateNoShow          CandidateStatus = "No Show"
	CandidateRescheduled     CandidateStatus = "Rescheduled"
	CandidateDidNotAttend    CandidateStatus = "Did Not Attend"
)

// IsValid checks if the candidate status is a known value.
func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateScheduled, CandidatePendingFeedback, CandidateCompleted,
		CandidateCancelled, CandidateNoShow, CandidateRescheduled, CandidateDidNotAttend:
		return true
	}
	return false
}

// IsTerminal returns true if no further progress is modeled for the candidate.
func (s CandidateStatus) IsTerminal() bool {
	switch s {
	case CandidateCompleted, CandidateCancelled, CandidateDidNotAttend:
		return true
	}
	return false
}

// RoundStatus represents the lifecycle state of a single interview round.
type RoundStatus string

const (
	RoundScheduled       RoundStatus = "Scheduled"
	RoundRescheduled     RoundStatus = "Rescheduled"
	RoundPendingFeedback RoundStatus = "Pending Feedback"
	RoundCompleted       RoundStatus = "Completed"
	RoundCancelled       RoundStatus = "Cancelled"
	RoundDidNotAttend    RoundStatus = "Did Not Attend"
)

// IsValid checks if the round status is a known value.
func (s RoundStatus) IsValid() bool {
	switch s {
	case RoundScheduled, RoundRescheduled, RoundPendingFeedback,
		RoundCompleted, RoundCancelled, RoundDidNotAttend:
		return true
	}
	return false
}

// IsTerminal returns true if the status represents a final state for a round.
func (s RoundStatus) IsTerminal() bool {
	switch s {
	case RoundCompleted, RoundCancelled, RoundDidNotAttend:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to target is a legal round
// transition. Completed is only reachable through feedback submission.
func (s RoundStatus) CanTransition(target RoundStatus) bool {
	for _, next := range s.NextStatuses() {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses lists the legal transition targets from s.
func (s RoundStatus) NextStatuses() []RoundStatus {
	switch s {
	case RoundScheduled:
		return []RoundStatus{RoundRescheduled, RoundPendingFeedback, RoundCancelled, RoundDidNotAttend}
	case RoundRescheduled:
		return []RoundStatus{RoundCancelled, RoundDidNotAttend}
	case RoundPendingFeedback:
		return []RoundStatus{RoundCompleted}
	}
	return nil
}

// QuestionType classifies interview questions.
type QuestionType string

const (
	QuestionTheory      QuestionType = "theory"
	QuestionProgramming QuestionType = "programming"
	QuestionSingle      QuestionType = "single"
	QuestionMultiple    QuestionType = "multiple"
	QuestionFill        QuestionType = "fill"
	QuestionMatching    QuestionType = "matching"
	QuestionPractical   QuestionType = "practical"
)

// IsValid checks if the question type is supported.
func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTheory, QuestionProgramming, QuestionSingle,
		QuestionMultiple, QuestionFill, QuestionMatching, QuestionPractical:
		return true
	}
	return false
}

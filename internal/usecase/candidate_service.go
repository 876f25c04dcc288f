package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/metrics"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/publisher"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/query"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/stats"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/store"
)

// CandidateService handles queries and mutations over the candidate
// collection. Every mutation is a read-modify-write of the whole collection,
// serialized with a mutex so back-to-back calls always see a fresh read. There
// is no cross-process coordination; a second process writing the same store
// will clobber unseen writes.
type CandidateService struct {
	col    *store.Collection[domain.Candidate]
	pub    publisher.Publisher
	logger *zap.Logger
	strict bool
	mu     sync.Mutex
}

// NewCandidateService creates a CandidateService. With strict enabled, status
// changes are validated against the lifecycle instead of being accepted as-is.
func NewCandidateService(col *store.Collection[domain.Candidate], pub publisher.Publisher, logger *zap.Logger, strict bool) *CandidateService {
	return &CandidateService{
		col:    col,
		pub:    pub,
		logger: logger,
		strict: strict,
	}
}

// List returns one page of candidates matching the spec.
func (s *CandidateService) List(ctx context.Context, spec query.Spec) query.Result[domain.Candidate] {
	start := time.Now()
	result := query.Run(s.col.Load(ctx), spec, query.CandidateFields)
	metrics.QueriesTotal.WithLabelValues(s.col.Name()).Inc()
	metrics.QueryDuration.WithLabelValues(s.col.Name()).Observe(time.Since(start).Seconds())
	return result
}

// Get retrieves a candidate by its ID.
func (s *CandidateService) Get(ctx context.Context, id uuid.UUID) (domain.Candidate, error) {
	for _, c := range s.col.Load(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Candidate{}, domain.ErrRecordNotFound
}

// Stats summarizes the collection, optionally scoped to one job process.
func (s *CandidateService) Stats(ctx context.Context, jobID string) stats.CandidateStats {
	cs := s.col.Load(ctx)
	if jobID != "" {
		scoped := make([]domain.Candidate, 0, len(cs))
		for _, c := range cs {
			if c.JobID == jobID {
				scoped = append(scoped, c)
			}
		}
		cs = scoped
	}
	return stats.Candidates(cs)
}

// RoundStats summarizes the interview rounds of one candidate.
func (s *CandidateService) RoundStats(ctx context.Context, id uuid.UUID) (stats.RoundStats, error) {
	cand, err := s.Get(ctx, id)
	if err != nil {
		return stats.RoundStats{}, err
	}
	return stats.Rounds(cand.Rounds), nil
}

// Create appends a new candidate record and writes the collection back.
func (s *CandidateService) Create(ctx context.Context, input domain.CandidateInput) (domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, cand, err := domain.CreateCandidate(s.col.Load(ctx), input, time.Now().UTC())
	if err != nil {
		return domain.Candidate{}, err
	}
	if err := s.save(ctx, cs); err != nil {
		return domain.Candidate{}, err
	}

	s.logger.Info("Candidate created",
		zap.String("record_id", cand.ID.String()),
		zap.String("candidate_id", cand.CandidateID),
	)
	s.publish(ctx, publisher.ActionCreated, cand.ID)
	return cand, nil
}

// Update merges a patch onto the matching candidate. A missing ID leaves the
// collection unchanged and surfaces as ErrRecordNotFound.
func (s *CandidateService) Update(ctx context.Context, id uuid.UUID, patch domain.CandidatePatch) (domain.Candidate, error) {
	if s.strict && patch.Status != nil && !patch.Status.IsValid() {
		return domain.Candidate{}, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, found := domain.UpdateCandidate(s.col.Load(ctx), id, patch, time.Now().UTC())
	if !found {
		return domain.Candidate{}, domain.ErrRecordNotFound
	}
	if err := s.save(ctx, cs); err != nil {
		return domain.Candidate{}, err
	}

	s.publish(ctx, publisher.ActionUpdated, id)
	return pick(cs, id)
}

// UpdateStatus rewrites only the candidate's status and timestamp. By default
// any status value is accepted; strict mode rejects unknown values.
func (s *CandidateService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) (domain.Candidate, error) {
	if s.strict && !status.IsValid() {
		return domain.Candidate{}, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, found := domain.UpdateCandidateStatus(s.col.Load(ctx), id, status, time.Now().UTC())
	if !found {
		return domain.Candidate{}, domain.ErrRecordNotFound
	}
	if err := s.save(ctx, cs); err != nil {
		return domain.Candidate{}, err
	}

	s.logger.Info("Candidate status changed",
		zap.String("record_id", id.String()),
		zap.String("status", string(status)),
	)
	s.publish(ctx, publisher.ActionStatusChanged, id)
	return pick(cs, id)
}

// UpdateRoundStatus rewrites the status of one interview round. By default any
// value is accepted; strict mode validates the transition against the round
// lifecycle.
func (s *CandidateService) UpdateRoundStatus(ctx context.Context, id uuid.UUID, roundNumber int, status domain.RoundStatus) (domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.col.Load(ctx)
	idx, roundIdx, err := s.findRound(cs, id, roundNumber)
	if err != nil {
		return domain.Candidate{}, err
	}

	if s.strict {
		if !status.IsValid() {
			return domain.Candidate{}, domain.ErrInvalidStatus
		}
		if !cs[idx].Rounds[roundIdx].Status.CanTransition(status) {
			return domain.Candidate{}, domain.ErrIllegalTransition
		}
	}

	out := cloneWithRounds(cs, idx)
	out[idx].Rounds[roundIdx].Status = status
	out[idx].RoundsCompleted = completed(out[idx].Rounds)
	out[idx].LastUpdated = time.Now().UTC()

	if err := s.save(ctx, out); err != nil {
		return domain.Candidate{}, err
	}

	s.publish(ctx, publisher.ActionStatusChanged, id)
	return out[idx], nil
}

// SubmitFeedback records feedback and a rating for one interview round,
// moving it to Completed. This is the only path a round takes to Completed.
func (s *CandidateService) SubmitFeedback(ctx context.Context, id uuid.UUID, roundNumber int, feedback string, rating float64) (domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.col.Load(ctx)
	idx, roundIdx, err := s.findRound(cs, id, roundNumber)
	if err != nil {
		return domain.Candidate{}, err
	}

	out := cloneWithRounds(cs, idx)
	if err := out[idx].Rounds[roundIdx].SubmitFeedback(feedback, rating); err != nil {
		return domain.Candidate{}, err
	}
	out[idx].RoundsCompleted = completed(out[idx].Rounds)
	out[idx].LastUpdated = time.Now().UTC()

	if err := s.save(ctx, out); err != nil {
		return domain.Candidate{}, err
	}

	s.logger.Info("Round feedback submitted",
		zap.String("record_id", id.String()),
		zap.Int("round", roundNumber),
		zap.Float64("rating", out[idx].Rounds[roundIdx].Rating),
	)
	s.publish(ctx, publisher.ActionFeedbackSubmitted, id)
	return out[idx], nil
}

// Delete removes the matching candidate. A missing ID surfaces as
// ErrRecordNotFound with the collection untouched.
func (s *CandidateService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, found := domain.DeleteCandidate(s.col.Load(ctx), id)
	if !found {
		return domain.ErrRecordNotFound
	}
	if err := s.save(ctx, cs); err != nil {
		return err
	}

	s.logger.Info("Candidate deleted", zap.String("record_id", id.String()))
	s.publish(ctx, publisher.ActionDeleted, id)
	return nil
}

func (s *CandidateService) save(ctx context.Context, cs []domain.Candidate) error {
	if err := s.col.Save(ctx, cs); err != nil {
		metrics.StoreWriteFailures.WithLabelValues(s.col.Name()).Inc()
		s.logger.Error("Failed to write candidate collection", zap.Error(err))
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (s *CandidateService) publish(ctx context.Context, action string, id uuid.UUID) {
	event := &publisher.Event{
		Collection: s.col.Name(),
		Action:     action,
		RecordID:   id.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.pub.Publish(ctx, event); err != nil {
		metrics.PublishFailures.Inc()
		s.logger.Warn("Failed to publish change event", zap.String("action", action), zap.Error(err))
	}
	metrics.MutationsTotal.WithLabelValues(s.col.Name(), action).Inc()
}

func (s *CandidateService) findRound(cs []domain.Candidate, id uuid.UUID, roundNumber int) (int, int, error) {
	for i := range cs {
		if cs[i].ID != id {
			continue
		}
		for j := range cs[i].Rounds {
			if cs[i].Rounds[j].RoundNumber == roundNumber {
				return i, j, nil
			}
		}
		return 0, 0, domain.ErrRoundNotFound
	}
	return 0, 0, domain.ErrRecordNotFound
}

// cloneWithRounds copies the collection and deep-copies the round slice of the
// record at idx, so in-place round edits never leak into the loaded snapshot.
func cloneWithRounds(cs []domain.Candidate, idx int) []domain.Candidate {
	out := make([]domain.Candidate, len(cs))
	copy(out, cs)
	rounds := make([]domain.InterviewRound, len(out[idx].Rounds))
	copy(rounds, out[idx].Rounds)
	out[idx].Rounds = rounds
	return out
}

func completed(rounds []domain.InterviewRound) int {
	n := 0
	for _, r := range rounds {
		if r.Status == domain.RoundCompleted {
			n++
		}
	}
	return n
}

func pick(cs []domain.Candidate, id uuid.UUID) (domain.Candidate, error) {
	for _, c := range cs {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Candidate{}, domain.ErrRecordNotFound
}

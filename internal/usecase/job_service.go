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

// JobService handles queries and mutations over the job interview collection.
// Mutation semantics match CandidateService: whole-collection read-modify-write
// serialized with a mutex, single-process only.
type JobService struct {
	col    *store.Collection[domain.Job]
	pub    publisher.Publisher
	logger *zap.Logger
	strict bool
	mu     sync.Mutex
}

// NewJobService creates a JobService.
func NewJobService(col *store.Collection[domain.Job], pub publisher.Publisher, logger *zap.Logger, strict bool) *JobService {
	return &JobService{
		col:    col,
		pub:    pub,
		logger: logger,
		strict: strict,
	}
}

// List returns one page of jobs matching the spec.
func (s *JobService) List(ctx context.Context, spec query.Spec) query.Result[domain.Job] {
	start := time.Now()
	result := query.Run(s.col.Load(ctx), spec, query.JobFields)
	metrics.QueriesTotal.WithLabelValues(s.col.Name()).Inc()
	metrics.QueryDuration.WithLabelValues(s.col.Name()).Observe(time.Since(start).Seconds())
	return result
}

// Get retrieves a job by its ID.
func (s *JobService) Get(ctx context.Context, id uuid.UUID) (domain.Job, error) {
	for _, j := range s.col.Load(ctx) {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Job{}, domain.ErrRecordNotFound
}

// Stats summarizes the job collection.
func (s *JobService) Stats(ctx context.Context) stats.JobStats {
	return stats.Jobs(s.col.Load(ctx))
}

// Create appends a new job record and writes the collection back.
func (s *JobService) Create(ctx context.Context, input domain.JobInput) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	js, job, err := domain.CreateJob(s.col.Load(ctx), input, time.Now().UTC())
	if err != nil {
		return domain.Job{}, err
	}
	if err := s.save(ctx, js); err != nil {
		return domain.Job{}, err
	}

	s.logger.Info("Job created",
		zap.String("record_id", job.ID.String()),
		zap.String("job_id", job.JobID),
	)
	s.publish(ctx, publisher.ActionCreated, job.ID)
	return job, nil
}

// Update merges a patch onto the matching job. A missing ID leaves the
// collection unchanged and surfaces as ErrRecordNotFound.
func (s *JobService) Update(ctx context.Context, id uuid.UUID, patch domain.JobPatch) (domain.Job, error) {
	if s.strict && patch.Status != nil && !patch.Status.IsValid() {
		return domain.Job{}, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	js, found, err := domain.UpdateJob(s.col.Load(ctx), id, patch, time.Now().UTC())
	if err != nil {
		return domain.Job{}, err
	}
	if !found {
		return domain.Job{}, domain.ErrRecordNotFound
	}
	if err := s.save(ctx, js); err != nil {
		return domain.Job{}, err
	}

	s.publish(ctx, publisher.ActionUpdated, id)
	return pickJob(js, id)
}

// UpdateStatus rewrites only the job's status and timestamp. By default any
// status value is accepted; strict mode rejects unknown values.
func (s *JobService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus) (domain.Job, error) {
	if s.strict && !status.IsValid() {
		return domain.Job{}, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	js, found := domain.UpdateJobStatus(s.col.Load(ctx), id, status, time.Now().UTC())
	if !found {
		return domain.Job{}, domain.ErrRecordNotFound
	}
	if err := s.save(ctx, js); err != nil {
		return domain.Job{}, err
	}

	s.logger.Info("Job status changed",
		zap.String("record_id", id.String()),
		zap.String("status", string(status)),
	)
	s.publish(ctx, publisher.ActionStatusChanged, id)
	return pickJob(js, id)
}

// Delete removes the matching job. A missing ID surfaces as ErrRecordNotFound
// with the collection untouched.
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	js, found := domain.DeleteJob(s.col.Load(ctx), id)
	if !found {
		return domain.ErrRecordNotFound
	}
	if err := s.save(ctx, js); err != nil {
		return err
	}

	s.logger.Info("Job deleted", zap.String("record_id", id.String()))
	s.publish(ctx, publisher.ActionDeleted, id)
	return nil
}

func (s *JobService) save(ctx context.Context, js []domain.Job) error {
	if err := s.col.Save(ctx, js); err != nil {
		metrics.StoreWriteFailures.WithLabelValues(s.col.Name()).Inc()
		s.logger.Error("Failed to write job collection", zap.Error(err))
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (s *JobService) publish(ctx context.Context, action string, id uuid.UUID) {
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

func pickJob(js []domain.Job, id uuid.UUID) (domain.Job, error) {
	for _, j := range js {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Job{}, domain.ErrRecordNotFound
}

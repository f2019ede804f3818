package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lineworks/workforce-system/internal/api/metrics"
	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// WorkLogService implements work session use cases.
type WorkLogService struct {
	repo   ports.WorkLogRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewWorkLogService(repo ports.WorkLogRepository, users ports.UserRepository, logger zerolog.Logger) *WorkLogService {
	return &WorkLogService{repo: repo, users: users, logger: logger}
}

// Start opens a new work session for a worker. The worker must exist and be
// active.
func (s *WorkLogService) Start(ctx context.Context, input ports.StartWorkLogInput) (*domain.WorkLog, error) {
	if !input.ShiftType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidShiftType, input.ShiftType)
	}
	worker, err := s.users.FindByID(ctx, input.WorkerID)
	if err != nil {
		return nil, err
	}
	if !worker.Active {
		return nil, domain.ErrUserInactive
	}

	now := time.Now().UTC()
	log := &domain.WorkLog{
		ID:        NewID(),
		WorkerID:  input.WorkerID,
		LineID:    input.LineID,
		ProcessID: input.ProcessID,
		ShiftType: input.ShiftType,
		StartedAt: now,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Error().Err(err).Str("worker_id", input.WorkerID).Msg("failed to start work log")
		return nil, err
	}
	metrics.WorkLogsTotal.WithLabelValues("start").Inc()

	s.logger.Info().Str("work_log_id", log.ID).Str("worker_id", input.WorkerID).Msg("work log started")
	return log, nil
}

// End closes an open work session. Ending an already-ended session fails
// with ErrWorkLogAlreadyEnded and leaves the stored end time untouched.
func (s *WorkLogService) End(ctx context.Context, id string) (*domain.WorkLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log.Ended() {
		return nil, domain.ErrWorkLogAlreadyEnded
	}

	endedAt := time.Now().UTC()
	if err := s.repo.End(ctx, id, endedAt); err != nil {
		return nil, err
	}
	metrics.WorkLogsTotal.WithLabelValues("end").Inc()

	log.EndedAt = &endedAt
	s.logger.Info().Str("work_log_id", id).Msg("work log ended")
	return log, nil
}

// ListByWorker returns all sessions of one worker, newest first.
func (s *WorkLogService) ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkLog, error) {
	if _, err := s.users.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	return s.repo.ListByWorker(ctx, workerID)
}

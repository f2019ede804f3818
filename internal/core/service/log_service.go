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

// LogService implements training/defect log use cases. Deletion is gated on
// the actor's role (MANAGER or ADMIN); creation additionally verifies the
// referenced worker exists.
type LogService struct {
	training ports.TrainingLogRepository
	defects  ports.DefectLogRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewLogService(
	training ports.TrainingLogRepository,
	defects ports.DefectLogRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *LogService {
	return &LogService{training: training, defects: defects, users: users, logger: logger}
}

func (s *LogService) CreateTrainingLog(ctx context.Context, actor ports.Actor, input ports.CreateLogInput) (*domain.TrainingLog, error) {
	if err := s.validateLogInput(ctx, input); err != nil {
		return nil, err
	}

	log := &domain.TrainingLog{
		ID:        NewID(),
		WorkerID:  input.WorkerID,
		LineID:    input.LineID,
		ProcessID: input.ProcessID,
		ShiftType: input.ShiftType,
		Memo:      input.Memo,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.training.Create(ctx, log); err != nil {
		s.logger.Error().Err(err).Str("worker_id", input.WorkerID).Msg("failed to create training log")
		return nil, err
	}
	metrics.LogEntriesTotal.WithLabelValues("training", "create").Inc()

	s.logger.Info().Str("training_log_id", log.ID).Str("worker_id", input.WorkerID).Msg("training log created")
	return log, nil
}

func (s *LogService) ListTrainingLogs(ctx context.Context, workerID string) ([]*domain.TrainingLog, error) {
	if _, err := s.users.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	return s.training.ListByWorker(ctx, workerID)
}

func (s *LogService) DeleteTrainingLog(ctx context.Context, actor ports.Actor, id string) error {
	if !actor.Role.CanDeleteLogs() {
		return domain.ErrForbidden
	}
	if _, err := s.training.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.training.Delete(ctx, id); err != nil {
		return err
	}
	metrics.LogEntriesTotal.WithLabelValues("training", "delete").Inc()

	s.logger.Info().Str("training_log_id", id).Str("actor_id", actor.UserID).Msg("training log deleted")
	return nil
}

func (s *LogService) CreateDefectLog(ctx context.Context, actor ports.Actor, input ports.CreateLogInput) (*domain.DefectLog, error) {
	if err := s.validateLogInput(ctx, input); err != nil {
		return nil, err
	}

	log := &domain.DefectLog{
		ID:        NewID(),
		WorkerID:  input.WorkerID,
		LineID:    input.LineID,
		ProcessID: input.ProcessID,
		ShiftType: input.ShiftType,
		Memo:      input.Memo,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.defects.Create(ctx, log); err != nil {
		s.logger.Error().Err(err).Str("worker_id", input.WorkerID).Msg("failed to create defect log")
		return nil, err
	}
	metrics.LogEntriesTotal.WithLabelValues("defect", "create").Inc()

	s.logger.Info().Str("defect_log_id", log.ID).Str("worker_id", input.WorkerID).Msg("defect log created")
	return log, nil
}

func (s *LogService) ListDefectLogs(ctx context.Context, workerID string) ([]*domain.DefectLog, error) {
	if _, err := s.users.FindByID(ctx, workerID); err != nil {
		return nil, err
	}
	return s.defects.ListByWorker(ctx, workerID)
}

func (s *LogService) DeleteDefectLog(ctx context.Context, actor ports.Actor, id string) error {
	if !actor.Role.CanDeleteLogs() {
		return domain.ErrForbidden
	}
	if _, err := s.defects.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.defects.Delete(ctx, id); err != nil {
		return err
	}
	metrics.LogEntriesTotal.WithLabelValues("defect", "delete").Inc()

	s.logger.Info().Str("defect_log_id", id).Str("actor_id", actor.UserID).Msg("defect log deleted")
	return nil
}

// validateLogInput rejects malformed input before any write and verifies the
// referenced worker exists.
func (s *LogService) validateLogInput(ctx context.Context, input ports.CreateLogInput) error {
	if !input.ShiftType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidShiftType, input.ShiftType)
	}
	if _, err := s.users.FindByID(ctx, input.WorkerID); err != nil {
		return err
	}
	return nil
}

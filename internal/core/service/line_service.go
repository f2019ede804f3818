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

// LineService implements line/process/shift use cases.
type LineService struct {
	repo   ports.LineRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewLineService(repo ports.LineRepository, users ports.UserRepository, logger zerolog.Logger) *LineService {
	return &LineService{repo: repo, users: users, logger: logger}
}

// CreateLine persists a new empty line.
func (s *LineService) CreateLine(ctx context.Context, input ports.CreateLineInput) (*domain.Line, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: line name is required", domain.ErrInvalidLineInput)
	}

	now := time.Now().UTC()
	line := &domain.Line{
		ID:        NewID(),
		Name:      input.Name,
		Order:     input.Order,
		Processes: []domain.Process{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateLine(ctx, line); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create line")
		return nil, err
	}

	s.logger.Info().Str("line_id", line.ID).Str("name", line.Name).Msg("line created")
	return line, nil
}

// CreateProcess persists a new process on a line together with its DAY and
// NIGHT shift rows. Both rows start in NORMAL with a vacant waiting slot.
func (s *LineService) CreateProcess(ctx context.Context, input ports.CreateProcessInput) (*domain.Process, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: process name is required", domain.ErrInvalidLineInput)
	}
	if _, err := s.repo.FindLine(ctx, input.LineID); err != nil {
		return nil, err
	}

	process := &domain.Process{
		ID:     NewID(),
		LineID: input.LineID,
		Name:   input.Name,
		Order:  input.Order,
	}
	process.Shifts = []domain.ProcessShift{
		{ID: NewID(), ProcessID: process.ID, ShiftType: domain.ShiftDay, WorkStatus: domain.WorkNormal},
		{ID: NewID(), ProcessID: process.ID, ShiftType: domain.ShiftNight, WorkStatus: domain.WorkNormal},
	}
	if err := s.repo.CreateProcess(ctx, process); err != nil {
		s.logger.Error().Err(err).Str("line_id", input.LineID).Msg("failed to create process")
		return nil, err
	}

	s.logger.Info().Str("process_id", process.ID).Str("line_id", input.LineID).Msg("process created")
	return process, nil
}

// Board returns every line with its process tree and the aggregate work
// status for both shift types.
func (s *LineService) Board(ctx context.Context) ([]ports.LineBoard, error) {
	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	boards := make([]ports.LineBoard, 0, len(lines))
	for _, line := range lines {
		boards = append(boards, toBoard(*line))
	}
	return boards, nil
}

// LineSummary returns the flattened display model for one line.
func (s *LineService) LineSummary(ctx context.Context, lineID string) (*domain.LineSummary, error) {
	line, err := s.repo.FindLine(ctx, lineID)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(*line)
	return &summary, nil
}

// UpdateShiftStatus applies a new work status to one (process, shift) pair
// and returns the refreshed board entry for the owning line.
func (s *LineService) UpdateShiftStatus(ctx context.Context, input ports.UpdateShiftStatusInput) (*ports.LineBoard, error) {
	if !input.ShiftType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidShiftType, input.ShiftType)
	}
	if !input.WorkStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidWorkStatus, input.WorkStatus)
	}

	if err := s.repo.UpdateShiftStatus(ctx, input.ProcessID, input.ShiftType, input.WorkStatus); err != nil {
		return nil, err
	}
	metrics.ShiftStatusUpdatesTotal.WithLabelValues(string(input.WorkStatus), string(input.ShiftType)).Inc()

	line, err := s.lineOfProcess(ctx, input.ProcessID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", input.ProcessID).
		Str("shift_type", string(input.ShiftType)).
		Str("work_status", string(input.WorkStatus)).
		Msg("shift status updated")

	board := toBoard(*line)
	return &board, nil
}

// AssignWaitingWorker places a worker reference on the waiting slot of one
// (process, shift) pair and returns the refreshed board entry for the owning
// line. The worker must exist; a reference already on the slot is replaced.
func (s *LineService) AssignWaitingWorker(ctx context.Context, input ports.AssignWaitingWorkerInput) (*ports.LineBoard, error) {
	if !input.ShiftType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidShiftType, input.ShiftType)
	}
	if input.WorkerID == "" {
		return nil, fmt.Errorf("%w: worker id is required", domain.ErrInvalidLineInput)
	}
	if _, err := s.users.FindByID(ctx, input.WorkerID); err != nil {
		return nil, err
	}

	if err := s.repo.SetWaitingWorker(ctx, input.ProcessID, input.ShiftType, input.WorkerID); err != nil {
		return nil, err
	}
	metrics.WaitingWorkerAssignmentsTotal.WithLabelValues(string(input.ShiftType)).Inc()

	line, err := s.lineOfProcess(ctx, input.ProcessID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", input.ProcessID).
		Str("shift_type", string(input.ShiftType)).
		Str("worker_id", input.WorkerID).
		Msg("waiting worker assigned")

	board := toBoard(*line)
	return &board, nil
}

// RemoveWaitingWorker clears the waiting slot of one (process, shift) pair.
// The clear is transactional in the repository; the full refreshed board is
// returned together with the removed reference so callers can re-render the
// whole board consistently.
func (s *LineService) RemoveWaitingWorker(ctx context.Context, input ports.RemoveWaitingWorkerInput) (*ports.RemoveWaitingWorkerResult, error) {
	if !input.ShiftType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidShiftType, input.ShiftType)
	}

	removed, err := s.repo.ClearWaitingWorker(ctx, input.ProcessID, input.ShiftType)
	if err != nil {
		return nil, err
	}
	if removed == "" {
		metrics.WaitingWorkerRemovalsTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.WaitingWorkerRemovalsTotal.WithLabelValues("cleared").Inc()
	}

	boards, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("process_id", input.ProcessID).
		Str("shift_type", string(input.ShiftType)).
		Str("removed_worker_id", removed).
		Msg("waiting worker removed")

	return &ports.RemoveWaitingWorkerResult{
		RemovedWorkerID: removed,
		Lines:           boards,
	}, nil
}

// lineOfProcess locates the line owning the given process by scanning the
// board. Process ids are globally unique so the first match wins.
func (s *LineService) lineOfProcess(ctx context.Context, processID string) (*domain.Line, error) {
	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		for _, p := range line.Processes {
			if p.ID == processID {
				return line, nil
			}
		}
	}
	return nil, domain.ErrProcessNotFound
}

func toBoard(line domain.Line) ports.LineBoard {
	statuses := make([]ports.LineStatus, 0, 2)
	for _, shiftType := range []domain.ShiftType{domain.ShiftDay, domain.ShiftNight} {
		status := domain.AggregateWorkStatus(line.Processes, shiftType)
		statuses = append(statuses, ports.LineStatus{
			ShiftType:  shiftType,
			WorkStatus: status,
			Label:      status.Label(),
			Category:   status.Category(),
		})
	}
	return ports.LineBoard{Line: line, Statuses: statuses}
}

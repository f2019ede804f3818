package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// LineStatus pairs a shift type with the aggregate work status computed
// across every process on a line.
type LineStatus struct {
	ShiftType  domain.ShiftType  `json:"shift_type"`
	WorkStatus domain.WorkStatus `json:"work_status"`
	Label      string            `json:"label"`
	Category   string            `json:"category"`
}

// LineBoard is one line of the full board view: the line tree plus its
// aggregate status for both shift types.
type LineBoard struct {
	Line     domain.Line  `json:"line"`
	Statuses []LineStatus `json:"statuses"`
}

// CreateLineInput carries the data needed to create a line.
type CreateLineInput struct {
	Name  string
	Order int
}

// CreateProcessInput carries the data needed to create a process on a line.
type CreateProcessInput struct {
	LineID string
	Name   string
	Order  int
}

// UpdateShiftStatusInput identifies one (process, shift) pair and the work
// status to apply.
type UpdateShiftStatusInput struct {
	ProcessID  string
	ShiftType  domain.ShiftType
	WorkStatus domain.WorkStatus
}

// AssignWaitingWorkerInput identifies the waiting slot to fill and the worker
// reference to place on it.
type AssignWaitingWorkerInput struct {
	ProcessID string
	ShiftType domain.ShiftType
	WorkerID  string
}

// RemoveWaitingWorkerInput identifies the waiting slot to clear.
type RemoveWaitingWorkerInput struct {
	ProcessID string
	ShiftType domain.ShiftType
}

// RemoveWaitingWorkerResult reports the cleared reference together with the
// full refreshed board so the caller can re-render consistently.
type RemoveWaitingWorkerResult struct {
	RemovedWorkerID string      `json:"removed_worker_id"`
	Lines           []LineBoard `json:"lines"`
}

// LineService defines use-case operations for lines and shifts.
type LineService interface {
	CreateLine(ctx context.Context, input CreateLineInput) (*domain.Line, error)
	CreateProcess(ctx context.Context, input CreateProcessInput) (*domain.Process, error)
	Board(ctx context.Context) ([]LineBoard, error)
	LineSummary(ctx context.Context, lineID string) (*domain.LineSummary, error)
	UpdateShiftStatus(ctx context.Context, input UpdateShiftStatusInput) (*LineBoard, error)
	AssignWaitingWorker(ctx context.Context, input AssignWaitingWorkerInput) (*LineBoard, error)
	RemoveWaitingWorker(ctx context.Context, input RemoveWaitingWorkerInput) (*RemoveWaitingWorkerResult, error)
}

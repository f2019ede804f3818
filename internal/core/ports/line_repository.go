package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// LineRepository defines persistence operations for lines, processes, and
// their shift records.
type LineRepository interface {
	CreateLine(ctx context.Context, line *domain.Line) error
	// CreateProcess inserts the process together with its two shift rows
	// (DAY and NIGHT) in a single transaction.
	CreateProcess(ctx context.Context, process *domain.Process) error
	// FindLine returns the line with its processes and shifts preloaded,
	// processes ordered ascending by their order field.
	FindLine(ctx context.Context, id string) (*domain.Line, error)
	// ListLines returns all lines with nested processes/shifts, lines and
	// processes ordered ascending by their order fields.
	ListLines(ctx context.Context) ([]*domain.Line, error)
	// UpdateShiftStatus sets the work status of one (process, shift) pair.
	// Returns domain.ErrProcessShiftNotFound when the pair does not exist.
	UpdateShiftStatus(ctx context.Context, processID string, shiftType domain.ShiftType, status domain.WorkStatus) error
	// ClearWaitingWorker atomically reads and clears the waiting-worker
	// reference of one (process, shift) pair, returning the reference that
	// was cleared (empty when the slot was already vacant). The read and
	// write happen inside one transaction with the row locked, so two
	// concurrent calls cannot both observe a non-empty reference.
	ClearWaitingWorker(ctx context.Context, processID string, shiftType domain.ShiftType) (string, error)
	// SetWaitingWorker places a worker reference on a (process, shift) pair.
	SetWaitingWorker(ctx context.Context, processID string, shiftType domain.ShiftType, workerID string) error
}

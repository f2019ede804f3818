package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// StartWorkLogInput carries the data needed to open a work session.
type StartWorkLogInput struct {
	WorkerID  string
	LineID    string
	ProcessID string
	ShiftType domain.ShiftType
}

// WorkLogService defines use-case operations for work sessions.
type WorkLogService interface {
	Start(ctx context.Context, input StartWorkLogInput) (*domain.WorkLog, error)
	End(ctx context.Context, id string) (*domain.WorkLog, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkLog, error)
}

package ports

import (
	"context"
	"time"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// WorkLogRepository defines persistence operations for work sessions.
type WorkLogRepository interface {
	Create(ctx context.Context, log *domain.WorkLog) error
	FindByID(ctx context.Context, id string) (*domain.WorkLog, error)
	// End stamps the session's end time. Returns domain.ErrWorkLogNotFound
	// when the session does not exist.
	End(ctx context.Context, id string, endedAt time.Time) error
	ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkLog, error)
}

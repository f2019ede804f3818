package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// BackupScheduleRepository persists the backup schedule singleton row.
type BackupScheduleRepository interface {
	Get(ctx context.Context) (*domain.BackupSchedule, error)
	Put(ctx context.Context, schedule *domain.BackupSchedule) error
}

// BackupService defines use-case operations for the backup schedule.
type BackupService interface {
	Get(ctx context.Context) (*domain.BackupSchedule, error)
	Update(ctx context.Context, times []string) (*domain.BackupSchedule, error)
}

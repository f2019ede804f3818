package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// TrainingLogRepository defines persistence operations for training logs.
type TrainingLogRepository interface {
	Create(ctx context.Context, log *domain.TrainingLog) error
	FindByID(ctx context.Context, id string) (*domain.TrainingLog, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.TrainingLog, error)
	Delete(ctx context.Context, id string) error
}

// DefectLogRepository defines persistence operations for defect logs.
type DefectLogRepository interface {
	Create(ctx context.Context, log *domain.DefectLog) error
	FindByID(ctx context.Context, id string) (*domain.DefectLog, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.DefectLog, error)
	Delete(ctx context.Context, id string) error
}

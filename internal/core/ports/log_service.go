package ports

import (
	"context"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// Actor identifies the caller of a role-gated operation. The API layer fills
// it from the verified JWT claims; services never re-derive identity from
// ambient request state.
type Actor struct {
	UserID string
	Role   domain.Role
}

// CreateLogInput carries the data shared by training and defect log creation.
type CreateLogInput struct {
	WorkerID  string
	LineID    string
	ProcessID string
	ShiftType domain.ShiftType
	Memo      string
}

// LogService defines use-case operations for training and defect logs.
type LogService interface {
	CreateTrainingLog(ctx context.Context, actor Actor, input CreateLogInput) (*domain.TrainingLog, error)
	ListTrainingLogs(ctx context.Context, workerID string) ([]*domain.TrainingLog, error)
	DeleteTrainingLog(ctx context.Context, actor Actor, id string) error
	CreateDefectLog(ctx context.Context, actor Actor, input CreateLogInput) (*domain.DefectLog, error)
	ListDefectLogs(ctx context.Context, workerID string) ([]*domain.DefectLog, error)
	DeleteDefectLog(ctx context.Context, actor Actor, id string) error
}

package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// WorkLogRepository implements ports.WorkLogRepository on Postgres.
type WorkLogRepository struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

func (r *WorkLogRepository) Create(ctx context.Context, log *domain.WorkLog) error {
	model := workLogToModel(*log)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *WorkLogRepository) FindByID(ctx context.Context, id string) (*domain.WorkLog, error) {
	var model WorkLogModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkLogNotFound
		}
		return nil, err
	}
	log := workLogFromModel(model)
	return &log, nil
}

func (r *WorkLogRepository) End(ctx context.Context, id string, endedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&WorkLogModel{}).
		Where("id = ? AND ended_at IS NULL", id).
		Update("ended_at", endedAt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrWorkLogNotFound
	}
	return nil
}

func (r *WorkLogRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkLog, error) {
	var models []WorkLogModel
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("started_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	logs := make([]*domain.WorkLog, 0, len(models))
	for _, m := range models {
		log := workLogFromModel(m)
		logs = append(logs, &log)
	}
	return logs, nil
}

func workLogToModel(l domain.WorkLog) WorkLogModel {
	return WorkLogModel{
		ID:        l.ID,
		WorkerID:  l.WorkerID,
		LineID:    l.LineID,
		ProcessID: l.ProcessID,
		ShiftType: string(l.ShiftType),
		StartedAt: l.StartedAt,
		EndedAt:   l.EndedAt,
		CreatedAt: l.CreatedAt,
	}
}

func workLogFromModel(m WorkLogModel) domain.WorkLog {
	return domain.WorkLog{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		LineID:    m.LineID,
		ProcessID: m.ProcessID,
		ShiftType: domain.ShiftType(m.ShiftType),
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
		CreatedAt: m.CreatedAt,
	}
}

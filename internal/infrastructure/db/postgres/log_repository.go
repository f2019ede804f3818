package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// TrainingLogRepository implements ports.TrainingLogRepository on Postgres.
type TrainingLogRepository struct {
	db *gorm.DB
}

func NewTrainingLogRepository(db *gorm.DB) *TrainingLogRepository {
	return &TrainingLogRepository{db: db}
}

func (r *TrainingLogRepository) Create(ctx context.Context, log *domain.TrainingLog) error {
	model := trainingLogToModel(*log)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *TrainingLogRepository) FindByID(ctx context.Context, id string) (*domain.TrainingLog, error) {
	var model TrainingLogModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTrainingLogNotFound
		}
		return nil, err
	}
	log := trainingLogFromModel(model)
	return &log, nil
}

func (r *TrainingLogRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.TrainingLog, error) {
	var models []TrainingLogModel
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	logs := make([]*domain.TrainingLog, 0, len(models))
	for _, m := range models {
		log := trainingLogFromModel(m)
		logs = append(logs, &log)
	}
	return logs, nil
}

func (r *TrainingLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&TrainingLogModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTrainingLogNotFound
	}
	return nil
}

// DefectLogRepository implements ports.DefectLogRepository on Postgres.
type DefectLogRepository struct {
	db *gorm.DB
}

func NewDefectLogRepository(db *gorm.DB) *DefectLogRepository {
	return &DefectLogRepository{db: db}
}

func (r *DefectLogRepository) Create(ctx context.Context, log *domain.DefectLog) error {
	model := defectLogToModel(*log)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *DefectLogRepository) FindByID(ctx context.Context, id string) (*domain.DefectLog, error) {
	var model DefectLogModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDefectLogNotFound
		}
		return nil, err
	}
	log := defectLogFromModel(model)
	return &log, nil
}

func (r *DefectLogRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.DefectLog, error) {
	var models []DefectLogModel
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	logs := make([]*domain.DefectLog, 0, len(models))
	for _, m := range models {
		log := defectLogFromModel(m)
		logs = append(logs, &log)
	}
	return logs, nil
}

func (r *DefectLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&DefectLogModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDefectLogNotFound
	}
	return nil
}

func trainingLogToModel(l domain.TrainingLog) TrainingLogModel {
	return TrainingLogModel{
		ID:        l.ID,
		WorkerID:  l.WorkerID,
		LineID:    l.LineID,
		ProcessID: l.ProcessID,
		ShiftType: string(l.ShiftType),
		Memo:      l.Memo,
		CreatedAt: l.CreatedAt,
	}
}

func trainingLogFromModel(m TrainingLogModel) domain.TrainingLog {
	return domain.TrainingLog{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		LineID:    m.LineID,
		ProcessID: m.ProcessID,
		ShiftType: domain.ShiftType(m.ShiftType),
		Memo:      m.Memo,
		CreatedAt: m.CreatedAt,
	}
}

func defectLogToModel(l domain.DefectLog) DefectLogModel {
	return DefectLogModel{
		ID:        l.ID,
		WorkerID:  l.WorkerID,
		LineID:    l.LineID,
		ProcessID: l.ProcessID,
		ShiftType: string(l.ShiftType),
		Memo:      l.Memo,
		CreatedAt: l.CreatedAt,
	}
}

func defectLogFromModel(m DefectLogModel) domain.DefectLog {
	return domain.DefectLog{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		LineID:    m.LineID,
		ProcessID: m.ProcessID,
		ShiftType: domain.ShiftType(m.ShiftType),
		Memo:      m.Memo,
		CreatedAt: m.CreatedAt,
	}
}

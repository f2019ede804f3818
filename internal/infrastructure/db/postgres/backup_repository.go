package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// backupScheduleRowID is the fixed id of the singleton schedule row.
const backupScheduleRowID = 1

// BackupScheduleRepository implements ports.BackupScheduleRepository on
// Postgres. The schedule is one row holding a JSON array of HH:mm strings.
type BackupScheduleRepository struct {
	db *gorm.DB
}

func NewBackupScheduleRepository(db *gorm.DB) *BackupScheduleRepository {
	return &BackupScheduleRepository{db: db}
}

// Get returns the stored schedule. An absent row reads as an empty schedule,
// not an error.
func (r *BackupScheduleRepository) Get(ctx context.Context) (*domain.BackupSchedule, error) {
	var model BackupScheduleModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", backupScheduleRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.BackupSchedule{Times: []string{}}, nil
		}
		return nil, err
	}

	var times []string
	if err := json.Unmarshal(model.Times, &times); err != nil {
		return nil, err
	}
	return &domain.BackupSchedule{Times: times}, nil
}

// Put upserts the singleton schedule row.
func (r *BackupScheduleRepository) Put(ctx context.Context, schedule *domain.BackupSchedule) error {
	raw, err := json.Marshal(schedule.Times)
	if err != nil {
		return err
	}
	model := BackupScheduleModel{
		ID:        backupScheduleRowID,
		Times:     datatypes.JSON(raw),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"times", "updated_at"}),
	}).Create(&model).Error
}

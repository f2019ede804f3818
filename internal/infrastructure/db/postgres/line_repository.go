package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lineworks/workforce-system/internal/core/domain"
)

// LineRepository implements ports.LineRepository on Postgres.
type LineRepository struct {
	db *gorm.DB
}

func NewLineRepository(db *gorm.DB) *LineRepository {
	return &LineRepository{db: db}
}

// CreateLine inserts a new line row.
func (r *LineRepository) CreateLine(ctx context.Context, line *domain.Line) error {
	model := lineToModel(*line)
	return r.db.WithContext(ctx).Omit("Processes").Create(&model).Error
}

// CreateProcess inserts the process and both of its shift rows in a single
// transaction so a process can never exist with fewer than two shifts.
func (r *LineRepository) CreateProcess(ctx context.Context, process *domain.Process) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := processToModel(*process)
		if err := tx.Omit("Shifts").Create(&model).Error; err != nil {
			return err
		}
		for _, shift := range process.Shifts {
			shiftModel := shiftToModel(shift)
			if err := tx.Create(&shiftModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindLine returns one line with its processes and shifts preloaded,
// processes ordered ascending.
func (r *LineRepository) FindLine(ctx context.Context, id string) (*domain.Line, error) {
	var model LineModel
	err := r.db.WithContext(ctx).
		Preload("Processes", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Processes.Shifts").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLineNotFound
		}
		return nil, err
	}
	line := lineFromModel(model)
	return &line, nil
}

// ListLines returns all lines with nested processes/shifts, ordered
// ascending at both levels.
func (r *LineRepository) ListLines(ctx context.Context) ([]*domain.Line, error) {
	var models []LineModel
	err := r.db.WithContext(ctx).
		Preload("Processes", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Processes.Shifts").
		Order("sort_order ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	lines := make([]*domain.Line, 0, len(models))
	for _, m := range models {
		line := lineFromModel(m)
		lines = append(lines, &line)
	}
	return lines, nil
}

// UpdateShiftStatus sets the work status of one (process, shift) pair.
func (r *LineRepository) UpdateShiftStatus(ctx context.Context, processID string, shiftType domain.ShiftType, status domain.WorkStatus) error {
	res := r.db.WithContext(ctx).
		Model(&ProcessShiftModel{}).
		Where("process_id = ? AND shift_type = ?", processID, string(shiftType)).
		Update("work_status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProcessShiftNotFound
	}
	return nil
}

// ClearWaitingWorker locks the shift row, captures the current waiting
// worker reference, and clears it — all inside one transaction. Two
// concurrent calls serialize on the row lock, so only one can observe a
// non-empty reference.
func (r *LineRepository) ClearWaitingWorker(ctx context.Context, processID string, shiftType domain.ShiftType) (string, error) {
	var removed string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model ProcessShiftModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("process_id = ? AND shift_type = ?", processID, string(shiftType)).
			First(&model).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProcessShiftNotFound
			}
			return err
		}

		removed = model.WaitingWorkerID
		if removed == "" {
			// Already vacant: idempotent no-op, nothing to write.
			return nil
		}
		return tx.Model(&ProcessShiftModel{}).
			Where("id = ?", model.ID).
			Update("waiting_worker_id", "").Error
	})
	if err != nil {
		return "", err
	}
	return removed, nil
}

// SetWaitingWorker places a worker reference on a (process, shift) pair.
func (r *LineRepository) SetWaitingWorker(ctx context.Context, processID string, shiftType domain.ShiftType, workerID string) error {
	res := r.db.WithContext(ctx).
		Model(&ProcessShiftModel{}).
		Where("process_id = ? AND shift_type = ?", processID, string(shiftType)).
		Update("waiting_worker_id", workerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProcessShiftNotFound
	}
	return nil
}

// --- model mapping ---

func lineToModel(line domain.Line) LineModel {
	return LineModel{
		ID:        line.ID,
		Name:      line.Name,
		SortOrder: line.Order,
		CreatedAt: line.CreatedAt,
		UpdatedAt: line.UpdatedAt,
	}
}

func lineFromModel(m LineModel) domain.Line {
	processes := make([]domain.Process, 0, len(m.Processes))
	for _, p := range m.Processes {
		processes = append(processes, processFromModel(p))
	}
	return domain.Line{
		ID:        m.ID,
		Name:      m.Name,
		Order:     m.SortOrder,
		Processes: processes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func processToModel(p domain.Process) ProcessModel {
	return ProcessModel{
		ID:        p.ID,
		LineID:    p.LineID,
		Name:      p.Name,
		SortOrder: p.Order,
	}
}

func processFromModel(m ProcessModel) domain.Process {
	shifts := make([]domain.ProcessShift, 0, len(m.Shifts))
	for _, s := range m.Shifts {
		shifts = append(shifts, shiftFromModel(s))
	}
	return domain.Process{
		ID:     m.ID,
		LineID: m.LineID,
		Name:   m.Name,
		Order:  m.SortOrder,
		Shifts: shifts,
	}
}

func shiftToModel(s domain.ProcessShift) ProcessShiftModel {
	return ProcessShiftModel{
		ID:              s.ID,
		ProcessID:       s.ProcessID,
		ShiftType:       string(s.ShiftType),
		WorkStatus:      string(s.WorkStatus),
		WaitingWorkerID: s.WaitingWorkerID,
	}
}

func shiftFromModel(m ProcessShiftModel) domain.ProcessShift {
	return domain.ProcessShift{
		ID:              m.ID,
		ProcessID:       m.ProcessID,
		ShiftType:       domain.ShiftType(m.ShiftType),
		WorkStatus:      domain.WorkStatus(m.WorkStatus),
		WaitingWorkerID: m.WaitingWorkerID,
	}
}

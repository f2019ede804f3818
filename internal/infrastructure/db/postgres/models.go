package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// Persistence models. Kept separate from the domain structs so the schema
// (column names, FK constraints) is not coupled to the JSON contract.

type UserModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(32)"`
	EmployeeNumber string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	PasswordHash   string    `gorm:"type:varchar(100);not null"`
	Role           string    `gorm:"type:varchar(20);not null"`
	Active         bool      `gorm:"not null;default:true"`
	LicensePhoto   string    `gorm:"type:varchar(255)"`
	HiredAt        time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserModel) TableName() string { return "users" }

type LineModel struct {
	ID        string         `gorm:"primaryKey;type:varchar(32)"`
	Name      string         `gorm:"type:varchar(100);not null"`
	SortOrder int            `gorm:"not null;default:0"`
	Processes []ProcessModel `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LineModel) TableName() string { return "lines" }

type ProcessModel struct {
	ID        string              `gorm:"primaryKey;type:varchar(32)"`
	LineID    string              `gorm:"type:varchar(32);index;not null"`
	Name      string              `gorm:"type:varchar(100);not null"`
	SortOrder int                 `gorm:"not null;default:0"`
	Shifts    []ProcessShiftModel `gorm:"foreignKey:ProcessID;constraint:OnDelete:CASCADE"`
}

func (ProcessModel) TableName() string { return "processes" }

// ProcessShiftModel holds the work-status record for a (process, shift type)
// pair. The composite unique index enforces at most one row per pair.
type ProcessShiftModel struct {
	ID              string `gorm:"primaryKey;type:varchar(32)"`
	ProcessID       string `gorm:"type:varchar(32);uniqueIndex:idx_process_shift;not null"`
	ShiftType       string `gorm:"type:varchar(10);uniqueIndex:idx_process_shift;not null"`
	WorkStatus      string `gorm:"type:varchar(20);not null"`
	WaitingWorkerID string `gorm:"type:varchar(32)"`
}

func (ProcessShiftModel) TableName() string { return "process_shifts" }

type WorkLogModel struct {
	ID        string `gorm:"primaryKey;type:varchar(32)"`
	WorkerID  string `gorm:"type:varchar(32);index;not null"`
	LineID    string `gorm:"type:varchar(32)"`
	ProcessID string `gorm:"type:varchar(32)"`
	ShiftType string `gorm:"type:varchar(10);not null"`
	StartedAt time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
}

func (WorkLogModel) TableName() string { return "work_logs" }

type TrainingLogModel struct {
	ID        string `gorm:"primaryKey;type:varchar(32)"`
	WorkerID  string `gorm:"type:varchar(32);index;not null"`
	LineID    string `gorm:"type:varchar(32);not null"`
	ProcessID string `gorm:"type:varchar(32);not null"`
	ShiftType string `gorm:"type:varchar(10);not null"`
	Memo      string `gorm:"type:text"`
	CreatedAt time.Time
}

func (TrainingLogModel) TableName() string { return "training_logs" }

type DefectLogModel struct {
	ID        string `gorm:"primaryKey;type:varchar(32)"`
	WorkerID  string `gorm:"type:varchar(32);index;not null"`
	LineID    string `gorm:"type:varchar(32);not null"`
	ProcessID string `gorm:"type:varchar(32);not null"`
	ShiftType string `gorm:"type:varchar(10);not null"`
	Memo      string `gorm:"type:text"`
	CreatedAt time.Time
}

func (DefectLogModel) TableName() string { return "defect_logs" }

// BackupScheduleModel is a singleton row (id = 1) holding the HH:mm firing
// times as a JSON array.
type BackupScheduleModel struct {
	ID        int            `gorm:"primaryKey"`
	Times     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (BackupScheduleModel) TableName() string { return "backup_schedules" }

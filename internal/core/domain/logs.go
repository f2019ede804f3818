package domain

import (
	"errors"
	"time"
)

var ErrWorkLogNotFound = errors.New("work log not found")
var ErrTrainingLogNotFound = errors.New("training log not found")
var ErrDefectLogNotFound = errors.New("defect log not found")
var ErrWorkLogAlreadyEnded = errors.New("work log already ended")

// WorkLog records a single work session for a worker. Append-only from the
// worker's perspective: a session is started, later ended, never edited.
type WorkLog struct {
	ID        string     `json:"id"`
	WorkerID  string     `json:"worker_id"`
	LineID    string     `json:"line_id,omitempty"`
	ProcessID string     `json:"process_id,omitempty"`
	ShiftType ShiftType  `json:"shift_type"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Ended reports whether the session has been closed.
func (w WorkLog) Ended() bool {
	return w.EndedAt != nil
}

// TrainingLog attributes a completed training to a worker on a specific
// line/process/shift. References are by identifier only; deleting a log
// never touches the referenced rows.
type TrainingLog struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	LineID    string    `json:"line_id"`
	ProcessID string    `json:"process_id"`
	ShiftType ShiftType `json:"shift_type"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DefectLog attributes a defect occurrence to a worker on a specific
// line/process/shift.
type DefectLog struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	LineID    string    `json:"line_id"`
	ProcessID string    `json:"process_id"`
	ShiftType ShiftType `json:"shift_type"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

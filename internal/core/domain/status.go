package domain

import "errors"

var ErrInvalidShiftType = errors.New("invalid shift type")
var ErrInvalidWorkStatus = errors.New("invalid work status")
var ErrInvalidRole = errors.New("invalid role")

// ShiftType identifies one of the two work shifts on a process.
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"
	ShiftNight ShiftType = "NIGHT"
)

// Valid reports whether s is a known shift type.
func (s ShiftType) Valid() bool {
	return s == ShiftDay || s == ShiftNight
}

// Label returns the display label for the shift type.
func (s ShiftType) Label() string {
	switch s {
	case ShiftDay:
		return "Day shift"
	case ShiftNight:
		return "Night shift"
	}
	return string(s)
}

// WorkStatus is the work condition of a (process, shift) pair.
type WorkStatus string

const (
	WorkNormal   WorkStatus = "NORMAL"
	WorkOvertime WorkStatus = "OVERTIME"
	WorkExtended WorkStatus = "EXTENDED"
)

// statusSeverity orders work statuses from least to most severe. The
// aggregate status of a line is the most severe status present anywhere
// on it.
var statusSeverity = map[WorkStatus]int{
	WorkNormal:   0,
	WorkOvertime: 1,
	WorkExtended: 2,
}

// Valid reports whether w is a known work status.
func (w WorkStatus) Valid() bool {
	_, ok := statusSeverity[w]
	return ok
}

// Severity returns the precedence rank of the status (higher = worse).
func (w WorkStatus) Severity() int {
	return statusSeverity[w]
}

// Label returns the display label for the work status.
func (w WorkStatus) Label() string {
	switch w {
	case WorkNormal:
		return "Normal"
	case WorkOvertime:
		return "Overtime"
	case WorkExtended:
		return "Extended"
	}
	return string(w)
}

// Category returns the presentation category key used by clients to pick a
// visual treatment for the status.
func (w WorkStatus) Category() string {
	switch w {
	case WorkNormal:
		return "default"
	case WorkOvertime:
		return "warning"
	case WorkExtended:
		return "danger"
	}
	return "default"
}

// WorkerStatus describes a worker's current duty state.
type WorkerStatus string

const (
	WorkerOnDuty  WorkerStatus = "ON_DUTY"
	WorkerOffDuty WorkerStatus = "OFF_DUTY"
	WorkerWaiting WorkerStatus = "WAITING"
)

// Valid reports whether w is a known worker status.
func (w WorkerStatus) Valid() bool {
	switch w {
	case WorkerOnDuty, WorkerOffDuty, WorkerWaiting:
		return true
	}
	return false
}

// Label returns the display label for the worker status.
func (w WorkerStatus) Label() string {
	switch w {
	case WorkerOnDuty:
		return "On duty"
	case WorkerOffDuty:
		return "Off duty"
	case WorkerWaiting:
		return "Waiting"
	}
	return string(w)
}

// Category returns the presentation category key for the worker status.
func (w WorkerStatus) Category() string {
	switch w {
	case WorkerOnDuty:
		return "active"
	case WorkerOffDuty:
		return "muted"
	case WorkerWaiting:
		return "pending"
	}
	return "muted"
}

// Label returns the display label for the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleManager:
		return "Manager"
	case RoleWorker:
		return "Worker"
	}
	return string(r)
}

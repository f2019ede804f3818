package domain

import (
	"errors"
	"sort"
	"time"
)

var ErrLineNotFound = errors.New("line not found")
var ErrInvalidLineInput = errors.New("invalid line input")
var ErrProcessNotFound = errors.New("process not found")
var ErrProcessShiftNotFound = errors.New("process shift not found")

// Line is a production line grouping ordered processes.
type Line struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Processes []Process `json:"processes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Process is a production step within a line. Every process carries exactly
// one DAY and one NIGHT shift record.
type Process struct {
	ID     string         `json:"id"`
	LineID string         `json:"line_id"`
	Name   string         `json:"name"`
	Order  int            `json:"order"`
	Shifts []ProcessShift `json:"shifts"`
}

// ProcessShift is the work-status/assignment record for a process at a
// given shift type.
type ProcessShift struct {
	ID              string     `json:"id"`
	ProcessID       string     `json:"process_id"`
	ShiftType       ShiftType  `json:"shift_type"`
	WorkStatus      WorkStatus `json:"work_status"`
	WaitingWorkerID string     `json:"waiting_worker_id,omitempty"`
}

// Shift returns the shift record matching the given type, if present.
func (p Process) Shift(t ShiftType) (ProcessShift, bool) {
	for _, s := range p.Shifts {
		if s.ShiftType == t {
			return s, true
		}
	}
	return ProcessShift{}, false
}

// AggregateWorkStatus reduces the per-process statuses of one shift type to
// the line's overall status. The rule is strict precedence: the result is the
// most severe status present anywhere on the line (EXTENDED > OVERTIME >
// NORMAL). Processes lacking the requested shift are skipped; an empty set
// yields NORMAL by definition.
func AggregateWorkStatus(processes []Process, shiftType ShiftType) WorkStatus {
	result := WorkNormal
	for _, p := range processes {
		shift, ok := p.Shift(shiftType)
		if !ok {
			continue
		}
		if shift.WorkStatus.Severity() > result.Severity() {
			result = shift.WorkStatus
		}
	}
	return result
}

// ProcessSummary is the flattened process view used in line summaries.
type ProcessSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// LineSummary is the display model for a line: identity plus a flattened,
// order-sorted list of its processes.
type LineSummary struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Order           int              `json:"order"`
	ProcessesLength int              `json:"processes_length"`
	Processes       []ProcessSummary `json:"processes"`
}

// Summarize converts a persisted line into its display model. A line with no
// processes yields an empty (non-nil) list. The input is not mutated; the
// output list is sorted ascending by Order regardless of the order the store
// returned the processes in.
func Summarize(line Line) LineSummary {
	processes := make([]ProcessSummary, 0, len(line.Processes))
	for _, p := range line.Processes {
		processes = append(processes, ProcessSummary{ID: p.ID, Name: p.Name, Order: p.Order})
	}
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Order < processes[j].Order
	})
	return LineSummary{
		ID:              line.ID,
		Name:            line.Name,
		Order:           line.Order,
		ProcessesLength: len(processes),
		Processes:       processes,
	}
}

package domain

import "testing"

func processWith(id string, day, night WorkStatus) Process {
	return Process{
		ID: id,
		Shifts: []ProcessShift{
			{ProcessID: id, ShiftType: ShiftDay, WorkStatus: day},
			{ProcessID: id, ShiftType: ShiftNight, WorkStatus: night},
		},
	}
}

func TestAggregateWorkStatus(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		shiftType ShiftType
		want      WorkStatus
	}{
		{
			name:      "empty line yields normal",
			processes: nil,
			shiftType: ShiftDay,
			want:      WorkNormal,
		},
		{
			name: "all normal yields normal",
			processes: []Process{
				processWith("p1", WorkNormal, WorkNormal),
				processWith("p2", WorkNormal, WorkNormal),
			},
			shiftType: ShiftDay,
			want:      WorkNormal,
		},
		{
			name: "overtime on one process dominates normal",
			processes: []Process{
				processWith("p1", WorkNormal, WorkExtended),
				processWith("p2", WorkOvertime, WorkNormal),
			},
			shiftType: ShiftDay,
			want:      WorkOvertime,
		},
		{
			name: "night shift aggregates independently of day",
			processes: []Process{
				processWith("p1", WorkNormal, WorkExtended),
				processWith("p2", WorkOvertime, WorkNormal),
			},
			shiftType: ShiftNight,
			want:      WorkExtended,
		},
		{
			name: "extended dominates overtime",
			processes: []Process{
				processWith("p1", WorkOvertime, WorkNormal),
				processWith("p2", WorkExtended, WorkNormal),
				processWith("p3", WorkNormal, WorkNormal),
			},
			shiftType: ShiftDay,
			want:      WorkExtended,
		},
		{
			name: "process missing the requested shift is skipped",
			processes: []Process{
				{ID: "p1", Shifts: []ProcessShift{{ProcessID: "p1", ShiftType: ShiftNight, WorkStatus: WorkExtended}}},
				processWith("p2", WorkOvertime, WorkNormal),
			},
			shiftType: ShiftDay,
			want:      WorkOvertime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateWorkStatus(tt.processes, tt.shiftType)
			if got != tt.want {
				t.Errorf("AggregateWorkStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateWorkStatusOrderIndependent(t *testing.T) {
	forward := []Process{
		processWith("p1", WorkNormal, WorkNormal),
		processWith("p2", WorkExtended, WorkNormal),
		processWith("p3", WorkOvertime, WorkNormal),
	}
	reversed := []Process{forward[2], forward[1], forward[0]}

	if got, want := AggregateWorkStatus(forward, ShiftDay), AggregateWorkStatus(reversed, ShiftDay); got != want {
		t.Errorf("aggregate depends on process order: %v vs %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	line := Line{
		ID:   "line-1",
		Name: "Assembly",
		Processes: []Process{
			{ID: "p2", Name: "Welding", Order: 1},
			{ID: "p1", Name: "Stamping", Order: 0},
		},
	}

	summary := Summarize(line)

	if summary.ProcessesLength != 2 {
		t.Fatalf("ProcessesLength = %d, want 2", summary.ProcessesLength)
	}
	if summary.Processes[0].ID != "p1" || summary.Processes[1].ID != "p2" {
		t.Errorf("processes not sorted by order: got %v", summary.Processes)
	}
	// the input must be left untouched
	if line.Processes[0].ID != "p2" {
		t.Errorf("Summarize mutated its input")
	}
}

func TestSummarizeEmptyLine(t *testing.T) {
	summary := Summarize(Line{ID: "line-1", Name: "Empty"})

	if summary.Processes == nil {
		t.Error("Processes should be an empty slice, not nil")
	}
	if summary.ProcessesLength != 0 {
		t.Errorf("ProcessesLength = %d, want 0", summary.ProcessesLength)
	}
}

func TestProcessShiftLookup(t *testing.T) {
	p := processWith("p1", WorkOvertime, WorkNormal)

	shift, ok := p.Shift(ShiftDay)
	if !ok {
		t.Fatal("expected DAY shift to be present")
	}
	if shift.WorkStatus != WorkOvertime {
		t.Errorf("WorkStatus = %v, want %v", shift.WorkStatus, WorkOvertime)
	}

	if _, ok := (Process{}).Shift(ShiftDay); ok {
		t.Error("expected lookup on shiftless process to miss")
	}
}

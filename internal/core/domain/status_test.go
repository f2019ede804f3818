package domain

import "testing"

func TestWorkStatusSeverity(t *testing.T) {
	if !(WorkNormal.Severity() < WorkOvertime.Severity() && WorkOvertime.Severity() < WorkExtended.Severity()) {
		t.Errorf("severity order broken: NORMAL=%d OVERTIME=%d EXTENDED=%d",
			WorkNormal.Severity(), WorkOvertime.Severity(), WorkExtended.Severity())
	}
}

func TestWorkStatusClassification(t *testing.T) {
	tests := []struct {
		status   WorkStatus
		label    string
		category string
	}{
		{WorkNormal, "Normal", "default"},
		{WorkOvertime, "Overtime", "warning"},
		{WorkExtended, "Extended", "danger"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if !tt.status.Valid() {
				t.Errorf("Valid() = false for %s", tt.status)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.status.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
		})
	}

	if WorkStatus("BROKEN").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestWorkerStatusClassification(t *testing.T) {
	tests := []struct {
		status   WorkerStatus
		label    string
		category string
	}{
		{WorkerOnDuty, "On duty", "active"},
		{WorkerOffDuty, "Off duty", "muted"},
		{WorkerWaiting, "Waiting", "pending"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if !tt.status.Valid() {
				t.Errorf("Valid() = false for %s", tt.status)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.status.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
		})
	}
}

func TestShiftTypeValid(t *testing.T) {
	if !ShiftDay.Valid() || !ShiftNight.Valid() {
		t.Error("DAY and NIGHT must be valid shift types")
	}
	if ShiftType("EVENING").Valid() {
		t.Error("unknown shift type should not be valid")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleWorker} {
		if !r.Valid() {
			t.Errorf("Valid() = false for %s", r)
		}
	}
	if Role("SUPERVISOR").Valid() {
		t.Error("unknown role should not be valid")
	}
}

func TestRoleCanDeleteLogs(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleWorker, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanDeleteLogs(); got != tt.want {
			t.Errorf("%s.CanDeleteLogs() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

package domain

import (
	"errors"
	"testing"
)

func TestValidateBackupTimes(t *testing.T) {
	tests := []struct {
		name    string
		times   []string
		wantErr error
	}{
		{name: "empty schedule is valid", times: nil},
		{name: "single time", times: []string{"03:00"}},
		{name: "multiple times", times: []string{"00:00", "12:30", "23:59"}},
		{name: "hour out of range", times: []string{"24:00"}, wantErr: ErrInvalidBackupTime},
		{name: "minute out of range", times: []string{"12:60"}, wantErr: ErrInvalidBackupTime},
		{name: "missing leading zero", times: []string{"3:00"}, wantErr: ErrInvalidBackupTime},
		{name: "not a time at all", times: []string{"noon"}, wantErr: ErrInvalidBackupTime},
		{name: "negative hour", times: []string{"-1:00"}, wantErr: ErrInvalidBackupTime},
		{name: "signed hour", times: []string{"+1:30"}, wantErr: ErrInvalidBackupTime},
		{name: "signed minute", times: []string{"12:+5"}, wantErr: ErrInvalidBackupTime},
		{name: "signed zero hour", times: []string{"-0:15"}, wantErr: ErrInvalidBackupTime},
		{name: "duplicate entry", times: []string{"03:00", "12:00", "03:00"}, wantErr: ErrDuplicateBackupTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBackupTimes(tt.times)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateBackupTimes() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBackupTimes() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidBackupTime = errors.New("invalid backup time")
var ErrDuplicateBackupTime = errors.New("duplicate backup time")

// BackupSchedule holds the time-of-day points (HH:mm) at which the external
// backup job fires.
type BackupSchedule struct {
	Times []string `json:"times"`
}

// ValidateBackupTimes checks every entry is a well-formed HH:mm string and
// that no entry repeats. Validation happens before any store access.
func ValidateBackupTimes(times []string) error {
	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		if err := validateBackupTime(t); err != nil {
			return err
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateBackupTime, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

func validateBackupTime(t string) error {
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("%w: %q (want HH:mm)", ErrInvalidBackupTime, t)
	}
	// Atoi accepts a sign, so "+1:30" would otherwise slip through.
	for _, part := range parts {
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				return fmt.Errorf("%w: %q (want HH:mm)", ErrInvalidBackupTime, t)
			}
		}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return fmt.Errorf("%w: %q (hour out of range)", ErrInvalidBackupTime, t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return fmt.Errorf("%w: %q (minute out of range)", ErrInvalidBackupTime, t)
	}
	return nil
}

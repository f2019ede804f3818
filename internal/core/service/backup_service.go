package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// BackupService implements backup schedule use cases. The schedule itself is
// consumed by an external backup job; this service only validates and stores
// the set of HH:mm firing times.
type BackupService struct {
	repo   ports.BackupScheduleRepository
	logger zerolog.Logger
}

func NewBackupService(repo ports.BackupScheduleRepository, logger zerolog.Logger) *BackupService {
	return &BackupService{repo: repo, logger: logger}
}

func (s *BackupService) Get(ctx context.Context) (*domain.BackupSchedule, error) {
	return s.repo.Get(ctx)
}

// Update replaces the schedule after validating every entry. Times are
// stored sorted so reads are deterministic.
func (s *BackupService) Update(ctx context.Context, times []string) (*domain.BackupSchedule, error) {
	if err := domain.ValidateBackupTimes(times); err != nil {
		return nil, err
	}

	sorted := make([]string, len(times))
	copy(sorted, times)
	sort.Strings(sorted)

	schedule := &domain.BackupSchedule{Times: sorted}
	if err := s.repo.Put(ctx, schedule); err != nil {
		s.logger.Error().Err(err).Msg("failed to update backup schedule")
		return nil, err
	}

	s.logger.Info().Strs("times", sorted).Msg("backup schedule updated")
	return schedule, nil
}

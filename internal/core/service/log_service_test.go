package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lineworks/workforce-system/internal/core/domain"
	"github.com/lineworks/workforce-system/internal/core/ports"
)

// stubUserRepository is an in-memory ports.UserRepository for service tests.
type stubUserRepository struct {
	users map[string]*domain.User
}

func newStubUserRepository(users ...*domain.User) *stubUserRepository {
	r := &stubUserRepository{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmployeeNumber == user.EmployeeNumber {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepository) FindByEmployeeNumber(_ context.Context, employeeNumber string) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmployeeNumber == employeeNumber {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// stubTrainingLogRepository is an in-memory ports.TrainingLogRepository.
type stubTrainingLogRepository struct {
	logs map[string]*domain.TrainingLog
}

func newStubTrainingLogRepository() *stubTrainingLogRepository {
	return &stubTrainingLogRepository{logs: make(map[string]*domain.TrainingLog)}
}

func (r *stubTrainingLogRepository) Create(_ context.Context, log *domain.TrainingLog) error {
	r.logs[log.ID] = log
	return nil
}

func (r *stubTrainingLogRepository) FindByID(_ context.Context, id string) (*domain.TrainingLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return nil, domain.ErrTrainingLogNotFound
	}
	return log, nil
}

func (r *stubTrainingLogRepository) ListByWorker(_ context.Context, workerID string) ([]*domain.TrainingLog, error) {
	out := make([]*domain.TrainingLog, 0)
	for _, log := range r.logs {
		if log.WorkerID == workerID {
			out = append(out, log)
		}
	}
	return out, nil
}

func (r *stubTrainingLogRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.logs[id]; !ok {
		return domain.ErrTrainingLogNotFound
	}
	delete(r.logs, id)
	return nil
}

// stubDefectLogRepository is an in-memory ports.DefectLogRepository.
type stubDefectLogRepository struct {
	logs map[string]*domain.DefectLog
}

func newStubDefectLogRepository() *stubDefectLogRepository {
	return &stubDefectLogRepository{logs: make(map[string]*domain.DefectLog)}
}

func (r *stubDefectLogRepository) Create(_ context.Context, log *domain.DefectLog) error {
	r.logs[log.ID] = log
	return nil
}

func (r *stubDefectLogRepository) FindByID(_ context.Context, id string) (*domain.DefectLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return nil, domain.ErrDefectLogNotFound
	}
	return log, nil
}

func (r *stubDefectLogRepository) ListByWorker(_ context.Context, workerID string) ([]*domain.DefectLog, error) {
	out := make([]*domain.DefectLog, 0)
	for _, log := range r.logs {
		if log.WorkerID == workerID {
			out = append(out, log)
		}
	}
	return out, nil
}

func (r *stubDefectLogRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.logs[id]; !ok {
		return domain.ErrDefectLogNotFound
	}
	delete(r.logs, id)
	return nil
}

func newLogServiceForTest(users ...*domain.User) (*LogService, *stubTrainingLogRepository, *stubDefectLogRepository) {
	training := newStubTrainingLogRepository()
	defects := newStubDefectLogRepository()
	svc := NewLogService(training, defects, newStubUserRepository(users...), zerolog.Nop())
	return svc, training, defects
}

var testWorker = &domain.User{ID: "worker-1", EmployeeNumber: "E001", Name: "Worker", Role: domain.RoleWorker, Active: true}

func TestCreateTrainingLog(t *testing.T) {
	svc, training, _ := newLogServiceForTest(testWorker)
	manager := ports.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	log, err := svc.CreateTrainingLog(context.Background(), manager, ports.CreateLogInput{
		WorkerID:  "worker-1",
		LineID:    "line-1",
		ProcessID: "p1",
		ShiftType: domain.ShiftDay,
		Memo:      "forklift certification",
	})
	if err != nil {
		t.Fatalf("CreateTrainingLog() err = %v", err)
	}
	if log.ID == "" {
		t.Error("created log has no id")
	}
	if _, err := training.FindByID(context.Background(), log.ID); err != nil {
		t.Errorf("log not persisted: %v", err)
	}
}

func TestCreateLogRejectsInvalidShiftType(t *testing.T) {
	svc, _, _ := newLogServiceForTest(testWorker)
	manager := ports.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	_, err := svc.CreateTrainingLog(context.Background(), manager, ports.CreateLogInput{
		WorkerID:  "worker-1",
		ShiftType: "EVENING",
	})
	if !errors.Is(err, domain.ErrInvalidShiftType) {
		t.Errorf("err = %v, want ErrInvalidShiftType", err)
	}
}

func TestCreateLogRejectsUnknownWorker(t *testing.T) {
	svc, _, _ := newLogServiceForTest(testWorker)
	manager := ports.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	_, err := svc.CreateDefectLog(context.Background(), manager, ports.CreateLogInput{
		WorkerID:  "missing",
		ShiftType: domain.ShiftDay,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteTrainingLogRoleGate(t *testing.T) {
	tests := []struct {
		name    string
		actor   ports.Actor
		wantErr error
	}{
		{name: "worker is forbidden", actor: ports.Actor{UserID: "worker-1", Role: domain.RoleWorker}, wantErr: domain.ErrForbidden},
		{name: "manager may delete", actor: ports.Actor{UserID: "mgr-1", Role: domain.RoleManager}},
		{name: "admin may delete", actor: ports.Actor{UserID: "adm-1", Role: domain.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, training, _ := newLogServiceForTest(testWorker)
			training.logs["tl-1"] = &domain.TrainingLog{ID: "tl-1", WorkerID: "worker-1"}

			err := svc.DeleteTrainingLog(context.Background(), tt.actor, "tl-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if _, err := training.FindByID(context.Background(), "tl-1"); err != nil {
					t.Error("log was deleted despite forbidden actor")
				}
				return
			}
			if err != nil {
				t.Fatalf("DeleteTrainingLog() err = %v", err)
			}
			if _, err := training.FindByID(context.Background(), "tl-1"); !errors.Is(err, domain.ErrTrainingLogNotFound) {
				t.Error("log still present after delete")
			}
		})
	}
}

func TestDeleteDefectLogRoleGate(t *testing.T) {
	svc, _, defects := newLogServiceForTest(testWorker)
	defects.logs["dl-1"] = &domain.DefectLog{ID: "dl-1", WorkerID: "worker-1"}

	worker := ports.Actor{UserID: "worker-1", Role: domain.RoleWorker}
	if err := svc.DeleteDefectLog(context.Background(), worker, "dl-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	admin := ports.Actor{UserID: "adm-1", Role: domain.RoleAdmin}
	if err := svc.DeleteDefectLog(context.Background(), admin, "dl-1"); err != nil {
		t.Errorf("DeleteDefectLog() err = %v", err)
	}
}

func TestDeleteLogUnknownID(t *testing.T) {
	svc, _, _ := newLogServiceForTest(testWorker)
	manager := ports.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	if err := svc.DeleteTrainingLog(context.Background(), manager, "missing"); !errors.Is(err, domain.ErrTrainingLogNotFound) {
		t.Errorf("err = %v, want ErrTrainingLogNotFound", err)
	}
	if err := svc.DeleteDefectLog(context.Background(), manager, "missing"); !errors.Is(err, domain.ErrDefectLogNotFound) {
		t.Errorf("err = %v, want ErrDefectLogNotFound", err)
	}
}

func TestListLogsUnknownWorker(t *testing.T) {
	svc, _, _ := newLogServiceForTest(testWorker)

	if _, err := svc.ListTrainingLogs(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.ListDefectLogs(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

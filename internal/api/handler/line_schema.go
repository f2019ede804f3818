package handler

type createLineRequest struct {
	Name  string `json:"name"  validate:"required"`
	Order int    `json:"order" validate:"gte=0"`
}

type createProcessRequest struct {
	Name  string `json:"name"  validate:"required"`
	Order int    `json:"order" validate:"gte=0"`
}

type updateShiftStatusRequest struct {
	ProcessID  string `json:"process_id"  validate:"required"`
	ShiftType  string `json:"shift_type"  validate:"required,oneof=DAY NIGHT"`
	WorkStatus string `json:"work_status" validate:"required,oneof=NORMAL OVERTIME EXTENDED"`
}

type assignWaitingWorkerRequest struct {
	ProcessID string `json:"process_id" validate:"required"`
	ShiftType string `json:"shift_type" validate:"required,oneof=DAY NIGHT"`
	WorkerID  string `json:"worker_id"  validate:"required"`
}

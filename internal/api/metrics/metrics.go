// Package metrics defines and registers all custom Prometheus metrics for
// the workforce API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// ShiftStatusUpdatesTotal counts work-status changes applied to process
// shifts.
// Labels:
//   - status: the new work status (e.g. "OVERTIME")
//   - shift_type: "DAY" or "NIGHT"
var ShiftStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_status_updates_total",
		Help:      "Total number of process shift work-status updates applied.",
	},
	[]string{"status", "shift_type"},
)

// WaitingWorkerAssignmentsTotal counts waiting-worker placements.
// Label:
//   - shift_type: "DAY" or "NIGHT"
var WaitingWorkerAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "waiting_worker_assignments_total",
		Help:      "Total number of waiting-worker assignments, by shift type.",
	},
	[]string{"shift_type"},
)

// WaitingWorkerRemovalsTotal counts waiting-worker clear operations.
// Label:
//   - result: "cleared" (a reference was removed) or "empty" (slot was
//     already vacant)
var WaitingWorkerRemovalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "waiting_worker_removals_total",
		Help:      "Total number of waiting-worker removal operations, by result.",
	},
	[]string{"result"},
)

// WorkLogsTotal counts work session lifecycle events.
// Label:
//   - op: "start" or "end"
var WorkLogsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "work_logs_total",
		Help:      "Total number of work session starts and ends.",
	},
	[]string{"op"},
)

// LogEntriesTotal counts training/defect log mutations.
// Labels:
//   - kind: "training" or "defect"
//   - op: "create" or "delete"
var LogEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_entries_total",
		Help:      "Total number of training/defect log mutations.",
	},
	[]string{"kind", "op"},
)

// PresenceEventsTotal counts presence join/leave events published to the
// realtime channels.
// Label:
//   - event: "join" or "leave"
var PresenceEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "presence_events_total",
		Help:      "Total number of presence events published, by event type.",
	},
	[]string{"event"},
)

// Package metrics defines all custom Prometheus metrics for the clinic
// scheduling API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// LoginAttemptsTotal counts login outcomes.
// Labels:
//   - role: "admin", "doctor", "nurse", or "other" for anything else
//   - result: "success", "invalid_credentials", or "inactive"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// TokenRejectionsTotal counts tokens rejected by the auth middleware.
// Label:
//   - reason: "missing", "malformed", "expired", "invalid", "revoked", or "unknown_subject"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected authorization tokens, by reason.",
	},
	[]string{"reason"},
)

// ReferenceCheckFailuresTotal counts referential validation failures.
// Label:
//   - reference: "patient", "department", or "doctor"
var ReferenceCheckFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_check_failures_total",
		Help:      "Total number of appointment reference validation failures, by reference.",
	},
	[]string{"reference"},
)

// AppointmentsCreatedTotal counts successfully created appointments.
// Label:
//   - status: initial appointment status (e.g. "Scheduled")
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created, by initial status.",
	},
	[]string{"status"},
)

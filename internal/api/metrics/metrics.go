// Package metrics defines and registers all custom Prometheus metrics for the
// trex-gym API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trexgym"

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "client"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by role and result.",
	},
	[]string{"role", "result"},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, labelled by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts payments recorded against subscriptions.
// Label:
//   - method: "cash", "card", or "transfer"
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded, labelled by payment method.",
	},
	[]string{"method"},
)

// OutstandingScanDuration measures a full outstanding-balance computation,
// from the first store read to the sorted result.
var OutstandingScanDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "outstanding_scan_duration_seconds",
		Help:      "Duration of the whole-dataset outstanding-balance aggregation.",
	},
)

// Package metrics defines all custom Prometheus metrics for the CV360
// marketplace API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto; HTTP-level metrics are added separately by the
// echoprometheus middleware in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cv360"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "worker", "employer" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// JobsCreatedTotal counts job postings created by employers.
// Label:
//   - job_type: the employer-supplied type (e.g. "full_time")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by job type.",
	},
	[]string{"job_type"},
)

// ApplicationsTotal counts application submissions.
// Label:
//   - result: "submitted" or "duplicate"
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job applications, by result.",
	},
	[]string{"result"},
)

// StatsRefreshTotal counts scheduled recomputations of the admin stats
// cache (see internal/jobs).
// Label:
//   - result: "ok" or "error"
var StatsRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_refresh_total",
		Help:      "Total number of scheduled admin stats refreshes, by result.",
	},
	[]string{"result"},
)

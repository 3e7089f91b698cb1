// Package metrics defines the custom Prometheus metrics for the character API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// initialisation; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "characterapi"

// LoginsTotal counts login attempts that reached the auth service.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ThrottledLoginsTotal counts login attempts rejected by the rate limiter
// before any credential check ran.
var ThrottledLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "throttled_logins_total",
		Help:      "Total number of login attempts rejected by the rate limiter.",
	},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// PasswordResetsTotal counts completed password resets.
var PasswordResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of completed password resets.",
	},
)

// CharacterOpsTotal counts character mutations.
// Label:
//   - operation: "create", "update" or "delete"
var CharacterOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "character_operations_total",
		Help:      "Total number of character mutations, by operation.",
	},
	[]string{"operation"},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "battleship"
	// Subsystem for board metrics
	subsystem = "board"
)

var (
	// Registry is the Prometheus registry for all metrics.
	// Nil until InitRegistry is called.
	Registry *prometheus.Registry

	// Set by SetGlobalCollector when metrics are enabled
	globalCollector ShotRecorder
)

// ShotRecorder is used by the game model to report board events
type ShotRecorder interface {
	RecordShot(outcome string)
	RecordShipSunk()
	RecordGameCreated()
	RecordValidationFailure(reason string)
}

// InitRegistry initializes the Prometheus registry.
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

func SetGlobalCollector(collector ShotRecorder) {
	globalCollector = collector
}

func RecordShot(outcome string) {
	if globalCollector != nil {
		globalCollector.RecordShot(outcome)
	}
}

func RecordShipSunk() {
	if globalCollector != nil {
		globalCollector.RecordShipSunk()
	}
}

func RecordGameCreated() {
	if globalCollector != nil {
		globalCollector.RecordGameCreated()
	}
}

func RecordValidationFailure(reason string) {
	if globalCollector != nil {
		globalCollector.RecordValidationFailure(reason)
	}
}

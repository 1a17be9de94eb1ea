package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ValidationReasonFleetSize        = "fleet_size"
	ValidationReasonFleetComposition = "fleet_composition"
)

// BoardMetricsCollector handles shot and fleet metrics
type BoardMetricsCollector struct {
	shotsTotal         *prometheus.CounterVec
	shipsSunkTotal     prometheus.Counter
	gamesCreatedTotal  prometheus.Counter
	validationFailures *prometheus.CounterVec
}

var _ ShotRecorder = (*BoardMetricsCollector)(nil)

func NewBoardMetricsCollector() *BoardMetricsCollector {
	return &BoardMetricsCollector{
		// Shots by outcome: Miss!, Hit!, Sunk!
		shotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "shots_total",
				Help:      "Total number of shots fired by outcome",
			},
			[]string{"outcome"},
		),

		shipsSunkTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ships_sunk_total",
				Help:      "Total number of ships drowned",
			},
		),

		gamesCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "games_created_total",
				Help:      "Total number of games created with a valid fleet",
			},
		),

		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fleet_validation_failures_total",
				Help:      "Total number of rejected fleets by reason",
			},
			[]string{"reason"},
		),
	}
}

// Register registers all board metrics with the Prometheus registry
func (c *BoardMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.shotsTotal,
		c.shipsSunkTotal,
		c.gamesCreatedTotal,
		c.validationFailures,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

func (c *BoardMetricsCollector) RecordShot(outcome string) {
	c.shotsTotal.WithLabelValues(outcome).Inc()
}

func (c *BoardMetricsCollector) RecordShipSunk() {
	c.shipsSunkTotal.Inc()
}

func (c *BoardMetricsCollector) RecordGameCreated() {
	c.gamesCreatedTotal.Inc()
}

func (c *BoardMetricsCollector) RecordValidationFailure(reason string) {
	c.validationFailures.WithLabelValues(reason).Inc()
}

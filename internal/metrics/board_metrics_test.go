package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardMetricsCollector_RecordsShots(t *testing.T) {
	InitRegistry()
	defer func() { Registry = nil }()

	collector := NewBoardMetricsCollector()
	require.NoError(t, collector.Register())

	collector.RecordShot("Miss!")
	collector.RecordShot("Hit!")
	collector.RecordShot("Hit!")
	collector.RecordShipSunk()
	collector.RecordGameCreated()
	collector.RecordValidationFailure(ValidationReasonFleetSize)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shotsTotal.WithLabelValues("Miss!")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.shotsTotal.WithLabelValues("Hit!")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shipsSunkTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.gamesCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.validationFailures.WithLabelValues(ValidationReasonFleetSize)))
}

func TestBoardMetricsCollector_RegisterWithoutRegistry(t *testing.T) {
	Registry = nil

	collector := NewBoardMetricsCollector()
	assert.NoError(t, collector.Register())
	assert.False(t, IsEnabled())
}

func TestGlobalRecorders_NoopWhenUnset(t *testing.T) {
	SetGlobalCollector(nil)

	assert.NotPanics(t, func() {
		RecordShot("Hit!")
		RecordShipSunk()
		RecordGameCreated()
		RecordValidationFailure(ValidationReasonFleetComposition)
	})
}

func TestGlobalRecorders_ForwardToCollector(t *testing.T) {
	collector := NewBoardMetricsCollector()
	SetGlobalCollector(collector)
	defer SetGlobalCollector(nil)

	RecordShot("Sunk!")
	RecordShipSunk()

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shotsTotal.WithLabelValues("Sunk!")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.shipsSunkTotal))
}

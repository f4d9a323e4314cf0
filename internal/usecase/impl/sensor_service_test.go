package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorService_SnapshotSurfacesReadFailure(t *testing.T) {
	sensor := &fakeSensor{readErr: errors.New("no connection")}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})

	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXTERNAL_SERVICE_FAILED", appErr.ErrorCode())
}

func TestSensorService_TogglePumpOptimistic(t *testing.T) {
	sensor := &fakeSensor{snapshot: entity.SensorSnapshot{Moisture: 30, Pump: entity.PumpOff}}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})
	ctx := context.Background()

	_, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	snapshot, err := svc.TogglePump(ctx, entity.PumpOn)
	require.NoError(t, err)
	assert.Equal(t, entity.PumpOn, snapshot.Pump)
	assert.Equal(t, []entity.PumpState{entity.PumpOn}, sensor.pumpSets)
}

func TestSensorService_TogglePumpRollsBackOnFailure(t *testing.T) {
	sensor := &fakeSensor{snapshot: entity.SensorSnapshot{Pump: entity.PumpOff}}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})
	ctx := context.Background()

	_, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	sensor.pumpErr = errors.New("pump jammed")
	_, err = svc.TogglePump(ctx, entity.PumpOn)
	require.Error(t, err)

	// The failed toggle restored the previous state, so a successful retry
	// still starts from OFF.
	sensor.pumpErr = nil
	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PumpOff, snapshot.Pump)
}

func TestSensorService_TogglePumpRequiresConnection(t *testing.T) {
	sensor := &fakeSensor{}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})

	// No snapshot taken yet.
	_, err := svc.TogglePump(context.Background(), entity.PumpOn)
	require.Error(t, err)
	assert.Empty(t, sensor.pumpSets)
}

func TestSensorService_MonitorSwallowsTransientFailures(t *testing.T) {
	sensor := &fakeSensor{snapshot: entity.SensorSnapshot{Moisture: 42}}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var readings []entity.SensorSnapshot
	done := make(chan struct{})

	sensor.readErr = errors.New("flaky")
	svc.Monitor(ctx, 5*time.Millisecond, func(s *entity.SensorSnapshot) {
		mu.Lock()
		readings = append(readings, *s)
		if len(readings) == 3 {
			close(done)
		}
		mu.Unlock()
	})

	// Let a few failing polls pass, then recover.
	time.Sleep(25 * time.Millisecond)
	sensor.mu.Lock()
	sensor.readErr = nil
	sensor.mu.Unlock()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor never delivered readings after recovery")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, reading := range readings {
		assert.Equal(t, 42.0, reading.Moisture)
	}
}

func TestSensorService_MonitorStopsOnCancel(t *testing.T) {
	sensor := &fakeSensor{snapshot: entity.SensorSnapshot{}}
	svc := NewSensorService(SensorServiceParams{Sensor: sensor, Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	count := 0
	svc.Monitor(ctx, 5*time.Millisecond, func(*entity.SensorSnapshot) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	after := count
	mu.Unlock()

	// No further deliveries once cancelled.
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, after, count)
	mu.Unlock()
}

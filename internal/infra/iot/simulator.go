// Package iot simulates the soil sensor kit. Real hardware integration is a
// deployment concern; the simulator reproduces the kit's observable behavior,
// including transient connection failures and moisture responding to the pump.
package iot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"saathi/config"
	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"

	"github.com/pkg/errors"
)

const historyHours = 24

// simulator implements service.SensorService with drifting in-memory state.
type simulator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	failureRate float64
	pump        entity.PumpState
	last        *entity.SensorSnapshot
	histories   map[string][]entity.TimestampedReading
	now         func() time.Time
}

// NewSimulator is the constructor for the sensor simulator.
func NewSimulator(cfg *config.Config) service.SensorService {
	failureRate := 0.0
	if cfg.Sensor != nil {
		failureRate = cfg.Sensor.FailureRate
	}

	return &simulator{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		failureRate: failureRate,
		pump:        entity.PumpOff,
		histories:   make(map[string][]entity.TimestampedReading),
		now:         time.Now,
	}
}

// Read takes one snapshot, drifting the values from the previous reading.
// Moisture climbs while the pump runs and falls slowly otherwise.
func (s *simulator) Read(_ context.Context) (*entity.SensorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() < s.failureRate {
		return nil, errors.New("sensor connection failed")
	}

	snapshot := s.step()

	return &snapshot, nil
}

// SetPump switches the water pump. The new state feeds back into moisture on
// subsequent reads.
func (s *simulator) SetPump(_ context.Context, state entity.PumpState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() < s.failureRate {
		return errors.New("pump command failed")
	}

	s.pump = state

	return nil
}

// History returns 24 hourly readings for a farmer's device, oldest first. The
// series is generated once per farmer and then served unchanged so repeated
// admin views agree.
func (s *simulator) History(_ context.Context, farmerID string) ([]entity.TimestampedReading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if history, ok := s.histories[farmerID]; ok {
		return history, nil
	}

	current := s.step()
	now := s.now()

	history := make([]entity.TimestampedReading, historyHours)
	for i := historyHours - 1; i >= 0; i-- {
		history[i] = entity.TimestampedReading{
			SensorSnapshot: current,
			Timestamp:      now.Add(-time.Duration(historyHours-1-i) * time.Hour),
		}

		// Walk backwards in time with coarser hourly swings.
		current.Moisture = clamp(current.Moisture+(s.rng.Float64()-0.6)*5, 20, 80)
		current.Nitrogen = clamp(current.Nitrogen+(s.rng.Float64()-0.4)*20, 50, 500)
		current.Potassium = clamp(current.Potassium+(s.rng.Float64()-0.4)*15, 50, 300)
	}

	s.histories[farmerID] = history

	return history, nil
}

// step advances the drifting state by one reading. Caller holds the lock.
func (s *simulator) step() entity.SensorSnapshot {
	if s.last == nil {
		s.last = &entity.SensorSnapshot{
			PH:          6.2 + (s.rng.Float64()*0.5 - 0.25),
			Moisture:    28 + (s.rng.Float64()*10 - 5),
			Temperature: 32 + (s.rng.Float64()*4 - 2),
			Nitrogen:    120 + s.rng.Float64()*100 - 50,
			Phosphorus:  40 + s.rng.Float64()*20 - 10,
			Potassium:   150 + s.rng.Float64()*80 - 40,
		}
	}

	moisture := s.last.Moisture
	if s.pump == entity.PumpOn {
		moisture = clamp(moisture+s.rng.Float64()*2, 20, 80)
	} else {
		moisture = clamp(moisture-s.rng.Float64()*0.5, 20, 80)
	}

	next := entity.SensorSnapshot{
		PH:          clamp(s.last.PH+(s.rng.Float64()*0.2-0.1), 5.0, 8.0),
		Moisture:    moisture,
		Temperature: clamp(s.last.Temperature+(s.rng.Float64()*0.4-0.2), 15, 40),
		Nitrogen:    clamp(s.last.Nitrogen-s.rng.Float64()*2, 50, 500),
		Phosphorus:  clamp(s.last.Phosphorus-s.rng.Float64()*1, 20, 200),
		Potassium:   clamp(s.last.Potassium-s.rng.Float64()*1.5, 50, 300),
		Pump:        s.pump,
	}
	s.last = &next

	return next
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

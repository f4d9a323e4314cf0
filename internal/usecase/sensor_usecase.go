package usecase

import (
	"context"
	"time"

	"saathi/internal/domain/entity"
)

// SensorUsecase implements the farm-data polling contract: a blocking initial
// read that surfaces connection failures, silent background refreshes, and an
// optimistic pump toggle that rolls back on failure.
type SensorUsecase interface {
	// Snapshot performs a blocking read. Failures surface as
	// ErrExternalService so the view can show its error state.
	Snapshot(ctx context.Context) (*entity.SensorSnapshot, error)

	// TogglePump optimistically applies the requested state to the local
	// view before the sensor acknowledges. If the call fails the previous
	// state is restored and the error returned.
	TogglePump(ctx context.Context, state entity.PumpState) (*entity.SensorSnapshot, error)

	// Monitor polls the sensor every interval and invokes onReading for each
	// successful read. Transient failures are logged and swallowed; the
	// last-known-good reading stays on display. Monitoring stops when ctx is
	// cancelled, and a result arriving after cancellation is discarded.
	Monitor(ctx context.Context, interval time.Duration, onReading func(*entity.SensorSnapshot))
}

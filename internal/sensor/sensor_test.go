package sensor_test

import (
	"context"
	"testing"
	"time"

	"github.com/satoshimirror/satoshimirror/internal/sensor"
	"github.com/stretchr/testify/require"
)

func TestSampleRanges(t *testing.T) {
	s := sensor.New()

	for i := 0; i < 200; i++ {
		m := s.Sample()
		require.GreaterOrEqual(t, m.Energy, 0.0, "absolute value keeps energy non-negative")
		require.GreaterOrEqual(t, m.Entanglement, 0.0)
		require.Less(t, m.Entanglement, 1.0)
		require.InDelta(t, m.Energy*0.5, m.ZeroPointFluc, 1e-9)
		require.GreaterOrEqual(t, m.ObserverEffect, 0.0)
		require.Less(t, m.ObserverEffect, 0.2)
		require.NotEmpty(t, m.ID)
	}
}

func TestMonitorRunsUntilCanceled(t *testing.T) {
	s := sensor.New()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := s.Monitor(ctx, 5*time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMonitorNReturnsAfterBudget(t *testing.T) {
	s := sensor.New()

	done := make(chan error, 1)
	go func() {
		done <- s.MonitorN(context.Background(), time.Millisecond, 3)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bounded monitor did not return")
	}
}

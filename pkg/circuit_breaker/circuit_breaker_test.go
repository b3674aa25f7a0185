package circuit_breaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_circuitBreaker_Call(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(10, 2*time.Second, 0.3, 3).(*circuitBreaker)
	cb.now = func() time.Time { return clock }

	ok := func() error { return nil }
	errService := errors.New("service error")
	fail := func() error { return errService }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	// 3 of the last 10 calls failing reaches the 30% threshold
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errService)
	}
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), ErrOpenCB)

	clock = clock.Add(3 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())

	// a failure while probing opens it again
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	clock = clock.Add(3 * time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(2, time.Hour, 0.5, 1)
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}

func Test_circuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	cb := New(2, time.Second, 0.5, 2).(*circuitBreaker)
	cb.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())

	mu.Lock()
	clock = clock.Add(2 * time.Second)
	mu.Unlock()

	started := make(chan struct{})
	release := make(chan struct{})
	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			return cb.Call(func() error {
				started <- struct{}{}
				<-release
				return nil
			})
		})
	}
	<-started
	<-started
	require.Equal(t, HalfOpen, cb.State())

	// both probe slots are taken
	require.ErrorIs(t, cb.Call(func() error { return nil }), ErrOpenCB)

	close(release)
	require.NoError(t, g.Wait())
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}

func Test_circuitBreaker_StaleProbeIgnored(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(2, time.Second, 0.5, 1).(*circuitBreaker)
	cb.now = func() time.Time { return clock }

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	clock = clock.Add(2 * time.Second)

	stale, ok := cb.allow()
	require.True(t, ok)
	require.True(t, stale.probe)

	cb.Reset()
	require.Equal(t, Closed, cb.State())

	// a probe from a finished half-open window does not reopen a closed breaker
	cb.done(stale, true)
	require.Equal(t, Closed, cb.State())
}

func Test_window(t *testing.T) {
	w := newWindow(4)
	for _, failed := range []bool{true, true, false, false} {
		w.record(failed)
	}
	require.Equal(t, 0.5, w.ratio())

	// the two failures roll out
	w.record(false)
	w.record(false)
	require.Equal(t, 0.0, w.ratio())

	w.record(true)
	w.clear()
	require.Equal(t, 0.0, w.ratio())
	require.Equal(t, "half-open", HalfOpen.String())
}

package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

// window keeps the outcomes of the most recent calls.
type window struct {
	failed   []bool
	next     int
	failures int
}

func newWindow(size int) window {
	if size < 1 {
		size = 1
	}
	return window{failed: make([]bool, size)}
}

func (w *window) record(failed bool) {
	if w.failed[w.next] {
		w.failures--
	}
	if failed {
		w.failures++
	}
	w.failed[w.next] = failed
	w.next = (w.next + 1) % len(w.failed)
}

func (w *window) ratio() float64 {
	return float64(w.failures) / float64(len(w.failed))
}

func (w *window) clear() {
	for i := range w.failed {
		w.failed[i] = false
	}
	w.next, w.failures = 0, 0
}

type circuitBreaker struct {
	mu       sync.Mutex
	state    Status
	outcomes window
	openedAt time.Time

	// half-open bookkeeping; generation changes on every transition to HalfOpen
	generation uint64
	inFlight   int
	probes     int

	threshold float64
	cooldown  time.Duration
	recovery  int

	now func() time.Time
}

// New returns a breaker that opens once the failure share of the last recordLength calls reaches
// percentile and rejects calls for timeout. It then lets at most recoveryRequests probes run at
// once and closes after recoveryRequests of them succeed. Callers beyond that get ErrOpenCB.
func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	if recoveryRequests < 1 {
		recoveryRequests = 1
	}
	return &circuitBreaker{
		state:     Closed,
		outcomes:  newWindow(recordLength),
		threshold: percentile,
		cooldown:  timeout,
		recovery:  recoveryRequests,
		now:       time.Now,
	}
}

// ticket identifies an admitted call; probe calls carry the half-open generation they ran in.
type ticket struct {
	probe      bool
	generation uint64
}

func (cb *circuitBreaker) Call(service func() error) error {
	t, ok := cb.allow()
	if !ok {
		return ErrOpenCB
	}
	err := service()
	cb.done(t, err != nil)
	return err
}

func (cb *circuitBreaker) allow() (ticket, bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case Closed:
		return ticket{}, true
	case Open:
		if cb.now().Sub(cb.openedAt) <= cb.cooldown {
			return ticket{}, false
		}
		cb.state = HalfOpen
		cb.generation++
		cb.inFlight, cb.probes = 0, 0
	}
	if cb.inFlight >= cb.recovery {
		return ticket{}, false
	}
	cb.inFlight++
	return ticket{probe: true, generation: cb.generation}, true
}

func (cb *circuitBreaker) done(t ticket, failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.outcomes.record(failed)

	current := t.probe && t.generation == cb.generation
	if current && cb.inFlight > 0 {
		cb.inFlight--
	}

	switch cb.state {
	case HalfOpen:
		if !current {
			return
		}
		if failed {
			cb.open()
			return
		}
		if cb.probes++; cb.probes >= cb.recovery {
			cb.close()
		}
	case Closed:
		if !t.probe && cb.outcomes.ratio() >= cb.threshold {
			cb.open()
		}
	}
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.close()
}

func (cb *circuitBreaker) open() {
	cb.state = Open
	cb.inFlight, cb.probes = 0, 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) close() {
	cb.outcomes.clear()
	cb.inFlight, cb.probes = 0, 0
	cb.state = Closed
}

package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/metrics"
)

const (
	defaultInterval = time.Minute
	probeLimit      = 1
	failureLimit    = 3
)

// Upstream is the slice of the fight API the probe exercises.
type Upstream interface {
	MainEvents(ctx context.Context, limit int) ([]events.MainEvent, error)
}

// Poller probes the fight API on an interval and tracks whether it is reachable.
type Poller struct {
	upstream Upstream
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the upstream probe.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the upstream answered recently and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < failureLimit
}

// New constructs a Poller with sane defaults.
func New(upstream Upstream, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		upstream: upstream,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins probing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "probe started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.probeOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "probe stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "probe stopped")
				return
			case <-p.ticker.C:
				p.probeOnce(ctx)
			}
		}
	}()
}

// Stop halts the probe loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) probeOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	began := time.Now()
	cards, err := p.upstream.MainEvents(ctx, probeLimit)
	elapsed := time.Since(began)
	p.metrics.RecordProbeCycle(elapsed, err)
	if err != nil {
		logging.Error(p.logger, "upstream probe failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	logging.Debug(p.logger, "upstream probe ok",
		logging.FieldCount, len(cards),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the probe's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

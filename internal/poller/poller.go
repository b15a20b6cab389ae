// Package poller implements the client-side reminder loop. Each reminder
// occurrence moves Unseen → Surfaced → Acknowledged; once surfaced it is
// never alerted again within the session, even if the server keeps
// reporting it as due.
package poller

import (
	"context"
	"sync"
	"time"

	"vitaplan/internal/observability"
	"vitaplan/internal/reminder"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderSource is the server surface the poller pulls from.
type ReminderSource interface {
	DueReminders(ctx context.Context, asOf time.Time) ([]reminder.Reminder, error)
	Acknowledge(ctx context.Context, activityID uuid.UUID, trigger time.Time) error
}

// Alerter receives exactly one call per newly surfaced reminder.
type Alerter interface {
	Alert(r reminder.Reminder)
}

const (
	DefaultInterval = 60 * time.Second
	defaultTimeout  = 10 * time.Second
)

type Poller struct {
	source   ReminderSource
	alerter  Alerter
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu   sync.Mutex
	seen map[string]struct{}

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	runMu    sync.Mutex
}

type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

func WithTimeout(d time.Duration) Option {
	return func(p *Poller) { p.timeout = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

func New(source ReminderSource, alerter Alerter, logger *zap.Logger, opts ...Option) *Poller {
	p := &Poller{
		source:   source,
		alerter:  alerter,
		interval: DefaultInterval,
		timeout:  defaultTimeout,
		logger:   logger,
		now:      time.Now,
		seen:     make(map[string]struct{}),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the polling loop. The first tick fires immediately so a
// freshly opened session does not wait a full interval for overdue
// reminders. Ticks run sequentially inside one goroutine, so two fetches
// can never be in flight at once.
func (p *Poller) Start() {
	p.runMu.Lock()
	if p.running {
		p.runMu.Unlock()
		return
	}
	p.running = true
	p.runMu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.tick(p.now())

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopChan:
				return
			case <-ticker.C:
				p.tick(p.now())
			}
		}
	}()
}

// Stop halts the loop and waits for any in-flight tick. After Stop returns
// no further alerts are emitted.
func (p *Poller) Stop() {
	p.runMu.Lock()
	if !p.running {
		p.runMu.Unlock()
		return
	}
	p.running = false
	p.runMu.Unlock()

	close(p.stopChan)
	p.wg.Wait()
}

// tick fetches due reminders and surfaces the ones not seen this session.
// A fetch failure is swallowed: logged, counted, retried on the next tick.
func (p *Poller) tick(asOf time.Time) {
	observability.PollTicks.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	reminders, err := p.source.DueReminders(ctx, asOf)
	if err != nil {
		observability.PollFailures.Inc()
		p.logger.Warn("reminder_fetch_failed", zap.Error(err))
		return
	}

	for _, r := range reminders {
		key := r.OccurrenceKey()
		if p.alreadySeen(key) {
			continue
		}

		p.alerter.Alert(r)
		p.markSeen(key)
		observability.AlertsEmitted.Inc()
		p.logger.Info("reminder_surfaced",
			zap.String("activity_id", r.ActivityID.String()),
			zap.Time("trigger_time", r.TriggerTime),
		)

		// Best-effort server acknowledgment. The local seen set already
		// suppresses duplicates for this session, so a failure here is
		// only logged, never retried within the tick.
		if err := p.source.Acknowledge(ctx, r.ActivityID, r.TriggerTime); err != nil {
			p.logger.Warn("reminder_ack_failed",
				zap.String("activity_id", r.ActivityID.String()),
				zap.Error(err),
			)
		}
	}
}

func (p *Poller) alreadySeen(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.seen[key]
	return ok
}

func (p *Poller) markSeen(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen[key] = struct{}{}
}

// SeenCount reports how many occurrences have been surfaced this session.
func (p *Poller) SeenCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/companion/pkg/domain"
)

//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/evaluator.go -pkg mocks -skip-ensure -fmt goimports . Evaluator
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/turn_store.go -pkg mocks -skip-ensure -fmt goimports . TurnStore
//go:generate moq -out mocks/attempt_store.go -pkg mocks -skip-ensure -fmt goimports . AttemptStore

// daily counters roll over at local midnight, the sweep just has to catch it
// reasonably soon
const dailyResetInterval = 5 * time.Minute

// UserStore provides the user queries the background workers need
type UserStore interface {
	ActiveForProactive(ctx context.Context, activeSince time.Time, limit int) ([]*domain.User, error)
	Timezones(ctx context.Context) ([]string, error)
	ResetDaily(ctx context.Context, timezone, localDate string) (int64, error)
}

// Evaluator runs the proactive gates and produces the outgoing message
type Evaluator interface {
	Generate(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error)
	RecordSend(ctx context.Context, user *domain.User, text, category string) error
}

// Notifier delivers proactive messages to the user's channel
type Notifier interface {
	SendProactive(ctx context.Context, user *domain.User, text string) error
}

// TurnStore removes expired conversation turns
type TurnStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AttemptStore removes expired proactive attempts
type AttemptStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler runs the background workers: proactive outreach sweeps, daily
// counter resets at local midnight, and retention cleanup.
type Scheduler struct {
	users     UserStore
	evaluator Evaluator
	notifier  Notifier
	turns     TurnStore
	attempts  AttemptStore

	proactiveInterval time.Duration
	activeWindow      time.Duration
	batchSize         int
	maxWorkers        int
	cleanupInterval   time.Duration
	turnRetention     time.Duration
	attemptRetention  time.Duration

	nowFn  func() time.Time
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Users     UserStore
	Evaluator Evaluator
	Notifier  Notifier
	Turns     TurnStore
	Attempts  AttemptStore

	ProactiveInterval time.Duration // how often to sweep candidates, default 15m
	ActiveWindow      time.Duration // how recently a user must have talked, default 7 days
	BatchSize         int           // candidates per sweep, default 100
	MaxWorkers        int           // concurrent evaluations, default 5
	CleanupInterval   time.Duration // default 1h
	TurnRetention     time.Duration // default 90 days
	AttemptRetention  time.Duration // default 30 days

	NowFn func() time.Time // for testing
}

// NewScheduler creates a scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.ProactiveInterval == 0 {
		params.ProactiveInterval = 15 * time.Minute
	}
	if params.ActiveWindow == 0 {
		params.ActiveWindow = 7 * 24 * time.Hour
	}
	if params.BatchSize == 0 {
		params.BatchSize = 100
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	if params.CleanupInterval == 0 {
		params.CleanupInterval = time.Hour
	}
	if params.TurnRetention == 0 {
		params.TurnRetention = 90 * 24 * time.Hour
	}
	if params.AttemptRetention == 0 {
		params.AttemptRetention = 30 * 24 * time.Hour
	}
	if params.NowFn == nil {
		params.NowFn = time.Now
	}

	return &Scheduler{
		users:             params.Users,
		evaluator:         params.Evaluator,
		notifier:          params.Notifier,
		turns:             params.Turns,
		attempts:          params.Attempts,
		proactiveInterval: params.ProactiveInterval,
		activeWindow:      params.ActiveWindow,
		batchSize:         params.BatchSize,
		maxWorkers:        params.MaxWorkers,
		cleanupInterval:   params.CleanupInterval,
		turnRetention:     params.TurnRetention,
		attemptRetention:  params.AttemptRetention,
		nowFn:             params.NowFn,
	}
}

// Start begins the background workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	// proactive worker needs a delivery channel
	if s.notifier != nil {
		s.wg.Add(1)
		go s.proactiveWorker(ctx)
	} else {
		lgr.Printf("[WARN] no notifier configured, proactive outreach disabled")
	}

	s.wg.Add(1)
	go s.dailyResetWorker(ctx)

	s.wg.Add(1)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started, proactive interval %v, cleanup interval %v", s.proactiveInterval, s.cleanupInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// proactiveWorker periodically sweeps recently active users
func (s *Scheduler) proactiveWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.proactiveInterval)
	defer ticker.Stop()

	// run immediately on start
	s.ProactiveSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ProactiveSweep(ctx)
		}
	}
}

// ProactiveSweep evaluates every recently active candidate and sends to those
// who pass the gates. Exposed for the admin trigger endpoint.
func (s *Scheduler) ProactiveSweep(ctx context.Context) {
	candidates, err := s.users.ActiveForProactive(ctx, s.nowFn().Add(-s.activeWindow), s.batchSize)
	if err != nil {
		lgr.Printf("[ERROR] failed to get proactive candidates: %v", err)
		return
	}
	if len(candidates) == 0 {
		return
	}

	lgr.Printf("[DEBUG] proactive sweep over %d candidates", len(candidates))

	// worker pool, the evaluator ends up calling the LLM for some users
	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	var sent atomic.Int64

	for _, u := range candidates {
		wg.Add(1)
		go func(user *domain.User) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if s.reachOut(ctx, user) {
				sent.Add(1)
			}
		}(u)
	}

	wg.Wait()
	if sent.Load() > 0 {
		lgr.Printf("[INFO] proactive sweep sent %d messages, %d candidates", sent.Load(), len(candidates))
	}
}

// reachOut runs the gate evaluation for one user and delivers the message
// when allowed. Returns true when a message went out.
func (s *Scheduler) reachOut(ctx context.Context, user *domain.User) bool {
	result, err := s.evaluator.Generate(ctx, user)
	if err != nil {
		lgr.Printf("[ERROR] proactive evaluation failed for user %d: %v", user.ID, err)
		return false
	}
	if !result.Decision.Allowed {
		return false // the evaluator logs the blocking gate
	}

	if err := s.notifier.SendProactive(ctx, user, result.Text); err != nil {
		lgr.Printf("[WARN] proactive delivery failed for user %d: %v", user.ID, err)
		return false
	}

	// record after delivery so a failed send doesn't burn the daily budget
	if err := s.evaluator.RecordSend(ctx, user, result.Text, result.Category); err != nil {
		lgr.Printf("[ERROR] failed to record proactive send for user %d: %v", user.ID, err)
	}
	return true
}

// dailyResetWorker rolls daily counters over at each timezone's local midnight
func (s *Scheduler) dailyResetWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(dailyResetInterval)
	defer ticker.Stop()

	// run immediately on start to catch resets missed while down
	s.dailyResetSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dailyResetSweep(ctx)
		}
	}
}

// dailyResetSweep resets counters for every timezone that crossed into a new
// local date since the last reset
func (s *Scheduler) dailyResetSweep(ctx context.Context) {
	timezones, err := s.users.Timezones(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get user timezones: %v", err)
		return
	}

	now := s.nowFn()
	for _, tz := range timezones {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			lgr.Printf("[WARN] unknown timezone %q, skipped in daily reset", tz)
			continue
		}

		localDate := now.In(loc).Format("2006-01-02")
		rows, err := s.users.ResetDaily(ctx, tz, localDate)
		if err != nil {
			lgr.Printf("[ERROR] daily reset failed for timezone %s: %v", tz, err)
			continue
		}
		if rows > 0 {
			lgr.Printf("[INFO] reset daily counters for %d users in %s", rows, tz)
		}
	}
}

// cleanupWorker periodically trims expired rows
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupSweep(ctx)
		}
	}
}

// cleanupSweep deletes turns and proactive attempts past their retention
func (s *Scheduler) cleanupSweep(ctx context.Context) {
	now := s.nowFn()

	if removed, err := s.turns.DeleteOlderThan(ctx, now.Add(-s.turnRetention)); err != nil {
		lgr.Printf("[ERROR] turn cleanup failed: %v", err)
	} else if removed > 0 {
		lgr.Printf("[INFO] removed %d conversation turns older than %v", removed, s.turnRetention)
	}

	if removed, err := s.attempts.DeleteOlderThan(ctx, now.Add(-s.attemptRetention)); err != nil {
		lgr.Printf("[ERROR] proactive attempt cleanup failed: %v", err)
	} else if removed > 0 {
		lgr.Printf("[INFO] removed %d proactive attempts older than %v", removed, s.attemptRetention)
	}
}

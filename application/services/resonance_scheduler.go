package services

import (
	"context"
	"sync"
	"time"

	"aura-backend/domain/config"
	"aura-backend/domain/engine"
	"aura-backend/domain/lexicon"

	"go.uber.org/zap"
)

// ActivationSource yields the current activated node set for a user.
// JourneyService satisfies this with its per-user cached result.
type ActivationSource interface {
	ActivatedNodes(userID string) []lexicon.NodeIndex
}

// ResonancePublisher receives freshly computed edge sets. The websocket hub
// implements this to push frames to connected clients.
type ResonancePublisher interface {
	PublishResonance(userID string, edges []engine.ResonanceEdge)
}

// ResonanceScheduler recomputes the resonance graph for every subscribed
// user on a fixed interval and hands the edges to the publisher. It is the
// only stateful "live" piece of the engine: the graph is a function of
// wall-clock time, so the clock is injectable for tests. Stop is
// deterministic; no timer survives teardown.
type ResonanceScheduler struct {
	source    ActivationSource
	publisher ResonancePublisher
	interval  time.Duration
	clock     func() time.Time
	cfg       *config.DomainConfig
	logger    *zap.Logger

	mu          sync.RWMutex
	subscribers map[string]int // userID -> subscription count
	running     bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewResonanceScheduler creates a scheduler. Interval must be positive; the
// domain default is used otherwise.
func NewResonanceScheduler(
	source ActivationSource,
	publisher ResonancePublisher,
	interval time.Duration,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *ResonanceScheduler {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if interval <= 0 {
		interval = cfg.RefreshInterval
	}

	return &ResonanceScheduler{
		source:      source,
		publisher:   publisher,
		interval:    interval,
		clock:       time.Now,
		cfg:         cfg,
		logger:      logger,
		subscribers: make(map[string]int),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// WithClock overrides the time source. Test hook.
func (s *ResonanceScheduler) WithClock(clock func() time.Time) *ResonanceScheduler {
	s.clock = clock
	return s
}

// Subscribe registers interest in a user's resonance feed. Multiple views of
// the same user share one recomputation.
func (s *ResonanceScheduler) Subscribe(userID string) {
	s.mu.Lock()
	s.subscribers[userID]++
	s.mu.Unlock()
}

// Unsubscribe drops one subscription; the user leaves the refresh loop when
// the last subscriber is gone.
func (s *ResonanceScheduler) Unsubscribe(userID string) {
	s.mu.Lock()
	if n, ok := s.subscribers[userID]; ok {
		if n <= 1 {
			delete(s.subscribers, userID)
		} else {
			s.subscribers[userID] = n - 1
		}
	}
	s.mu.Unlock()
}

// Snapshot computes the edge set for a user at the current instant without
// waiting for the next tick, returning the instant used.
func (s *ResonanceScheduler) Snapshot(userID string) ([]engine.ResonanceEdge, time.Time) {
	now := s.clock()
	return engine.BuildResonanceGraph(s.source.ActivatedNodes(userID), now, s.cfg), now
}

// Run drives the refresh loop until Stop is called or the context ends.
func (s *ResonanceScheduler) Run(ctx context.Context) {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("resonance scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("resonance scheduler stopped", zap.String("reason", "context"))
			return
		case <-s.stop:
			s.logger.Info("resonance scheduler stopped", zap.String("reason", "shutdown"))
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Stop tears the loop down and waits for the final tick to finish. Safe to
// call even if Run was never started; a Run started afterwards exits at once.
func (s *ResonanceScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})

	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()

	if running {
		<-s.done
	}
}

func (s *ResonanceScheduler) tick() {
	s.mu.RLock()
	users := make([]string, 0, len(s.subscribers))
	for userID := range s.subscribers {
		users = append(users, userID)
	}
	s.mu.RUnlock()

	now := s.clock()
	for _, userID := range users {
		edges := engine.BuildResonanceGraph(s.source.ActivatedNodes(userID), now, s.cfg)
		s.publisher.PublishResonance(userID, edges)
	}
}

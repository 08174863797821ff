package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/progress"
	"github.com/vocadrill/vocadrill/internal/selection"
	"github.com/vocadrill/vocadrill/internal/store"
)

// UnitSelector produces the session's learning units.
// *selection.Selector is the production implementation.
type UnitSelector interface {
	Select(ctx context.Context, opts selection.Options) ([]selection.Unit, error)
}

// ProgressTracker persists per-attempt outcomes to durable item state.
// *progress.Tracker is the production implementation.
type ProgressTracker interface {
	ApplyOutcome(ctx context.Context, userID, itemID int64, modality evaluate.Modality, out progress.Outcome) error
	TrackSkip(ctx context.Context, userID, itemID int64, modality evaluate.Modality) error
}

// Manager owns the in-memory session registry. Sessions are independent:
// each entry carries its own lock, so attempts against different sessions
// never block each other.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*managedSession

	selector UnitSelector
	tracker  ProgressTracker
	events   store.EventRepo

	rngMu sync.Mutex
	rng   *rand.Rand

	log logging.Sink
	now func() time.Time
}

type managedSession struct {
	mu sync.Mutex
	s  *Session
}

// NewManager creates a Manager. The rng feeds sampling-independent feedback
// randomization and is injected for reproducibility.
func NewManager(selector UnitSelector, tracker ProgressTracker, events store.EventRepo, rng *rand.Rand, log logging.Sink) *Manager {
	return &Manager{
		sessions: make(map[string]*managedSession),
		selector: selector,
		tracker:  tracker,
		events:   events,
		rng:      rng,
		log:      log,
		now:      time.Now,
	}
}

// WithClock overrides the manager's clock. Used in tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Create selects a batch of units and registers a new active session.
// The durable record written here is the coarse "session started"
// checkpoint; full state lives in memory only.
func (m *Manager) Create(ctx context.Context, userID int64, cfg Config) (*Session, error) {
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = DefaultTargetCount
	}
	if cfg.Distribution == (selection.Distribution{}) {
		cfg.Distribution = selection.DefaultDistribution()
	}
	if cfg.Type == "" {
		cfg.Type = TypeStandard
	}

	units, err := m.selector.Select(ctx, selection.Options{
		UserID:        userID,
		TargetCount:   cfg.TargetCount,
		Scope:         cfg.Scope,
		Distribution:  cfg.Distribution,
		ExcludeRecent: cfg.ExcludeRecent,
	})
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := &Session{
		ID:              uuid.NewString(),
		UserID:          userID,
		Config:          cfg,
		Units:           units,
		Status:          StatusActive,
		StartedAt:       now,
		segmentStart:    now,
		MistakePatterns: make(map[string]int),
	}

	if err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    s.ID,
		UserID:       userID,
		Action:       "started",
		SessionType:  string(cfg.Type),
		ItemsPlanned: len(units),
	}); err != nil {
		return nil, fmt.Errorf("persist session start: %w", err)
	}

	m.mu.Lock()
	m.sessions[s.ID] = &managedSession{s: s}
	m.mu.Unlock()

	m.log.Log("session created", logging.LevelInfo, logging.Fields{
		"session_id": s.ID,
		"user_id":    userID,
		"units":      len(units),
	})
	return s.snapshot(), nil
}

// Get returns a snapshot of a live session, or nil if unknown/terminal.
func (m *Manager) Get(sessionID string) *Session {
	ms := m.lookup(sessionID)
	if ms == nil {
		return nil
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.s.snapshot()
}

// ProcessAttempt judges and records one attempt against the session's
// current unit, advances the session, and emits feedback plus an optional
// adaptive rebalance signal. On the final unit it finalizes the session and
// embeds the summary in the feedback.
func (m *Manager) ProcessAttempt(ctx context.Context, sessionID string, att Attempt) (*Feedback, *AdaptiveSignal, error) {
	ms := m.lookup(sessionID)
	if ms == nil {
		return nil, nil, ErrSessionNotFound
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	s := ms.s

	switch s.Status {
	case StatusActive:
	case StatusPaused:
		return nil, nil, ErrSessionPaused
	default:
		return nil, nil, ErrSessionNotFound
	}

	unit, err := s.currentUnit()
	if err != nil {
		m.log.Log("current index out of range", logging.LevelError, logging.Fields{
			"session_id": s.ID,
			"index":      s.CurrentIndex,
			"units":      len(s.Units),
		})
		return nil, nil, err
	}

	skipped := att.Skip && s.Config.AllowSkip
	var result evaluate.Result

	if skipped {
		if err := m.tracker.TrackSkip(ctx, s.UserID, unit.ItemID, att.Modality); err != nil {
			return nil, nil, err
		}
		s.Skipped++
		s.MistakePatterns[PatternSkipped]++
	} else {
		result = evaluate.Evaluate(evaluate.Input{
			Modality:             att.Modality,
			Answer:               att.Input,
			Expected:             unit.Word,
			Accepted:             att.Accepted,
			RecognizerConfidence: att.RecognizerConfidence,
			Transcript:           att.Transcript,
			MultipleChoice:       att.MultipleChoice,
		})

		// A failed durable update must not be reported as a processed
		// attempt, so tracker errors propagate before counters move.
		if err := m.tracker.ApplyOutcome(ctx, s.UserID, unit.ItemID, att.Modality, progress.Outcome{
			Correct:        result.Correct,
			ResponseTimeMs: att.ResponseTimeMs,
			Metadata: map[string]string{
				"user_input": att.Input,
				"expected":   unit.Word,
			},
		}); err != nil {
			return nil, nil, err
		}

		if result.Correct {
			s.Correct++
		} else {
			s.Incorrect++
			s.MistakePatterns[mistakePattern(att, unit)]++
		}
	}

	// Skip or not, the unit is consumed.
	s.Completed++
	s.CurrentIndex++
	s.DifficultyTrace = append(s.DifficultyTrace, unit.Difficulty.Composite)
	if att.ResponseTimeMs > 0 {
		s.ResponseTimesMs = append(s.ResponseTimesMs, att.ResponseTimeMs)
	}

	if err := m.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID: s.ID,
		UserID:    s.UserID,
		ItemID:    unit.ItemID,
		Modality:  string(att.Modality),
		UserInput: att.Input,
		Expected:  unit.Word,
		Correct:   result.Correct,
		Accuracy:  result.Accuracy,
		TimeMs:    att.ResponseTimeMs,
		Skipped:   skipped,
	}); err != nil {
		// The durable item state is already applied; losing one attempt
		// record is tolerable but never silent.
		m.log.Log("persist attempt event failed", logging.LevelError, logging.Fields{
			"session_id": s.ID,
			"item_id":    unit.ItemID,
			"error":      err.Error(),
		})
	}

	var signal *AdaptiveSignal
	if s.Config.AdaptiveDifficulty && s.Completed%rebalanceEvery == 0 {
		signal = rebalanceSignal(s)
	}

	feedback := m.buildFeedback(s, unit, result, skipped)

	if s.CurrentIndex >= len(s.Units) {
		summary, err := m.finalizeLocked(ctx, s, StatusCompleted)
		if err != nil {
			return nil, nil, err
		}
		feedback.Summary = summary
	}

	return feedback, signal, nil
}

// Pause freezes an active session's elapsed-time accounting. Pausing a
// paused session is a no-op.
func (m *Manager) Pause(sessionID string) error {
	ms := m.lookup(sessionID)
	if ms == nil {
		return ErrSessionNotFound
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.s.Status != StatusActive {
		return nil
	}
	now := m.now()
	ms.s.Elapsed += now.Sub(ms.s.segmentStart)
	ms.s.Status = StatusPaused
	return nil
}

// Resume restarts the elapsed-time clock; time spent paused doesn't count.
// Resuming an active session is a no-op.
func (m *Manager) Resume(sessionID string) error {
	ms := m.lookup(sessionID)
	if ms == nil {
		return ErrSessionNotFound
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.s.Status != StatusPaused {
		return nil
	}
	ms.s.segmentStart = m.now()
	ms.s.Status = StatusActive
	return nil
}

// Abandon terminates a session, persisting whatever partial counters exist.
// Abandoning an unknown or already-terminal session is an idempotent no-op.
func (m *Manager) Abandon(ctx context.Context, sessionID string) error {
	ms := m.lookup(sessionID)
	if ms == nil {
		return nil
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.s.Status == StatusCompleted || ms.s.Status == StatusAbandoned {
		return nil
	}
	_, err := m.finalizeLocked(ctx, ms.s, StatusAbandoned)
	return err
}

// Complete finalizes an active (or paused) session early and returns its
// summary.
func (m *Manager) Complete(ctx context.Context, sessionID string) (*Summary, error) {
	ms := m.lookup(sessionID)
	if ms == nil {
		return nil, ErrSessionNotFound
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.s.Status == StatusCompleted || ms.s.Status == StatusAbandoned {
		return nil, ErrSessionNotFound
	}
	return m.finalizeLocked(ctx, ms.s, StatusCompleted)
}

// finalizeLocked transitions the session to a terminal state, persists the
// final durable counters, builds the summary, and drops the session from
// the registry. Caller holds the session lock.
func (m *Manager) finalizeLocked(ctx context.Context, s *Session, terminal Status) (*Summary, error) {
	now := m.now()
	s.Elapsed = s.elapsedAt(now)
	s.Status = terminal
	s.EndedAt = &now

	summary := buildSummary(s)

	action := "completed"
	if terminal == StatusAbandoned {
		action = "abandoned"
	}
	if err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     s.ID,
		UserID:        s.UserID,
		Action:        action,
		SessionType:   string(s.Config.Type),
		ItemsPlanned:  len(s.Units),
		Completed:     s.Completed,
		Correct:       s.Correct,
		Incorrect:     s.Incorrect,
		Skipped:       s.Skipped,
		DurationSecs:  int(s.Elapsed.Seconds()),
		Score:         summary.Score,
		CompletionPct: summary.Completion * 100,
	}); err != nil {
		return nil, fmt.Errorf("persist session %s: %w", action, err)
	}

	m.mu.Lock()
	delete(m.sessions, s.ID)
	m.mu.Unlock()

	m.log.Log("session finalized", logging.LevelInfo, logging.Fields{
		"session_id": s.ID,
		"action":     action,
		"completed":  s.Completed,
		"correct":    s.Correct,
	})
	return summary, nil
}

func (m *Manager) lookup(sessionID string) *managedSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[sessionID]
}

// mistakePattern categorizes a wrong answer for the session tally.
func mistakePattern(att Attempt, unit *selection.Unit) string {
	switch {
	case att.AttemptCount > 1:
		return PatternMultipleAttempts
	case att.ResponseTimeMs > slowResponseMs:
		return PatternSlowResponse
	case unit.Difficulty.Classification == difficulty.VeryHard:
		return PatternHighDifficulty
	default:
		return PatternGeneralMistake
	}
}

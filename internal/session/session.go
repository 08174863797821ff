// Package session owns the lifecycle of active practice sessions: creation,
// per-attempt processing, pause/resume/abandon, completion, and summaries.
package session

import (
	"errors"
	"time"

	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/selection"
	"github.com/vocadrill/vocadrill/internal/store"
)

var (
	// ErrSessionNotFound means the session id is unknown or already terminal.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionPaused means an attempt was submitted while paused.
	ErrSessionPaused = errors.New("session is paused")

	// ErrNoCurrentUnit is an internal invariant violation: the current index
	// points past the unit list.
	ErrNoCurrentUnit = errors.New("no current unit")
)

// Type names the flavor of a practice session.
type Type string

const (
	TypeStandard Type = "standard"
	TypeReview   Type = "review"
	TypeQuick    Type = "quick"
)

// Status is the lifecycle state of a session. Completed and abandoned are
// terminal; terminal sessions leave the registry.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// DefaultTargetCount is used when the caller doesn't size the session.
const DefaultTargetCount = 10

// Config captures the caller's session options.
type Config struct {
	Type               Type
	TargetCount        int
	Distribution       selection.Distribution
	Scope              store.Scope
	AdaptiveDifficulty bool
	AllowSkip          bool
	ExcludeRecent      bool
}

// Mistake pattern categories tallied per session.
const (
	PatternSkipped          = "skipped"
	PatternMultipleAttempts = "multiple_attempts"
	PatternSlowResponse     = "slow_response"
	PatternHighDifficulty   = "high_difficulty"
	PatternGeneralMistake   = "general_mistake"
)

// slowResponseMs is the latency above which a mistake counts as slow.
const slowResponseMs = 15000

// Session is the in-memory state of one practice session. The manager
// serializes all access through a per-session lock; callers only ever see
// snapshot copies.
type Session struct {
	ID     string
	UserID int64
	Config Config

	Units        []selection.Unit
	CurrentIndex int

	Completed int
	Correct   int
	Incorrect int
	Skipped   int

	DifficultyTrace []float64
	MistakePatterns map[string]int
	ResponseTimesMs []int

	Status    Status
	StartedAt time.Time
	EndedAt   *time.Time

	// Elapsed accumulates active time across pauses. segmentStart marks
	// when the current active segment began.
	Elapsed      time.Duration
	segmentStart time.Time
}

// Attempt is one submission against the session's current unit. Consumed
// once; it feeds the analytics trace and the progress tracker and is not
// retained.
type Attempt struct {
	ItemID   int64
	Modality evaluate.Modality
	Input    string

	// Accepted, RecognizerConfidence, Transcript, and MultipleChoice are
	// modality-specific extras passed through to the evaluator.
	Accepted             []string
	RecognizerConfidence float64
	Transcript           string
	MultipleChoice       bool

	ResponseTimeMs int
	AttemptCount   int
	Skip           bool
}

// currentUnit resolves the unit at the current index.
func (s *Session) currentUnit() (*selection.Unit, error) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Units) {
		return nil, ErrNoCurrentUnit
	}
	return &s.Units[s.CurrentIndex], nil
}

// accuracy is correct answers over completed items, 0 before any progress.
func (s *Session) accuracy() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Completed)
}

// averageDifficulty is the mean of the difficulty trace so far.
func (s *Session) averageDifficulty() float64 {
	if len(s.DifficultyTrace) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range s.DifficultyTrace {
		sum += d
	}
	return sum / float64(len(s.DifficultyTrace))
}

// averageResponseMs is the mean recorded response time, 0 with no data.
func (s *Session) averageResponseMs() int {
	if len(s.ResponseTimesMs) == 0 {
		return 0
	}
	sum := 0
	for _, ms := range s.ResponseTimesMs {
		sum += ms
	}
	return sum / len(s.ResponseTimesMs)
}

// elapsedAt returns total active time as of now, including the running
// segment when active.
func (s *Session) elapsedAt(now time.Time) time.Duration {
	if s.Status == StatusActive {
		return s.Elapsed + now.Sub(s.segmentStart)
	}
	return s.Elapsed
}

// snapshot returns a defensive copy safe to hand to callers.
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Units = append([]selection.Unit(nil), s.Units...)
	cp.DifficultyTrace = append([]float64(nil), s.DifficultyTrace...)
	cp.ResponseTimesMs = append([]int(nil), s.ResponseTimesMs...)
	cp.MistakePatterns = make(map[string]int, len(s.MistakePatterns))
	for k, v := range s.MistakePatterns {
		cp.MistakePatterns[k] = v
	}
	return &cp
}

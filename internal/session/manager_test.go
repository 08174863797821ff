package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/progress"
	"github.com/vocadrill/vocadrill/internal/selection"
	"github.com/vocadrill/vocadrill/internal/store"
)

// stubSelector returns a fixed batch of units.
type stubSelector struct {
	units   []selection.Unit
	err     error
	gotOpts selection.Options
}

func (s *stubSelector) Select(_ context.Context, opts selection.Options) ([]selection.Unit, error) {
	s.gotOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.units, nil
}

// stubTracker records outcome calls instead of persisting them.
type stubTracker struct {
	mu       sync.Mutex
	applied  []int64
	skipped  []int64
	applyErr error
}

func (s *stubTracker) ApplyOutcome(_ context.Context, _, itemID int64, _ evaluate.Modality, _ progress.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applyErr != nil {
		return s.applyErr
	}
	s.applied = append(s.applied, itemID)
	return nil
}

func (s *stubTracker) TrackSkip(_ context.Context, _, itemID int64, _ evaluate.Modality) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped = append(s.skipped, itemID)
	return nil
}

// mockEventRepo implements store.EventRepo for session tests.
type mockEventRepo struct {
	mu            sync.Mutex
	attemptEvents []store.AttemptEventData
	sessionEvents []store.SessionEventData
	attemptErr    error
	sessionErr    error
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attemptErr != nil {
		return m.attemptErr
	}
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionErr != nil {
		return m.sessionErr
	}
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) SessionSummaries(_ context.Context, _ int64, _ int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) sessionActions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, 0, len(m.sessionEvents))
	for _, ev := range m.sessionEvents {
		actions = append(actions, ev.Action)
	}
	return actions
}

// fakeClock is a movable clock for elapsed-time tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testUnit(id int64, word string, composite float64) selection.Unit {
	return selection.Unit{
		ItemID:     id,
		Word:       word,
		Definition: "definition of " + word,
		Difficulty: difficulty.Score{
			Composite:      composite,
			Classification: difficulty.Classify(composite),
			Confidence:     0.6,
		},
	}
}

func testUnits(n int, composite float64) []selection.Unit {
	units := make([]selection.Unit, 0, n)
	words := []string{"meadow", "harvest", "lantern", "whisper", "anchor", "ember", "drift", "hollow"}
	for i := 0; i < n; i++ {
		units = append(units, testUnit(int64(i+1), words[i%len(words)], composite))
	}
	return units
}

type testEnv struct {
	manager  *Manager
	selector *stubSelector
	tracker  *stubTracker
	events   *mockEventRepo
	clock    *fakeClock
}

func newTestEnv(units []selection.Unit) *testEnv {
	env := &testEnv{
		selector: &stubSelector{units: units},
		tracker:  &stubTracker{},
		events:   &mockEventRepo{},
		clock:    newFakeClock(),
	}
	env.manager = NewManager(env.selector, env.tracker, env.events, rand.New(rand.NewSource(1)), logging.Nop()).
		WithClock(env.clock.Now)
	return env
}

func correctAttempt(word string) Attempt {
	return Attempt{Modality: evaluate.ModalityTyping, Input: word, ResponseTimeMs: 3000}
}

func wrongAttempt() Attempt {
	return Attempt{Modality: evaluate.ModalityTyping, Input: "zzzzz", ResponseTimeMs: 3000}
}

func TestCreateAppliesDefaults(t *testing.T) {
	env := newTestEnv(testUnits(5, 0.5))

	s, err := env.manager.Create(context.Background(), 1, Config{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if env.selector.gotOpts.TargetCount != DefaultTargetCount {
		t.Errorf("selector TargetCount = %d, want %d", env.selector.gotOpts.TargetCount, DefaultTargetCount)
	}
	if env.selector.gotOpts.Distribution != selection.DefaultDistribution() {
		t.Errorf("selector Distribution = %+v, want default", env.selector.gotOpts.Distribution)
	}
	if s.Config.Type != TypeStandard {
		t.Errorf("Type = %q, want standard", s.Config.Type)
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %q, want active", s.Status)
	}
	if s.ID == "" {
		t.Error("session id is empty")
	}

	if got := env.events.sessionActions(); len(got) != 1 || got[0] != "started" {
		t.Errorf("session events = %v, want [started]", got)
	}
}

func TestCreatePropagatesSelectionError(t *testing.T) {
	env := newTestEnv(nil)
	env.selector.err = selection.ErrNoEligibleItems

	_, err := env.manager.Create(context.Background(), 1, Config{})
	if !errors.Is(err, selection.ErrNoEligibleItems) {
		t.Fatalf("err = %v, want ErrNoEligibleItems", err)
	}
}

func TestCreateFailsWhenStartEventFails(t *testing.T) {
	env := newTestEnv(testUnits(5, 0.5))
	env.events.sessionErr = errors.New("db locked")

	_, err := env.manager.Create(context.Background(), 1, Config{})
	if err == nil {
		t.Fatal("Create succeeded despite event append failure")
	}
	if len(env.manager.sessions) != 0 {
		t.Error("session registered despite failed create")
	}
}

func TestProcessAttemptAdvancesSession(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, err := env.manager.Create(context.Background(), 1, Config{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word))
	if err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if !fb.Correct {
		t.Error("feedback Correct = false for a right answer")
	}
	if fb.NextAction != NextContinue {
		t.Errorf("NextAction = %q, want continue", fb.NextAction)
	}
	if fb.Summary != nil {
		t.Error("mid-session feedback carries a summary")
	}

	snap := env.manager.Get(s.ID)
	if snap.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", snap.CurrentIndex)
	}
	if snap.Correct != 1 || snap.Completed != 1 {
		t.Errorf("Correct/Completed = %d/%d, want 1/1", snap.Correct, snap.Completed)
	}
	if len(env.tracker.applied) != 1 || env.tracker.applied[0] != units[0].ItemID {
		t.Errorf("tracker applied = %v, want [%d]", env.tracker.applied, units[0].ItemID)
	}
}

func TestWrongAnswerCountsMistakePattern(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, wrongAttempt())
	if err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if fb.Correct {
		t.Error("feedback Correct = true for a wrong answer")
	}
	if fb.CorrectAnswer != units[0].Definition {
		t.Errorf("CorrectAnswer = %q, want the definition", fb.CorrectAnswer)
	}

	snap := env.manager.Get(s.ID)
	if snap.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", snap.Incorrect)
	}
	if snap.MistakePatterns[PatternGeneralMistake] != 1 {
		t.Errorf("MistakePatterns = %v, want one general_mistake", snap.MistakePatterns)
	}
}

func TestMistakePatternCategories(t *testing.T) {
	tests := []struct {
		name string
		att  Attempt
		unit selection.Unit
		want string
	}{
		{"retries", Attempt{AttemptCount: 3}, testUnit(1, "w", 0.5), PatternMultipleAttempts},
		{"slow", Attempt{ResponseTimeMs: 16000}, testUnit(1, "w", 0.5), PatternSlowResponse},
		{"very hard word", Attempt{ResponseTimeMs: 2000}, testUnit(1, "w", 0.9), PatternHighDifficulty},
		{"plain miss", Attempt{ResponseTimeMs: 2000}, testUnit(1, "w", 0.5), PatternGeneralMistake},
	}

	for _, tt := range tests {
		if got := mistakePattern(tt.att, &tt.unit); got != tt.want {
			t.Errorf("%s: mistakePattern = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPerfectSessionEndToEnd(t *testing.T) {
	units := testUnits(5, 0.5)
	env := newTestEnv(units)
	s, err := env.manager.Create(context.Background(), 1, Config{TargetCount: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var last *Feedback
	for i, u := range units {
		fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(u.Word))
		if err != nil {
			t.Fatalf("ProcessAttempt #%d: %v", i+1, err)
		}
		last = fb
	}

	if last.NextAction != NextComplete {
		t.Errorf("final NextAction = %q, want complete", last.NextAction)
	}
	if last.Summary == nil {
		t.Fatal("final feedback has no summary")
	}

	sum := last.Summary
	if sum.Completed != 5 || sum.Correct != 5 || sum.Incorrect != 0 {
		t.Errorf("counters = %d/%d/%d, want 5/5/0", sum.Completed, sum.Correct, sum.Incorrect)
	}
	if sum.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", sum.Accuracy)
	}
	if sum.Completion != 1.0 {
		t.Errorf("Completion = %v, want 1.0", sum.Completion)
	}
	// accuracy*70 + avgDifficulty*20 + completion*10 = 70 + 10 + 10.
	if sum.Score != 90.0 {
		t.Errorf("Score = %v, want 90.0", sum.Score)
	}
	if sum.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", sum.Status)
	}

	wantTags := map[string]bool{"Perfect Score!": false, "Speed Demon": false}
	for _, tag := range sum.Achievements {
		if _, ok := wantTags[tag]; ok {
			wantTags[tag] = true
		}
	}
	for tag, seen := range wantTags {
		if !seen {
			t.Errorf("achievement %q missing from %v", tag, sum.Achievements)
		}
	}

	// Terminal sessions leave the registry.
	if env.manager.Get(s.ID) != nil {
		t.Error("completed session still in registry")
	}
	if got := env.events.sessionActions(); len(got) != 2 || got[1] != "completed" {
		t.Errorf("session events = %v, want [started completed]", got)
	}
	if len(env.events.attemptEvents) != 5 {
		t.Errorf("attempt events = %d, want 5", len(env.events.attemptEvents))
	}
}

func TestSkipConsumesUnitWithoutJudging(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{AllowSkip: true})

	fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, Attempt{
		Modality: evaluate.ModalityTyping,
		Skip:     true,
	})
	if err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if !fb.Skipped || fb.Correct {
		t.Errorf("feedback Skipped/Correct = %v/%v, want true/false", fb.Skipped, fb.Correct)
	}

	snap := env.manager.Get(s.ID)
	if snap.Skipped != 1 || snap.Correct != 0 || snap.Incorrect != 0 {
		t.Errorf("counters = %+v", snap)
	}
	if snap.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1 (skip consumes the unit)", snap.CurrentIndex)
	}
	if snap.MistakePatterns[PatternSkipped] != 1 {
		t.Errorf("MistakePatterns = %v, want one skipped", snap.MistakePatterns)
	}
	if len(env.tracker.skipped) != 1 || len(env.tracker.applied) != 0 {
		t.Errorf("tracker calls skip/apply = %d/%d, want 1/0", len(env.tracker.skipped), len(env.tracker.applied))
	}
}

func TestSkipIgnoredWhenDisallowed(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{AllowSkip: false})

	fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, Attempt{
		Modality: evaluate.ModalityTyping,
		Input:    "",
		Skip:     true,
	})
	if err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if fb.Skipped {
		t.Error("skip honored despite AllowSkip=false")
	}

	snap := env.manager.Get(s.ID)
	if snap.Skipped != 0 || snap.Incorrect != 1 {
		t.Errorf("Skipped/Incorrect = %d/%d, want 0/1", snap.Skipped, snap.Incorrect)
	}
}

func TestAttemptOnUnknownSession(t *testing.T) {
	env := newTestEnv(nil)
	_, _, err := env.manager.ProcessAttempt(context.Background(), "nope", wrongAttempt())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestAttemptWhilePaused(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	if err := env.manager.Pause(s.ID); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	_, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word))
	if !errors.Is(err, ErrSessionPaused) {
		t.Fatalf("err = %v, want ErrSessionPaused", err)
	}

	if err := env.manager.Resume(s.ID); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if _, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word)); err != nil {
		t.Fatalf("ProcessAttempt after resume: %v", err)
	}
}

func TestPausedTimeDoesNotCount(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	env.clock.Advance(1 * time.Minute)
	if err := env.manager.Pause(s.ID); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	env.clock.Advance(10 * time.Minute)
	if err := env.manager.Resume(s.ID); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	env.clock.Advance(30 * time.Second)

	sum, err := env.manager.Complete(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if want := 90 * time.Second; sum.TotalTime != want {
		t.Errorf("TotalTime = %v, want %v", sum.TotalTime, want)
	}
}

func TestPauseAndResumeAreIdempotent(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	if err := env.manager.Resume(s.ID); err != nil {
		t.Errorf("Resume on active session: %v", err)
	}
	if err := env.manager.Pause(s.ID); err != nil {
		t.Errorf("Pause: %v", err)
	}
	if err := env.manager.Pause(s.ID); err != nil {
		t.Errorf("Pause on paused session: %v", err)
	}
	if got := env.manager.Get(s.ID).Status; got != StatusPaused {
		t.Errorf("Status = %q, want paused", got)
	}
}

func TestAbandonIsIdempotent(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	if err := env.manager.Abandon(context.Background(), s.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if env.manager.Get(s.ID) != nil {
		t.Error("abandoned session still in registry")
	}

	// Second abandon and unknown ids are quiet no-ops.
	if err := env.manager.Abandon(context.Background(), s.ID); err != nil {
		t.Errorf("repeat Abandon: %v", err)
	}
	if err := env.manager.Abandon(context.Background(), "nope"); err != nil {
		t.Errorf("Abandon unknown: %v", err)
	}

	actions := env.events.sessionActions()
	if len(actions) != 2 || actions[1] != "abandoned" {
		t.Errorf("session events = %v, want [started abandoned]", actions)
	}
}

func TestAbandonKeepsPartialCounters(t *testing.T) {
	units := testUnits(4, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	if _, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word)); err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if _, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, wrongAttempt()); err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if err := env.manager.Abandon(context.Background(), s.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}

	ev := env.events.sessionEvents[len(env.events.sessionEvents)-1]
	if ev.Action != "abandoned" || ev.Completed != 2 || ev.Correct != 1 || ev.Incorrect != 1 {
		t.Errorf("terminal event = %+v", ev)
	}
	if ev.CompletionPct != 50.0 {
		t.Errorf("CompletionPct = %v, want 50.0", ev.CompletionPct)
	}
}

func TestAdaptiveSignalIncrease(t *testing.T) {
	units := testUnits(6, 0.3)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{AdaptiveDifficulty: true})

	var signal *AdaptiveSignal
	for i := 0; i < 3; i++ {
		var err error
		_, signal, err = env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[i].Word))
		if err != nil {
			t.Fatalf("ProcessAttempt #%d: %v", i+1, err)
		}
		if i < 2 && signal != nil {
			t.Errorf("signal emitted after %d items", i+1)
		}
	}

	if signal == nil {
		t.Fatal("no signal after three easy correct answers")
	}
	if signal.Direction != DirectionIncrease {
		t.Errorf("Direction = %q, want increase", signal.Direction)
	}
	if !closeTo(signal.TargetDifficulty, 0.5) {
		t.Errorf("TargetDifficulty = %v, want 0.5", signal.TargetDifficulty)
	}
}

func closeTo(got, want float64) bool {
	return got > want-1e-9 && got < want+1e-9
}

func TestAdaptiveSignalDecrease(t *testing.T) {
	units := testUnits(6, 0.7)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{AdaptiveDifficulty: true})

	var signal *AdaptiveSignal
	for i := 0; i < 3; i++ {
		var err error
		_, signal, err = env.manager.ProcessAttempt(context.Background(), s.ID, wrongAttempt())
		if err != nil {
			t.Fatalf("ProcessAttempt #%d: %v", i+1, err)
		}
	}

	if signal == nil {
		t.Fatal("no signal after three hard misses")
	}
	if signal.Direction != DirectionDecrease {
		t.Errorf("Direction = %q, want decrease", signal.Direction)
	}
	if !closeTo(signal.TargetDifficulty, 0.5) {
		t.Errorf("TargetDifficulty = %v, want 0.5", signal.TargetDifficulty)
	}
}

func TestAdaptiveSignalQuietOnMixedResults(t *testing.T) {
	units := testUnits(6, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{AdaptiveDifficulty: true})

	attempts := []Attempt{correctAttempt(units[0].Word), wrongAttempt(), correctAttempt(units[2].Word)}
	var signal *AdaptiveSignal
	for i, att := range attempts {
		var err error
		_, signal, err = env.manager.ProcessAttempt(context.Background(), s.ID, att)
		if err != nil {
			t.Fatalf("ProcessAttempt #%d: %v", i+1, err)
		}
	}
	if signal != nil {
		t.Errorf("signal = %+v, want nil on mixed accuracy", signal)
	}
}

func TestAdaptiveDisabledEmitsNoSignal(t *testing.T) {
	units := testUnits(6, 0.3)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	for i := 0; i < 3; i++ {
		_, signal, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[i].Word))
		if err != nil {
			t.Fatalf("ProcessAttempt #%d: %v", i+1, err)
		}
		if signal != nil {
			t.Fatalf("signal emitted with adaptive difficulty off")
		}
	}
}

func TestTrackerFailureDoesNotAdvanceSession(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})
	env.tracker.applyErr = errors.New("db locked")

	_, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word))
	if !errors.Is(err, env.tracker.applyErr) {
		t.Fatalf("err = %v, want tracker error", err)
	}

	snap := env.manager.Get(s.ID)
	if snap.CurrentIndex != 0 || snap.Completed != 0 {
		t.Errorf("session advanced despite tracker failure: index %d, completed %d", snap.CurrentIndex, snap.Completed)
	}
}

func TestAttemptEventFailureDoesNotFailAttempt(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})
	env.events.attemptErr = errors.New("db locked")

	fb, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word))
	if err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}
	if !fb.Correct {
		t.Error("feedback lost on event append failure")
	}
	if got := env.manager.Get(s.ID).Completed; got != 1 {
		t.Errorf("Completed = %d, want 1", got)
	}
}

func TestCompleteEarly(t *testing.T) {
	units := testUnits(4, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	if _, _, err := env.manager.ProcessAttempt(context.Background(), s.ID, correctAttempt(units[0].Word)); err != nil {
		t.Fatalf("ProcessAttempt: %v", err)
	}

	sum, err := env.manager.Complete(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if sum.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", sum.Status)
	}
	if sum.Completion != 0.25 {
		t.Errorf("Completion = %v, want 0.25", sum.Completion)
	}

	if _, err := env.manager.Complete(context.Background(), s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("repeat Complete err = %v, want ErrSessionNotFound", err)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	units := testUnits(3, 0.5)
	env := newTestEnv(units)
	s, _ := env.manager.Create(context.Background(), 1, Config{})

	snap := env.manager.Get(s.ID)
	snap.Correct = 99
	snap.MistakePatterns["tampered"] = 1

	fresh := env.manager.Get(s.ID)
	if fresh.Correct != 0 {
		t.Errorf("Correct = %d, snapshot mutation leaked into live session", fresh.Correct)
	}
	if _, ok := fresh.MistakePatterns["tampered"]; ok {
		t.Error("map mutation leaked into live session")
	}
}

func TestSessionScore(t *testing.T) {
	tests := []struct {
		accuracy, difficulty, completion float64
		want                             float64
	}{
		{1.0, 0.5, 1.0, 90.0},
		{0.8, 0.43, 1.0, 74.6},
		{0, 0, 0, 0},
		{0.5, 0.5, 0.5, 50.0},
	}

	for _, tt := range tests {
		got := sessionScore(tt.accuracy, tt.difficulty, tt.completion)
		if got != tt.want {
			t.Errorf("sessionScore(%v, %v, %v) = %v, want %v", tt.accuracy, tt.difficulty, tt.completion, got, tt.want)
		}
	}
}

func TestBuildAchievements(t *testing.T) {
	tests := []struct {
		name string
		sum  Summary
		want []string
	}{
		{
			"marathon with perfect score",
			Summary{Completed: 20, Correct: 20, Accuracy: 1.0, AvgResponseMs: 8000, AvgDifficulty: 0.5},
			[]string{"Perfect Score!", "Marathon"},
		},
		{
			"fast on hard words",
			Summary{Completed: 5, Correct: 3, Accuracy: 0.6, AvgResponseMs: 3000, AvgDifficulty: 0.85},
			[]string{"Speed Demon", "Challenge Seeker"},
		},
		{
			"nothing earned",
			Summary{Completed: 5, Correct: 3, Accuracy: 0.6, AvgResponseMs: 8000, AvgDifficulty: 0.5},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildAchievements(&tt.sum)
			if len(got) != len(tt.want) {
				t.Fatalf("achievements = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("achievements[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRebalanceSignalBounds(t *testing.T) {
	// Target difficulty is clamped to [0.2, 0.8].
	s := &Session{
		Completed:       3,
		Correct:         3,
		DifficultyTrace: []float64{0.55, 0.55, 0.59},
	}
	sig := rebalanceSignal(s)
	if sig == nil {
		t.Fatal("no increase signal")
	}
	if !closeTo(sig.TargetDifficulty, 0.79) {
		t.Errorf("TargetDifficulty = %v, want 0.79", sig.TargetDifficulty)
	}

	s = &Session{
		Completed:       3,
		Correct:         0,
		Incorrect:       3,
		DifficultyTrace: []float64{0.61, 0.62, 0.63},
	}
	sig = rebalanceSignal(s)
	if sig == nil {
		t.Fatal("no decrease signal")
	}
	if !closeTo(sig.TargetDifficulty, 0.41) {
		t.Errorf("TargetDifficulty = %v, want 0.41", sig.TargetDifficulty)
	}
}

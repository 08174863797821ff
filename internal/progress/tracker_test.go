package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/store"
)

var trackerClock = func() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

// fakeItemRepo keeps items in memory and applies UpdateItem atomically,
// mirroring the transactional repository.
type fakeItemRepo struct {
	mu        sync.Mutex
	items     map[int64]*item.LearningItem
	mistakes  []store.MistakeRecordData
	updateErr error
}

func newFakeItemRepo(items ...*item.LearningItem) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[int64]*item.LearningItem)}
	for _, it := range items {
		repo.items[it.ID] = it
	}
	return repo
}

func (f *fakeItemRepo) FindCandidateItems(_ context.Context, _ int64, _ store.Scope, _ bool) ([]*item.LearningItem, error) {
	return nil, nil
}

func (f *fakeItemRepo) GetItem(_ context.Context, itemID int64) (*item.LearningItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[itemID]
	if !ok {
		return nil, errors.New("item not found")
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItemRepo) UpdateItem(_ context.Context, itemID int64, fn func(*item.LearningItem)) (*item.LearningItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	it, ok := f.items[itemID]
	if !ok {
		return nil, errors.New("item not found")
	}
	fn(it)
	it.ClampSRSLevel()
	cp := *it
	return &cp, nil
}

func (f *fakeItemRepo) CreateItem(_ context.Context, it *item.LearningItem) (*item.LearningItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[it.ID] = it
	return it, nil
}

func (f *fakeItemRepo) CreateMistakeRecord(_ context.Context, data store.MistakeRecordData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mistakes = append(f.mistakes, data)
	return nil
}

func (f *fakeItemRepo) DueItems(_ context.Context, _ int64, _ time.Time, _ int) ([]*item.LearningItem, error) {
	return nil, nil
}

func (f *fakeItemRepo) StatusCounts(_ context.Context, _ int64) (map[item.LearningStatus]int, error) {
	return nil, nil
}

func (f *fakeItemRepo) get(itemID int64) *item.LearningItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.items[itemID]
	return &cp
}

func newTestTracker(repo store.ItemRepo) *Tracker {
	return NewTracker(repo, logging.Nop()).WithClock(trackerClock)
}

func correctOutcome() Outcome {
	return Outcome{Correct: true, ResponseTimeMs: 3000}
}

func TestApplyOutcomeCorrect(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{ID: 1, UserID: 1, Word: "meadow"})
	tr := newTestTracker(repo)

	if err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, correctOutcome()); err != nil {
		t.Fatalf("ApplyOutcome: %v", err)
	}

	it := repo.get(1)
	if it.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", it.ReviewCount)
	}
	if it.CorrectStreak != 1 {
		t.Errorf("CorrectStreak = %d, want 1", it.CorrectStreak)
	}
	if it.SRSLevel != 0 {
		t.Errorf("SRSLevel = %d, want 0 before the streak threshold", it.SRSLevel)
	}
	if it.LastReviewedAt == nil || !it.LastReviewedAt.Equal(trackerClock()) {
		t.Errorf("LastReviewedAt = %v, want %v", it.LastReviewedAt, trackerClock())
	}
	if len(it.RecentResponseMs) != 1 || it.RecentResponseMs[0] != 3000 {
		t.Errorf("RecentResponseMs = %v, want [3000]", it.RecentResponseMs)
	}
	if len(repo.mistakes) != 0 {
		t.Errorf("mistake records = %d, want 0", len(repo.mistakes))
	}
}

func TestStreakOfThreeRaisesLevel(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{ID: 1, UserID: 1, Word: "meadow"})
	tr := newTestTracker(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := tr.ApplyOutcome(ctx, 1, 1, evaluate.ModalityTyping, correctOutcome()); err != nil {
			t.Fatalf("ApplyOutcome #%d: %v", i+1, err)
		}
	}

	it := repo.get(1)
	if it.SRSLevel != 1 {
		t.Fatalf("SRSLevel = %d, want 1 after a streak of 3", it.SRSLevel)
	}
	wantNext := trackerClock().AddDate(0, 0, 3)
	if it.NextReviewAt == nil || !it.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v (level 1 interval)", it.NextReviewAt, wantNext)
	}
}

func TestIncorrectResetsStreakAndDropsLevel(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{
		ID: 1, UserID: 1, Word: "meadow",
		ReviewCount: 6, CorrectStreak: 2, SRSLevel: 2,
	})
	tr := newTestTracker(repo)

	err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, Outcome{
		Correct:        false,
		ResponseTimeMs: 9000,
		Metadata:       map[string]string{"user_input": "medow"},
	})
	if err != nil {
		t.Fatalf("ApplyOutcome: %v", err)
	}

	it := repo.get(1)
	if it.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", it.CorrectStreak)
	}
	if it.SRSLevel != 1 {
		t.Errorf("SRSLevel = %d, want 1", it.SRSLevel)
	}
	if it.MistakeCount != 1 {
		t.Errorf("MistakeCount = %d, want 1", it.MistakeCount)
	}

	if len(repo.mistakes) != 1 {
		t.Fatalf("mistake records = %d, want 1", len(repo.mistakes))
	}
	rec := repo.mistakes[0]
	if rec.UserID != 1 || rec.ItemID != 1 || rec.Modality != "typing" {
		t.Errorf("mistake record = %+v", rec)
	}
	if rec.Metadata["user_input"] != "medow" {
		t.Errorf("mistake metadata = %v", rec.Metadata)
	}
}

func TestLevelNeverDropsBelowZero(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{ID: 1, UserID: 1, Word: "meadow"})
	tr := newTestTracker(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := tr.ApplyOutcome(ctx, 1, 1, evaluate.ModalityTyping, Outcome{Correct: false}); err != nil {
			t.Fatalf("ApplyOutcome #%d: %v", i+1, err)
		}
	}
	if got := repo.get(1).SRSLevel; got != 0 {
		t.Errorf("SRSLevel = %d, want 0", got)
	}
}

func TestLevelCapsAtMax(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{
		ID: 1, UserID: 1, Word: "meadow",
		ReviewCount: 30, CorrectStreak: 2, SRSLevel: item.MaxSRSLevel,
	})
	tr := newTestTracker(repo)

	// Streak hits 3 but the level is already maxed; no interval is set.
	if err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, correctOutcome()); err != nil {
		t.Fatalf("ApplyOutcome: %v", err)
	}
	it := repo.get(1)
	if it.SRSLevel != item.MaxSRSLevel {
		t.Errorf("SRSLevel = %d, want %d", it.SRSLevel, item.MaxSRSLevel)
	}
	if it.NextReviewAt != nil {
		t.Errorf("NextReviewAt = %v, want nil at max level", it.NextReviewAt)
	}
}

func TestMasteryScore(t *testing.T) {
	// 4 reviews, 1 mistake, streak 2: round(0.75*80 + 4) = 64.
	repo := newFakeItemRepo(&item.LearningItem{
		ID: 1, UserID: 1, Word: "meadow",
		ReviewCount: 3, MistakeCount: 1, CorrectStreak: 1,
	})
	tr := newTestTracker(repo)

	if err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, correctOutcome()); err != nil {
		t.Fatalf("ApplyOutcome: %v", err)
	}
	if got := repo.get(1).MasteryScore; got != 64 {
		t.Errorf("MasteryScore = %d, want 64", got)
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		it   *item.LearningItem
		out  Outcome
		want item.LearningStatus
	}{
		{
			"stays fresh below three reviews",
			&item.LearningItem{ID: 1, UserID: 1, ReviewCount: 1},
			Outcome{Correct: true},
			item.StatusNotStarted,
		},
		{
			"in progress after three reviews",
			&item.LearningItem{ID: 1, UserID: 1, ReviewCount: 2, CorrectStreak: 1},
			Outcome{Correct: true},
			item.StatusInProgress,
		},
		{
			"difficult when mistakes dominate",
			&item.LearningItem{ID: 1, UserID: 1, ReviewCount: 5, MistakeCount: 3},
			Outcome{Correct: false},
			item.StatusDifficult,
		},
		{
			"learned after a long streak",
			&item.LearningItem{ID: 1, UserID: 1, ReviewCount: 11, CorrectStreak: 4, SRSLevel: 3},
			Outcome{Correct: true},
			item.StatusLearned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepo(tt.it)
			tr := newTestTracker(repo)
			if err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, tt.out); err != nil {
				t.Fatalf("ApplyOutcome: %v", err)
			}
			if got := repo.get(1).Status; got != tt.want {
				t.Errorf("Status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackSkipTouchesOnlySkipState(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{
		ID: 1, UserID: 1, Word: "meadow",
		ReviewCount: 4, CorrectStreak: 2, SRSLevel: 1, MasteryScore: 58,
	})
	tr := newTestTracker(repo)

	if err := tr.TrackSkip(context.Background(), 1, 1, evaluate.ModalityFlashcard); err != nil {
		t.Fatalf("TrackSkip: %v", err)
	}

	it := repo.get(1)
	if it.SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", it.SkipCount)
	}
	if it.ReviewCount != 4 || it.CorrectStreak != 2 || it.SRSLevel != 1 || it.MasteryScore != 58 {
		t.Errorf("skip mutated progress state: %+v", it)
	}
	if it.LastReviewedAt == nil || !it.LastReviewedAt.Equal(trackerClock()) {
		t.Errorf("LastReviewedAt = %v, want %v", it.LastReviewedAt, trackerClock())
	}
	if len(repo.mistakes) != 0 {
		t.Errorf("mistake records = %d, want 0", len(repo.mistakes))
	}
}

func TestApplyOutcomePropagatesRepoError(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{ID: 1, UserID: 1})
	repo.updateErr = errors.New("db locked")
	tr := newTestTracker(repo)

	err := tr.ApplyOutcome(context.Background(), 1, 1, evaluate.ModalityTyping, correctOutcome())
	if !errors.Is(err, repo.updateErr) {
		t.Fatalf("err = %v, want wrapped repo error", err)
	}
}

func TestConcurrentOutcomesDoNotLoseUpdates(t *testing.T) {
	repo := newFakeItemRepo(&item.LearningItem{ID: 1, UserID: 1, Word: "meadow"})
	tr := newTestTracker(repo)
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := tr.ApplyOutcome(ctx, 1, 1, evaluate.ModalityTyping, correctOutcome()); err != nil {
				t.Errorf("ApplyOutcome: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := repo.get(1).ReviewCount; got != attempts {
		t.Errorf("ReviewCount = %d, want %d", got, attempts)
	}
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-1, 1},
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{5, 60},
		{9, 60},
	}

	for _, tt := range tests {
		if got := intervalDays(tt.level); got != tt.want {
			t.Errorf("intervalDays(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// Package progress applies attempt outcomes to an item's durable learning
// state: spaced-repetition level, streaks, mastery score, and status.
package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/store"
)

// ReviewIntervals is the expanding schedule in days, indexed by SRS level.
var ReviewIntervals = [item.MaxSRSLevel + 1]int{1, 3, 7, 14, 30, 60}

// streakToLevelUp is how many consecutive correct answers raise the SRS level.
const streakToLevelUp = 3

// Outcome carries what the tracker needs to persist for one attempt.
type Outcome struct {
	Correct        bool
	ResponseTimeMs int
	Metadata       map[string]string
}

// Tracker persists attempt outcomes. Updates for the same (user, item) pair
// are serialized through striped locks on top of the repository's atomic
// read-modify-write, so concurrent attempts never interleave partial state.
type Tracker struct {
	repo  store.ItemRepo
	locks lockTable
	now   func() time.Time
	log   logging.Sink
}

// NewTracker creates a Tracker over the given repository.
func NewTracker(repo store.ItemRepo, log logging.Sink) *Tracker {
	return &Tracker{repo: repo, now: time.Now, log: log}
}

// WithClock overrides the tracker's clock. Used in tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// ApplyOutcome records one judged attempt against the item's durable state.
// On failure the update must not be reported as successful upstream, so the
// error propagates.
func (t *Tracker) ApplyOutcome(ctx context.Context, userID, itemID int64, modality evaluate.Modality, out Outcome) error {
	unlock := t.locks.lock(userID, itemID)
	defer unlock()

	now := t.now()
	_, err := t.repo.UpdateItem(ctx, itemID, func(it *item.LearningItem) {
		it.ReviewCount++
		it.LastReviewedAt = &now
		if out.ResponseTimeMs > 0 {
			it.RecordResponseTime(out.ResponseTimeMs)
		}

		if out.Correct {
			it.CorrectStreak++
			if it.CorrectStreak%streakToLevelUp == 0 && it.SRSLevel < item.MaxSRSLevel {
				it.SRSLevel++
				next := now.AddDate(0, 0, intervalDays(it.SRSLevel))
				it.NextReviewAt = &next
			}
		} else {
			it.MistakeCount++
			it.CorrectStreak = 0
			it.SRSLevel--
		}
		it.ClampSRSLevel()

		it.Status = recomputeStatus(it)
		it.MasteryScore = recomputeMastery(it)
	})
	if err != nil {
		return fmt.Errorf("apply outcome for item %d: %w", itemID, err)
	}

	if !out.Correct {
		if err := t.repo.CreateMistakeRecord(ctx, store.MistakeRecordData{
			UserID:   userID,
			ItemID:   itemID,
			Modality: string(modality),
			Metadata: out.Metadata,
		}); err != nil {
			return fmt.Errorf("record mistake for item %d: %w", itemID, err)
		}
	}

	t.log.Log("applied attempt outcome", logging.LevelDebug, logging.Fields{
		"user_id": userID,
		"item_id": itemID,
		"correct": out.Correct,
	})
	return nil
}

// TrackSkip records a skipped item: skip counter and last-reviewed only.
// Streak, level, and mastery are untouched.
func (t *Tracker) TrackSkip(ctx context.Context, userID, itemID int64, modality evaluate.Modality) error {
	unlock := t.locks.lock(userID, itemID)
	defer unlock()

	now := t.now()
	_, err := t.repo.UpdateItem(ctx, itemID, func(it *item.LearningItem) {
		it.SkipCount++
		it.LastReviewedAt = &now
	})
	if err != nil {
		return fmt.Errorf("track skip for item %d: %w", itemID, err)
	}
	return nil
}

// intervalDays returns the review interval for a level, clamped to the table.
func intervalDays(level int) int {
	if level < 0 {
		level = 0
	}
	if level > item.MaxSRSLevel {
		level = item.MaxSRSLevel
	}
	return ReviewIntervals[level]
}

// recomputeStatus derives the learning status from the updated counters.
func recomputeStatus(it *item.LearningItem) item.LearningStatus {
	switch {
	case it.CorrectStreak >= 5 && it.ReviewCount >= 10:
		return item.StatusLearned
	case float64(it.MistakeCount) > float64(it.ReviewCount)*0.5:
		return item.StatusDifficult
	case it.ReviewCount >= 3:
		return item.StatusInProgress
	default:
		return item.StatusNotStarted
	}
}

// recomputeMastery derives the 0-100 mastery score from accuracy and streak.
func recomputeMastery(it *item.LearningItem) int {
	streakBonus := it.CorrectStreak * 2
	if streakBonus > 20 {
		streakBonus = 20
	}
	score := int(math.Round(it.Accuracy()*80 + float64(streakBonus)))
	if score > 100 {
		score = 100
	}
	return score
}

// lockTable serializes updates per (user, item) pair without blocking
// unrelated pairs.
type lockTable struct {
	mu    sync.Mutex
	locks map[[2]int64]*sync.Mutex
}

func (lt *lockTable) lock(userID, itemID int64) func() {
	key := [2]int64{userID, itemID}
	lt.mu.Lock()
	if lt.locks == nil {
		lt.locks = make(map[[2]int64]*sync.Mutex)
	}
	m, ok := lt.locks[key]
	if !ok {
		m = &sync.Mutex{}
		lt.locks[key] = m
	}
	lt.mu.Unlock()

	m.Lock()
	return m.Unlock
}

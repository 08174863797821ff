package selection

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/store"
)

var selClock = func() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

// mockItemRepo implements store.ItemRepo over a fixed candidate pool.
type mockItemRepo struct {
	pool    []*item.LearningItem
	findErr error

	gotUserID        int64
	gotScope         store.Scope
	gotExcludeRecent bool
}

func (m *mockItemRepo) FindCandidateItems(_ context.Context, userID int64, scope store.Scope, excludeRecent bool) ([]*item.LearningItem, error) {
	m.gotUserID = userID
	m.gotScope = scope
	m.gotExcludeRecent = excludeRecent
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.pool, nil
}

func (m *mockItemRepo) GetItem(_ context.Context, _ int64) (*item.LearningItem, error) {
	return nil, errors.New("not implemented")
}

func (m *mockItemRepo) UpdateItem(_ context.Context, _ int64, _ func(*item.LearningItem)) (*item.LearningItem, error) {
	return nil, errors.New("not implemented")
}

func (m *mockItemRepo) CreateItem(_ context.Context, _ *item.LearningItem) (*item.LearningItem, error) {
	return nil, errors.New("not implemented")
}

func (m *mockItemRepo) CreateMistakeRecord(_ context.Context, _ store.MistakeRecordData) error {
	return nil
}

func (m *mockItemRepo) DueItems(_ context.Context, _ int64, _ time.Time, _ int) ([]*item.LearningItem, error) {
	return nil, nil
}

func (m *mockItemRepo) StatusCounts(_ context.Context, _ int64) (map[item.LearningStatus]int, error) {
	return nil, nil
}

// hardPoolItem scores in the hard band: never reviewed, rare, abstract,
// with a long hedged definition.
func hardPoolItem(id int64) *item.LearningItem {
	return &item.LearningItem{
		ID:            id,
		UserID:        1,
		Word:          "perfunctory",
		Definition:    "carried out with a minimum of effort or reflection; often used of actions that may typically seem mechanical, sometimes suggesting various degrees of indifference or haste on the part of the actor",
		FrequencyRank: 10000,
		RelatedCount:  5,
		Status:        item.StatusNotStarted,
	}
}

// mediumPoolItem scores in the medium band: partial progress on a word of
// middling rarity.
func mediumPoolItem(id int64) *item.LearningItem {
	last := selClock().AddDate(0, 0, -10)
	return &item.LearningItem{
		ID:               id,
		UserID:           1,
		Word:             "meadow",
		Definition:       "a field of grass, used especially for hay or for grazing",
		HasImage:         true,
		FrequencyRank:    3000,
		RelatedCount:     1,
		ReviewCount:      5,
		MistakeCount:     1,
		CorrectStreak:    2,
		SRSLevel:         1,
		Status:           item.StatusInProgress,
		RecentResponseMs: []int{6000, 6500},
		LastReviewedAt:   &last,
	}
}

// easyPoolItem scores in the very-easy band, which folds into the easy pool.
func easyPoolItem(id int64) *item.LearningItem {
	last := selClock().AddDate(0, 0, -1)
	return &item.LearningItem{
		ID:               id,
		UserID:           1,
		Word:             "cat",
		Definition:       "a small pet",
		Phonetic:         "kat",
		HasImage:         true,
		FrequencyRank:    120,
		ReviewCount:      25,
		MistakeCount:     1,
		CorrectStreak:    12,
		SRSLevel:         5,
		Status:           item.StatusLearned,
		RecentResponseMs: []int{1200, 900},
		LastReviewedAt:   &last,
	}
}

func newTestSelector(repo store.ItemRepo) *Selector {
	model := difficulty.NewModel(difficulty.DefaultWeights()).WithClock(selClock)
	return NewSelector(repo, model, rand.New(rand.NewSource(42)), logging.Nop())
}

func mixedPool() []*item.LearningItem {
	var pool []*item.LearningItem
	id := int64(1)
	for i := 0; i < 4; i++ {
		pool = append(pool, hardPoolItem(id))
		id++
	}
	for i := 0; i < 10; i++ {
		pool = append(pool, mediumPoolItem(id))
		id++
	}
	for i := 0; i < 6; i++ {
		pool = append(pool, easyPoolItem(id))
		id++
	}
	return pool
}

func bucketCounts(units []Unit) map[difficulty.Classification]int {
	counts := make(map[difficulty.Classification]int)
	for _, u := range units {
		counts[foldBucket(u.Difficulty.Classification)]++
	}
	return counts
}

func TestSelectStratifiedCounts(t *testing.T) {
	repo := &mockItemRepo{pool: mixedPool()}
	sel := newTestSelector(repo)

	units, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  5,
		Distribution: DefaultDistribution(),
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(units) != 5 {
		t.Fatalf("selected %d units, want 5", len(units))
	}

	// Ceiling rounding on 5 items: 1 hard, 3 medium, remainder easy.
	counts := bucketCounts(units)
	if counts[difficulty.Hard] != 1 {
		t.Errorf("hard units = %d, want 1", counts[difficulty.Hard])
	}
	if counts[difficulty.Medium] != 3 {
		t.Errorf("medium units = %d, want 3", counts[difficulty.Medium])
	}
	if counts[difficulty.Easy] != 1 {
		t.Errorf("easy units = %d, want 1", counts[difficulty.Easy])
	}

	seen := make(map[int64]bool)
	for _, u := range units {
		if seen[u.ItemID] {
			t.Errorf("item %d selected twice", u.ItemID)
		}
		seen[u.ItemID] = true
	}
}

func TestSelectShortBucketIsNotBackfilled(t *testing.T) {
	// Pool has only medium items; hard and easy targets go unfilled.
	var pool []*item.LearningItem
	for id := int64(1); id <= 10; id++ {
		pool = append(pool, mediumPoolItem(id))
	}
	sel := newTestSelector(&mockItemRepo{pool: pool})

	units, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  5,
		Distribution: DefaultDistribution(),
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("selected %d units, want 3 (medium target only)", len(units))
	}
	for _, u := range units {
		if got := foldBucket(u.Difficulty.Classification); got != difficulty.Medium {
			t.Errorf("unit %d classified %q, want medium", u.ItemID, u.Difficulty.Classification)
		}
	}
}

func TestSelectAllTargetBucketsEmpty(t *testing.T) {
	// A hard-only distribution over an easy-only pool selects nothing.
	var pool []*item.LearningItem
	for id := int64(1); id <= 5; id++ {
		pool = append(pool, easyPoolItem(id))
	}
	sel := newTestSelector(&mockItemRepo{pool: pool})

	_, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  5,
		Distribution: Distribution{Hard: 1},
	})
	if !errors.Is(err, ErrNoEligibleItems) {
		t.Fatalf("err = %v, want ErrNoEligibleItems", err)
	}
}

func TestSelectEmptyPool(t *testing.T) {
	sel := newTestSelector(&mockItemRepo{})
	_, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  5,
		Distribution: DefaultDistribution(),
	})
	if !errors.Is(err, ErrNoEligibleItems) {
		t.Fatalf("err = %v, want ErrNoEligibleItems", err)
	}
}

func TestSelectInvalidDistribution(t *testing.T) {
	sel := newTestSelector(&mockItemRepo{pool: mixedPool()})
	tests := []Distribution{
		{Hard: -0.1, Medium: 0.6, Easy: 0.5},
		{Hard: 0.5, Medium: 0.5, Easy: 0.5},
		{},
	}

	for _, dist := range tests {
		_, err := sel.Select(context.Background(), Options{
			UserID:       1,
			TargetCount:  5,
			Distribution: dist,
		})
		if !errors.Is(err, ErrInvalidFilters) {
			t.Errorf("Distribution %+v: err = %v, want ErrInvalidFilters", dist, err)
		}
	}
}

func TestSelectPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("db locked")
	sel := newTestSelector(&mockItemRepo{findErr: repoErr})
	_, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  5,
		Distribution: DefaultDistribution(),
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped repo error", err)
	}
}

func TestSelectPassesQueryOptionsThrough(t *testing.T) {
	repo := &mockItemRepo{pool: mixedPool()}
	sel := newTestSelector(repo)

	scope := store.Scope{ListID: 7}
	_, err := sel.Select(context.Background(), Options{
		UserID:        42,
		TargetCount:   5,
		Scope:         scope,
		Distribution:  DefaultDistribution(),
		ExcludeRecent: true,
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if repo.gotUserID != 42 {
		t.Errorf("repo queried for user %d, want 42", repo.gotUserID)
	}
	if repo.gotScope.ListID != 7 {
		t.Errorf("repo queried list %d, want 7", repo.gotScope.ListID)
	}
	if !repo.gotExcludeRecent {
		t.Error("excludeRecent flag not passed through")
	}
}

func TestSelectFreezesUnitSnapshot(t *testing.T) {
	it := mediumPoolItem(9)
	sel := newTestSelector(&mockItemRepo{pool: []*item.LearningItem{it}})

	units, err := sel.Select(context.Background(), Options{
		UserID:       1,
		TargetCount:  1,
		Distribution: Distribution{Medium: 1},
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("selected %d units, want 1", len(units))
	}

	u := units[0]
	if u.ItemID != 9 || u.Word != it.Word || u.Definition != it.Definition {
		t.Errorf("unit content mismatch: %+v", u)
	}
	if u.Attempts != 5 || u.Successes != 4 {
		t.Errorf("Attempts/Successes = %d/%d, want 5/4", u.Attempts, u.Successes)
	}
}

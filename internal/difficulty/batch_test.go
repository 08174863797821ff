package difficulty

import (
	"context"
	"errors"
	"testing"

	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
)

// stubGetter serves items from a map and fails on everything else.
type stubGetter struct {
	items map[int64]*item.LearningItem
}

func (g *stubGetter) GetItem(_ context.Context, itemID int64) (*item.LearningItem, error) {
	it, ok := g.items[itemID]
	if !ok {
		return nil, errors.New("item not found")
	}
	return it, nil
}

func TestScoreBatch(t *testing.T) {
	m := newTestModel()
	getter := &stubGetter{items: map[int64]*item.LearningItem{
		1: freshItem(),
		2: strugglingItem(),
		3: masteredItem(),
	}}

	got := m.ScoreBatch(context.Background(), getter, []int64{1, 2, 3}, logging.Nop())
	if len(got) != 3 {
		t.Fatalf("scored %d items, want 3", len(got))
	}
	for id := range getter.items {
		single := m.Score(getter.items[id], 0)
		if got[id] != single {
			t.Errorf("item %d: batch score %+v differs from single score %+v", id, got[id], single)
		}
	}
}

func TestScoreBatchOmitsFailedLookups(t *testing.T) {
	m := newTestModel()
	getter := &stubGetter{items: map[int64]*item.LearningItem{
		1: freshItem(),
	}}

	got := m.ScoreBatch(context.Background(), getter, []int64{1, 99}, logging.Nop())
	if len(got) != 1 {
		t.Fatalf("scored %d items, want 1", len(got))
	}
	if _, ok := got[99]; ok {
		t.Error("failed lookup produced a score")
	}
	if _, ok := got[1]; !ok {
		t.Error("healthy item missing from batch result")
	}
}

func TestScoreBatchLargeInput(t *testing.T) {
	m := newTestModel()
	items := make(map[int64]*item.LearningItem, 100)
	ids := make([]int64, 0, 100)
	for i := int64(1); i <= 100; i++ {
		it := freshItem()
		it.ID = i
		items[i] = it
		ids = append(ids, i)
	}

	got := m.ScoreBatch(context.Background(), &stubGetter{items: items}, ids, logging.Nop())
	if len(got) != 100 {
		t.Fatalf("scored %d items, want 100", len(got))
	}
}

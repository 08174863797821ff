package difficulty

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
)

// batchConcurrency bounds how many item lookups run at once so batch scoring
// cannot overwhelm the content repository.
const batchConcurrency = 10

// ItemGetter is the slice of the content repository batch scoring needs.
type ItemGetter interface {
	GetItem(ctx context.Context, itemID int64) (*item.LearningItem, error)
}

// ScoreBatch scores many items concurrently. A failed lookup never aborts
// the batch: the item is logged and omitted from the result map.
func (m *Model) ScoreBatch(ctx context.Context, getter ItemGetter, itemIDs []int64, log logging.Sink) map[int64]Score {
	results := make(map[int64]Score, len(itemIDs))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, id := range itemIDs {
		g.Go(func() error {
			it, err := getter.GetItem(ctx, id)
			if err != nil {
				log.Log("batch difficulty scoring: item unavailable", logging.LevelWarn, logging.Fields{
					"item_id": id,
					"error":   err.Error(),
				})
				return nil
			}
			score := m.Score(it, 0)
			mu.Lock()
			results[id] = score
			mu.Unlock()
			return nil
		})
	}

	// Workers only ever return nil; errors are isolated per item.
	_ = g.Wait()
	return results
}

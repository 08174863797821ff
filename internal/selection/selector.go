// Package selection turns the user's candidate pool into a sized,
// difficulty-balanced batch of session-ready learning units.
package selection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/store"
)

var (
	// ErrNoEligibleItems means selection found nothing to practice.
	ErrNoEligibleItems = errors.New("no eligible items to practice")

	// ErrInvalidFilters means the caller supplied a malformed difficulty
	// distribution.
	ErrInvalidFilters = errors.New("invalid difficulty distribution")
)

// Distribution gives the target fraction of the session per difficulty band.
type Distribution struct {
	Hard   float64
	Medium float64
	Easy   float64
}

// DefaultDistribution is the standard 20/50/30 session mix.
func DefaultDistribution() Distribution {
	return Distribution{Hard: 0.2, Medium: 0.5, Easy: 0.3}
}

// Validate rejects negative fractions and totals that make no sense.
func (d Distribution) Validate() error {
	if d.Hard < 0 || d.Medium < 0 || d.Easy < 0 {
		return fmt.Errorf("%w: negative fraction", ErrInvalidFilters)
	}
	sum := d.Hard + d.Medium + d.Easy
	if sum <= 0 || sum > 1.001 {
		return fmt.Errorf("%w: fractions sum to %.2f", ErrInvalidFilters, sum)
	}
	return nil
}

// Options configure one selection run.
type Options struct {
	UserID        int64
	TargetCount   int
	Scope         store.Scope
	Distribution  Distribution
	ExcludeRecent bool
}

// Selector samples stratified batches of learning units.
type Selector struct {
	repo  store.ItemRepo
	model *difficulty.Model
	rng   *rand.Rand
	log   logging.Sink
}

// NewSelector creates a Selector. The rng is injected so sampling is
// reproducible in tests.
func NewSelector(repo store.ItemRepo, model *difficulty.Model, rng *rand.Rand, log logging.Sink) *Selector {
	return &Selector{repo: repo, model: model, rng: rng, log: log}
}

// Select fetches the candidate pool, scores and buckets it, and samples a
// stratified batch. Buckets that come up short are not backfilled from other
// buckets; an under-filled session is preferred over an unbalanced one.
func (s *Selector) Select(ctx context.Context, opts Options) ([]Unit, error) {
	if err := opts.Distribution.Validate(); err != nil {
		return nil, err
	}

	pool, err := s.repo.FindCandidateItems(ctx, opts.UserID, opts.Scope, opts.ExcludeRecent)
	if err != nil {
		return nil, fmt.Errorf("find candidate items: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoEligibleItems
	}

	// Score and bucket. very_hard folds into the hard pool, very_easy into
	// the easy pool, before sampling.
	buckets := map[difficulty.Classification][]scored{}
	for _, it := range pool {
		score := s.model.Score(it, 0)
		key := foldBucket(score.Classification)
		buckets[key] = append(buckets[key], scored{item: it, score: score})
	}

	hardTarget := int(math.Ceil(opts.Distribution.Hard * float64(opts.TargetCount)))
	mediumTarget := int(math.Ceil(opts.Distribution.Medium * float64(opts.TargetCount)))
	if hardTarget > opts.TargetCount {
		hardTarget = opts.TargetCount
	}
	if hardTarget+mediumTarget > opts.TargetCount {
		mediumTarget = opts.TargetCount - hardTarget
	}
	easyTarget := opts.TargetCount - hardTarget - mediumTarget

	units := make([]Unit, 0, opts.TargetCount)
	units = append(units, s.sample(buckets[difficulty.Hard], hardTarget)...)
	units = append(units, s.sample(buckets[difficulty.Medium], mediumTarget)...)
	units = append(units, s.sample(buckets[difficulty.Easy], easyTarget)...)

	if len(units) == 0 {
		return nil, ErrNoEligibleItems
	}

	s.log.Log("selected session batch", logging.LevelDebug, logging.Fields{
		"user_id":   opts.UserID,
		"requested": opts.TargetCount,
		"selected":  len(units),
		"pool":      len(pool),
	})
	return units, nil
}

type scored struct {
	item  *item.LearningItem
	score difficulty.Score
}

// sample draws up to n entries uniformly without replacement.
func (s *Selector) sample(bucket []scored, n int) []Unit {
	if n <= 0 || len(bucket) == 0 {
		return nil
	}
	shuffled := make([]scored, len(bucket))
	copy(shuffled, bucket)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	units := make([]Unit, 0, n)
	for _, sc := range shuffled[:n] {
		units = append(units, newUnit(sc.item, sc.score))
	}
	return units
}

func foldBucket(c difficulty.Classification) difficulty.Classification {
	switch c {
	case difficulty.VeryHard:
		return difficulty.Hard
	case difficulty.VeryEasy:
		return difficulty.Easy
	default:
		return c
	}
}

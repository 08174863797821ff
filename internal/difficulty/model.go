// Package difficulty scores how hard a specific item currently is for its
// learner. Scoring is deterministic: identical inputs always produce
// identical scores.
package difficulty

import (
	"time"

	"github.com/vocadrill/vocadrill/internal/item"
)

// Classification buckets a composite score into one of five bands.
type Classification string

const (
	VeryEasy Classification = "very_easy"
	Easy     Classification = "easy"
	Medium   Classification = "medium"
	Hard     Classification = "hard"
	VeryHard Classification = "very_hard"
)

// Score is the ephemeral result of scoring one item. Never persisted as-is.
type Score struct {
	Composite      float64
	Performance    float64
	Linguistic     float64
	Classification Classification
	Confidence     float64
}

// PerformanceWeights distribute the performance sub-score across its seven
// signals. They must sum to 1.
type PerformanceWeights struct {
	MistakeRate  float64
	Streak       float64
	SRSLevel     float64
	Status       float64
	ResponseTime float64
	SkipRate     float64
	Recency      float64
}

// LinguisticWeights distribute the linguistic sub-score across its six
// signals. They must sum to 1.
type LinguisticWeights struct {
	DefinitionLength float64
	Concreteness     float64
	Frequency        float64
	Phonetic         float64
	Ambiguity        float64
	Relational       float64
}

// Weights holds every tunable of the scoring model. Tests override
// individual entries; production code uses DefaultWeights.
type Weights struct {
	Performance float64
	Linguistic  float64

	Perf PerformanceWeights
	Ling LinguisticWeights
}

// DefaultWeights returns the production weight tables. Performance and
// Linguistic sum to 1, as do the entries within each signal table.
func DefaultWeights() Weights {
	return Weights{
		Performance: 0.6,
		Linguistic:  0.4,
		Perf: PerformanceWeights{
			MistakeRate:  0.25,
			Streak:       0.15,
			SRSLevel:     0.20,
			Status:       0.10,
			ResponseTime: 0.10,
			SkipRate:     0.05,
			Recency:      0.15,
		},
		Ling: LinguisticWeights{
			DefinitionLength: 0.20,
			Concreteness:     0.15,
			Frequency:        0.25,
			Phonetic:         0.15,
			Ambiguity:        0.15,
			Relational:       0.10,
		},
	}
}

// Model computes difficulty scores. It holds no mutable state; the clock is
// injectable so recency scoring is testable.
type Model struct {
	weights Weights
	now     func() time.Time
}

// NewModel creates a Model with the given weights.
func NewModel(w Weights) *Model {
	return &Model{weights: w, now: time.Now}
}

// WithClock overrides the model's clock. Used in tests.
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	return m
}

// Score computes the composite difficulty of one item. sessionItemCount is
// how often the item has appeared in sessions, feeding confidence.
func (m *Model) Score(it *item.LearningItem, sessionItemCount int) Score {
	perf := m.performanceScore(it)
	ling := m.linguisticScore(it)
	composite := clamp01(perf*m.weights.Performance + ling*m.weights.Linguistic)

	return Score{
		Composite:      composite,
		Performance:    perf,
		Linguistic:     ling,
		Classification: Classify(composite),
		Confidence:     ConfidenceFor(it.ReviewCount + sessionItemCount),
	}
}

// Classify maps a composite score onto the five fixed ascending thresholds.
func Classify(composite float64) Classification {
	switch {
	case composite < 0.2:
		return VeryEasy
	case composite < 0.4:
		return Easy
	case composite < 0.6:
		return Medium
	case composite < 0.8:
		return Hard
	default:
		return VeryHard
	}
}

// ConfidenceFor maps the amount of data backing a score (review count plus
// session appearances) onto a step function.
func ConfidenceFor(dataPoints int) float64 {
	switch {
	case dataPoints <= 0:
		return 0.1
	case dataPoints < 3:
		return 0.3
	case dataPoints < 10:
		return 0.6
	case dataPoints < 20:
		return 0.8
	default:
		return 1.0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package selection

import (
	"time"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/item"
)

// Unit is the frozen, session-scoped view of a learning item: the content
// payload, the difficulty score at selection time, and a snapshot of prior
// progress. Created once per session, never mutated afterward.
type Unit struct {
	ItemID int64

	Word         string
	Definition   string
	PartOfSpeech string
	Phonetic     string
	Context      string

	Difficulty difficulty.Score

	Attempts       int
	Successes      int
	LastReviewedAt *time.Time
	NextReviewAt   *time.Time
}

// newUnit freezes an item and its score into a Unit.
func newUnit(it *item.LearningItem, score difficulty.Score) Unit {
	return Unit{
		ItemID:         it.ID,
		Word:           it.Word,
		Definition:     it.Definition,
		PartOfSpeech:   it.PartOfSpeech,
		Phonetic:       it.Phonetic,
		Context:        it.Context,
		Difficulty:     score,
		Attempts:       it.ReviewCount,
		Successes:      it.ReviewCount - it.MistakeCount,
		LastReviewedAt: it.LastReviewedAt,
		NextReviewAt:   it.NextReviewAt,
	}
}

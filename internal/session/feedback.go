package session

import (
	"fmt"

	"github.com/vocadrill/vocadrill/internal/difficulty"
	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/selection"
)

// NextAction tells the caller what follows this attempt.
const (
	NextContinue = "continue"
	NextComplete = "complete"
)

// Feedback is the per-attempt response surfaced to the learner.
type Feedback struct {
	Correct       bool
	Skipped       bool
	Accuracy      float64
	Message       string
	CorrectAnswer string
	NextAction    string

	// Summary is set when this attempt completed the session.
	Summary *Summary
}

var encouragements = []string{
	"Nice one!",
	"Exactly right!",
	"You nailed it!",
	"Correct — keep it up!",
	"Well done!",
}

var correctiveMessages = []string{
	"Not quite — you'll get it next time.",
	"Close, but not this time.",
	"Don't worry, tricky one.",
}

const veryHardRemark = " That was a genuinely hard word."

// buildFeedback produces the learner-facing message for one attempt.
// Encouragement strings draw from the manager's seeded rng so tests are
// reproducible.
func (m *Manager) buildFeedback(s *Session, unit *selection.Unit, result evaluate.Result, skipped bool) *Feedback {
	fb := &Feedback{
		Correct:       result.Correct,
		Skipped:       skipped,
		Accuracy:      result.Accuracy,
		CorrectAnswer: unit.Definition,
		NextAction:    NextContinue,
	}
	if s.CurrentIndex >= len(s.Units) {
		fb.NextAction = NextComplete
	}

	switch {
	case skipped:
		fb.Message = fmt.Sprintf("Skipped. %q means: %s", unit.Word, unit.Definition)
	case result.Correct:
		fb.Message = m.pick(encouragements)
		if unit.Difficulty.Classification == difficulty.VeryHard {
			fb.Message += veryHardRemark
		}
	default:
		fb.Message = fmt.Sprintf("%s %q means: %s", m.pick(correctiveMessages), unit.Word, unit.Definition)
	}
	return fb
}

func (m *Manager) pick(options []string) string {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return options[m.rng.Intn(len(options))]
}

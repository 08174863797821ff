package difficulty

import (
	"strings"

	"github.com/vocadrill/vocadrill/internal/evaluate"
	"github.com/vocadrill/vocadrill/internal/item"
)

// ambiguityMarkers are hedge words whose presence in a definition suggests a
// vaguer, harder-to-pin-down meaning.
var ambiguityMarkers = []string{
	"often", "sometimes", "usually", "generally", "typically",
	"may", "can", "especially", "certain", "various",
}

const (
	frequencyRankWindow = 10000.0
	ambiguityCap        = 4.0
	relationalCap       = 5.0
)

// linguisticScore blends the six linguistic signals computed from the item's
// content payload.
func (m *Model) linguisticScore(it *item.LearningItem) float64 {
	w := m.weights.Ling
	score := definitionLengthSignal(it.Definition)*w.DefinitionLength +
		concretenessSignal(it.HasImage)*w.Concreteness +
		frequencySignal(it.FrequencyRank)*w.Frequency +
		phoneticIrregularity(it.Word, it.Phonetic)*w.Phonetic +
		ambiguitySignal(it.Definition)*w.Ambiguity +
		relationalSignal(it.RelatedCount)*w.Relational
	return clamp01(score)
}

// definitionLengthSignal steps through fixed length thresholds: longer
// definitions proxy for more complex meanings.
func definitionLengthSignal(definition string) float64 {
	n := len(definition)
	switch {
	case n < 40:
		return 0.2
	case n < 80:
		return 0.4
	case n < 120:
		return 0.6
	case n < 160:
		return 0.8
	default:
		return 1.0
	}
}

// concretenessSignal uses the presence of an illustrative image as a proxy
// for semantic concreteness. Concrete words are easier to anchor.
func concretenessSignal(hasImage bool) float64 {
	if hasImage {
		return 0.3
	}
	return 0.7
}

// frequencySignal normalizes the source-word frequency rank: rarer words
// (higher rank) are harder. An unknown rank yields a neutral signal.
func frequencySignal(rank int) float64 {
	if rank <= 0 {
		return neutralSignal
	}
	v := float64(rank) / frequencyRankWindow
	if v > 1 {
		return 1
	}
	return v
}

// phoneticIrregularity measures the gap between spelling and pronunciation.
// A word whose transcription diverges strongly from its spelling is harder
// to internalize.
func phoneticIrregularity(word, phonetic string) float64 {
	cleaned := strings.Trim(phonetic, "/[]ˈˌː")
	if cleaned == "" {
		return neutralSignal
	}
	return 1 - evaluate.Similarity(strings.ToLower(word), strings.ToLower(cleaned))
}

func ambiguitySignal(definition string) float64 {
	lower := strings.ToLower(definition)
	count := 0
	for _, marker := range ambiguityMarkers {
		if containsWord(lower, marker) {
			count++
		}
	}
	v := float64(count) / ambiguityCap
	if v > 1 {
		return 1
	}
	return v
}

func relationalSignal(relatedCount int) float64 {
	v := float64(relatedCount) / relationalCap
	if v > 1 {
		return 1
	}
	return v
}

// containsWord reports whether s contains w as a whole word.
func containsWord(s, w string) bool {
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == ';' || r == ':' || r == '(' || r == ')'
	}) {
		if field == w {
			return true
		}
	}
	return false
}

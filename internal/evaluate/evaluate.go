// Package evaluate judges the correctness of a single practice attempt.
// Each exercise modality has its own judging strategy; all of them are pure
// functions of the input.
package evaluate

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Modality identifies the exercise type of an attempt.
type Modality string

const (
	ModalityTyping        Modality = "typing"
	ModalityFlashcard     Modality = "flashcard"
	ModalityPronunciation Modality = "pronunciation"
	ModalityQuiz          Modality = "quiz"
)

const (
	typingThreshold        = 0.9
	pronunciationThreshold = 0.7
	quizFreeTextThreshold  = 0.8
)

// Input carries everything a judging strategy may need.
type Input struct {
	Modality Modality
	Answer   string
	Expected string

	// Accepted lists alternative answers for flashcards. Defaults to the
	// single expected answer when empty.
	Accepted []string

	// RecognizerConfidence and Transcript come from the caller's speech
	// recognizer for pronunciation attempts.
	RecognizerConfidence float64
	Transcript           string

	// MultipleChoice marks quiz attempts that require an exact match.
	MultipleChoice bool
}

// Result is the judged outcome of one attempt.
type Result struct {
	Correct  bool
	Accuracy float64
}

// Evaluate judges an attempt according to its modality. Unknown modalities
// fall back to exact match.
func Evaluate(in Input) Result {
	switch in.Modality {
	case ModalityTyping:
		return evaluateTyping(in)
	case ModalityFlashcard:
		return evaluateFlashcard(in)
	case ModalityPronunciation:
		return evaluatePronunciation(in)
	case ModalityQuiz:
		return evaluateQuiz(in)
	default:
		return exactMatch(in.Answer, in.Expected)
	}
}

func evaluateTyping(in Input) Result {
	if normalize(in.Answer) == normalize(in.Expected) {
		return Result{Correct: true, Accuracy: 1.0}
	}
	sim := Similarity(normalize(in.Answer), normalize(in.Expected))
	return Result{Correct: sim >= typingThreshold, Accuracy: sim}
}

func evaluateFlashcard(in Input) Result {
	accepted := in.Accepted
	if len(accepted) == 0 {
		accepted = []string{in.Expected}
	}
	for _, a := range accepted {
		if normalize(in.Answer) == normalize(a) {
			return Result{Correct: true, Accuracy: 1.0}
		}
	}
	return Result{Correct: false, Accuracy: 0}
}

func evaluatePronunciation(in Input) Result {
	sim := Similarity(normalize(in.Transcript), normalize(in.Expected))
	blended := (in.RecognizerConfidence + sim) / 2
	return Result{Correct: blended >= pronunciationThreshold, Accuracy: blended}
}

func evaluateQuiz(in Input) Result {
	if in.MultipleChoice {
		return exactMatch(in.Answer, in.Expected)
	}
	sim := Similarity(normalize(in.Answer), normalize(in.Expected))
	return Result{Correct: sim >= quizFreeTextThreshold, Accuracy: sim}
}

func exactMatch(answer, expected string) Result {
	if normalize(answer) == normalize(expected) {
		return Result{Correct: true, Accuracy: 1.0}
	}
	return Result{Correct: false, Accuracy: 0}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Similarity returns the normalized edit-distance similarity of two strings:
// (maxLen - distance) / maxLen. Two empty strings are identical (1.0); if
// exactly one is empty the similarity is 0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	dist := levenshtein.Distance(a, b, nil)
	if dist > maxLen {
		dist = maxLen
	}
	return float64(maxLen-dist) / float64(maxLen)
}

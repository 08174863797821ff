package evaluate

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"", "word", 0.0},
		{"word", "", 0.0},
		{"word", "word", 1.0},
		{"word", "ward", 0.75},
		{"kitten", "sitting", (7.0 - 3.0) / 7.0},
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if !almostEqual(got, tt.want) {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEvaluateTyping(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		expected    string
		wantCorrect bool
	}{
		{"exact", "ephemeral", "ephemeral", true},
		{"case and whitespace", "  Ephemeral ", "ephemeral", true},
		{"one typo in long word", "definately", "definitely", true},
		{"two typos in short word", "cta", "cat", false},
		{"wrong word", "eternal", "ephemeral", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(Input{Modality: ModalityTyping, Answer: tt.answer, Expected: tt.expected})
			if got.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v (accuracy %v)", got.Correct, tt.wantCorrect, got.Accuracy)
			}
		})
	}
}

func TestEvaluateTypingAccuracyIsSimilarity(t *testing.T) {
	got := Evaluate(Input{Modality: ModalityTyping, Answer: "ward", Expected: "word"})
	if !almostEqual(got.Accuracy, 0.75) {
		t.Errorf("Accuracy = %v, want 0.75", got.Accuracy)
	}
	if got.Correct {
		t.Error("Correct = true for similarity below threshold")
	}
}

func TestEvaluateFlashcard(t *testing.T) {
	tests := []struct {
		name        string
		in          Input
		wantCorrect bool
	}{
		{
			"expected answer",
			Input{Modality: ModalityFlashcard, Answer: "happy", Expected: "happy"},
			true,
		},
		{
			"accepted alternative",
			Input{Modality: ModalityFlashcard, Answer: "glad", Expected: "happy", Accepted: []string{"happy", "glad"}},
			true,
		},
		{
			"near miss is still wrong",
			Input{Modality: ModalityFlashcard, Answer: "happyy", Expected: "happy"},
			false,
		},
		{
			"accepted list replaces expected",
			Input{Modality: ModalityFlashcard, Answer: "happy", Expected: "happy", Accepted: []string{"glad"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if got.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
		})
	}
}

func TestEvaluatePronunciation(t *testing.T) {
	// Perfect transcript, high confidence.
	got := Evaluate(Input{
		Modality:             ModalityPronunciation,
		Expected:             "colonel",
		Transcript:           "colonel",
		RecognizerConfidence: 0.9,
	})
	if !got.Correct {
		t.Errorf("Correct = false with blended accuracy %v", got.Accuracy)
	}
	if !almostEqual(got.Accuracy, 0.95) {
		t.Errorf("Accuracy = %v, want 0.95", got.Accuracy)
	}

	// Garbage transcript drags the blend below the threshold even with a
	// confident recognizer.
	got = Evaluate(Input{
		Modality:             ModalityPronunciation,
		Expected:             "colonel",
		Transcript:           "banana",
		RecognizerConfidence: 0.9,
	})
	if got.Correct {
		t.Errorf("Correct = true with blended accuracy %v", got.Accuracy)
	}
}

func TestEvaluateQuiz(t *testing.T) {
	// Multiple choice requires an exact match.
	got := Evaluate(Input{Modality: ModalityQuiz, Answer: "b", Expected: "a", MultipleChoice: true})
	if got.Correct || got.Accuracy != 0 {
		t.Errorf("multiple choice mismatch: Correct = %v, Accuracy = %v", got.Correct, got.Accuracy)
	}

	got = Evaluate(Input{Modality: ModalityQuiz, Answer: "A ", Expected: "a", MultipleChoice: true})
	if !got.Correct {
		t.Error("multiple choice normalized match judged incorrect")
	}

	// Free text tolerates small typos at the 0.8 threshold.
	got = Evaluate(Input{Modality: ModalityQuiz, Answer: "vocabulery", Expected: "vocabulary"})
	if !got.Correct {
		t.Errorf("free text near match judged incorrect (accuracy %v)", got.Accuracy)
	}
}

func TestEvaluateUnknownModalityFallsBackToExactMatch(t *testing.T) {
	got := Evaluate(Input{Modality: "listening", Answer: "word", Expected: "word"})
	if !got.Correct {
		t.Error("exact match fallback judged incorrect")
	}
	got = Evaluate(Input{Modality: "listening", Answer: "wird", Expected: "word"})
	if got.Correct {
		t.Error("exact match fallback accepted a near miss")
	}
}

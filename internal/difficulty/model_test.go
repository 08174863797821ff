package difficulty

import (
	"math"
	"testing"
	"time"

	"github.com/vocadrill/vocadrill/internal/item"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newTestModel() *Model {
	return NewModel(DefaultWeights()).WithClock(testClock)
}

func daysAgo(d int) *time.Time {
	t := testClock().AddDate(0, 0, -d)
	return &t
}

// freshItem is a never-reviewed item with no linguistic red flags.
func freshItem() *item.LearningItem {
	return &item.LearningItem{
		ID:         1,
		UserID:     1,
		Word:       "apple",
		Definition: "a round fruit",
		Phonetic:   "apel",
		HasImage:   true,
		Status:     item.StatusNotStarted,
	}
}

// strugglingItem has a heavy mistake history on a rare, abstract word.
func strugglingItem() *item.LearningItem {
	return &item.LearningItem{
		ID:               2,
		UserID:           1,
		Word:             "sesquipedalian",
		Definition:       "a word that may often be characterized as long; sometimes used of speech that typically favors various long words over plain ones",
		FrequencyRank:    9800,
		RelatedCount:     5,
		ReviewCount:      10,
		MistakeCount:     8,
		CorrectStreak:    0,
		SRSLevel:         0,
		Status:           item.StatusDifficult,
		RecentResponseMs: []int{18000, 16000, 20000},
		LastReviewedAt:   daysAgo(29),
	}
}

// masteredItem has a long success history on a common, concrete word.
func masteredItem() *item.LearningItem {
	return &item.LearningItem{
		ID:               3,
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
		RecentResponseMs: []int{1200, 900, 1500},
		LastReviewedAt:   daysAgo(1),
	}
}

func TestScoreStaysInRange(t *testing.T) {
	m := newTestModel()
	for _, it := range []*item.LearningItem{freshItem(), strugglingItem(), masteredItem()} {
		s := m.Score(it, 0)
		for name, v := range map[string]float64{
			"Composite":   s.Composite,
			"Performance": s.Performance,
			"Linguistic":  s.Linguistic,
			"Confidence":  s.Confidence,
		} {
			if v < 0 || v > 1 {
				t.Errorf("item %d: %s = %v, want within [0, 1]", it.ID, name, v)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	m := newTestModel()
	it := strugglingItem()
	first := m.Score(it, 2)
	for i := 0; i < 5; i++ {
		again := m.Score(it, 2)
		if again != first {
			t.Fatalf("Score changed across calls: %+v vs %+v", again, first)
		}
	}
}

func TestScoreBlendsSubScores(t *testing.T) {
	m := newTestModel()
	it := strugglingItem()
	s := m.Score(it, 0)
	want := s.Performance*0.6 + s.Linguistic*0.4
	if math.Abs(s.Composite-want) > 1e-9 {
		t.Errorf("Composite = %v, want %v (perf %v, ling %v)", s.Composite, want, s.Performance, s.Linguistic)
	}
}

func TestScoreOrdersItemsByDifficulty(t *testing.T) {
	m := newTestModel()
	mastered := m.Score(masteredItem(), 0)
	fresh := m.Score(freshItem(), 0)
	struggling := m.Score(strugglingItem(), 0)

	if !(mastered.Composite < fresh.Composite) {
		t.Errorf("mastered (%v) should score below fresh (%v)", mastered.Composite, fresh.Composite)
	}
	if !(fresh.Composite < struggling.Composite) {
		t.Errorf("fresh (%v) should score below struggling (%v)", fresh.Composite, struggling.Composite)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		composite float64
		want      Classification
	}{
		{0.0, VeryEasy},
		{0.19, VeryEasy},
		{0.2, Easy},
		{0.39, Easy},
		{0.4, Medium},
		{0.59, Medium},
		{0.6, Hard},
		{0.79, Hard},
		{0.8, VeryHard},
		{1.0, VeryHard},
	}

	for _, tt := range tests {
		got := Classify(tt.composite)
		if got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.composite, got, tt.want)
		}
	}
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		dataPoints int
		want       float64
	}{
		{0, 0.1},
		{1, 0.3},
		{2, 0.3},
		{3, 0.6},
		{9, 0.6},
		{10, 0.8},
		{19, 0.8},
		{20, 1.0},
		{50, 1.0},
	}

	for _, tt := range tests {
		got := ConfidenceFor(tt.dataPoints)
		if got != tt.want {
			t.Errorf("ConfidenceFor(%d) = %v, want %v", tt.dataPoints, got, tt.want)
		}
	}
}

func TestConfidenceCountsSessionAppearances(t *testing.T) {
	m := newTestModel()
	it := freshItem()
	if got := m.Score(it, 0).Confidence; got != 0.1 {
		t.Errorf("Confidence with no data = %v, want 0.1", got)
	}
	if got := m.Score(it, 4).Confidence; got != 0.6 {
		t.Errorf("Confidence with 4 session appearances = %v, want 0.6", got)
	}
}

func TestResponseTimeSignal(t *testing.T) {
	tests := []struct {
		name  string
		times []int
		want  float64
	}{
		{"no data", nil, 0.5},
		{"instant", []int{1000, 1500}, 0.1},
		{"quick", []int{3000, 4000}, 0.3},
		{"hesitant", []int{7000, 8000}, 0.6},
		{"slow", []int{12000, 13000}, 0.8},
		{"stalled", []int{20000}, 1.0},
	}

	for _, tt := range tests {
		it := &item.LearningItem{RecentResponseMs: tt.times}
		got := responseTimeSignal(it)
		if got != tt.want {
			t.Errorf("%s: responseTimeSignal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecencyFrequencyNeverReviewed(t *testing.T) {
	m := newTestModel()
	it := freshItem()
	// Maximally stale recency blended with zero review frequency.
	if got := m.recencyFrequency(it); got != 1.0 {
		t.Errorf("recencyFrequency(fresh) = %v, want 1.0", got)
	}
}

func TestMistakeRateUsesLaplaceDenominator(t *testing.T) {
	it := &item.LearningItem{ReviewCount: 4, MistakeCount: 2}
	if got, want := mistakeRate(it), 0.4; got != want {
		t.Errorf("mistakeRate = %v, want %v", got, want)
	}
}

func TestDefinitionLengthSignal(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{10, 0.2},
		{39, 0.2},
		{40, 0.4},
		{79, 0.4},
		{80, 0.6},
		{119, 0.6},
		{120, 0.8},
		{159, 0.8},
		{160, 1.0},
		{400, 1.0},
	}

	for _, tt := range tests {
		def := make([]byte, tt.length)
		for i := range def {
			def[i] = 'a'
		}
		got := definitionLengthSignal(string(def))
		if got != tt.want {
			t.Errorf("definitionLengthSignal(len %d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestAmbiguitySignal(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		want       float64
	}{
		{"no markers", "a round fruit", 0},
		{"one marker", "often used as a greeting", 0.25},
		{"marker inside another word", "an offensive remark", 0},
		{"saturated", "may often be used, sometimes generally and typically so", 1.0},
	}

	for _, tt := range tests {
		got := ambiguitySignal(tt.definition)
		if got != tt.want {
			t.Errorf("%s: ambiguitySignal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPhoneticIrregularity(t *testing.T) {
	// Transcription matching the spelling reads as regular.
	regular := phoneticIrregularity("kat", "/kat/")
	if regular != 0 {
		t.Errorf("phoneticIrregularity(regular) = %v, want 0", regular)
	}

	// Missing transcription yields the neutral signal.
	if got := phoneticIrregularity("word", ""); got != neutralSignal {
		t.Errorf("phoneticIrregularity(no data) = %v, want %v", got, neutralSignal)
	}

	// Divergent transcription reads as irregular.
	irregular := phoneticIrregularity("colonel", "/ˈkɜːnəl/")
	if irregular <= regular {
		t.Errorf("phoneticIrregularity(irregular) = %v, want above %v", irregular, regular)
	}
}

func TestFrequencySignal(t *testing.T) {
	if got := frequencySignal(0); got != neutralSignal {
		t.Errorf("frequencySignal(0) = %v, want %v", got, neutralSignal)
	}
	if got := frequencySignal(2500); got != 0.25 {
		t.Errorf("frequencySignal(2500) = %v, want 0.25", got)
	}
	if got := frequencySignal(50000); got != 1.0 {
		t.Errorf("frequencySignal(50000) = %v, want 1.0", got)
	}
}

package item

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		reviews, mistakes int
		want              float64
	}{
		{0, 0, 0},
		{4, 0, 1.0},
		{4, 1, 0.75},
		{10, 5, 0.5},
	}

	for _, tt := range tests {
		it := &LearningItem{ReviewCount: tt.reviews, MistakeCount: tt.mistakes}
		if got := it.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%d reviews, %d mistakes) = %v, want %v", tt.reviews, tt.mistakes, got, tt.want)
		}
	}
}

func TestClampSRSLevel(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{-2, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{9, 5},
	}

	for _, tt := range tests {
		it := &LearningItem{SRSLevel: tt.level}
		it.ClampSRSLevel()
		if it.SRSLevel != tt.want {
			t.Errorf("ClampSRSLevel(%d) = %d, want %d", tt.level, it.SRSLevel, tt.want)
		}
	}
}

func TestRecordResponseTimeWindow(t *testing.T) {
	it := &LearningItem{}
	for ms := 1; ms <= MaxRecentResponses+3; ms++ {
		it.RecordResponseTime(ms)
	}
	if len(it.RecentResponseMs) != MaxRecentResponses {
		t.Fatalf("window length = %d, want %d", len(it.RecentResponseMs), MaxRecentResponses)
	}
	// Oldest entries fall off; newest stays last.
	if it.RecentResponseMs[0] != 4 {
		t.Errorf("window head = %d, want 4", it.RecentResponseMs[0])
	}
	if it.RecentResponseMs[len(it.RecentResponseMs)-1] != MaxRecentResponses+3 {
		t.Errorf("window tail = %d, want %d", it.RecentResponseMs[len(it.RecentResponseMs)-1], MaxRecentResponses+3)
	}
}

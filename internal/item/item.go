package item

import "time"

// LearningStatus describes where a learner stands with a single item.
type LearningStatus string

const (
	StatusNotStarted  LearningStatus = "not_started"
	StatusInProgress  LearningStatus = "in_progress"
	StatusNeedsReview LearningStatus = "needs_review"
	StatusDifficult   LearningStatus = "difficult"
	StatusLearned     LearningStatus = "learned"
)

// MaxSRSLevel is the highest spaced-repetition level.
const MaxSRSLevel = 5

// MaxRecentResponses caps the rolling window of recorded response times.
const MaxRecentResponses = 10

// LearningItem binds one user to one definition of one word, together with
// the durable spaced-repetition state accumulated across sessions.
type LearningItem struct {
	ID     int64
	UserID int64
	ListID int64

	// Content payload.
	Word         string
	Definition   string
	PartOfSpeech string
	Phonetic     string
	Context      string

	// Linguistic attributes used by difficulty scoring.
	HasImage      bool
	FrequencyRank int
	RelatedCount  int

	// Performance counters.
	ReviewCount   int
	MistakeCount  int
	CorrectStreak int
	SkipCount     int

	SRSLevel     int
	Status       LearningStatus
	MasteryScore int

	LastReviewedAt *time.Time
	NextReviewAt   *time.Time

	// RecentResponseMs holds the last few response times, newest last.
	RecentResponseMs []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Accuracy returns (reviews - mistakes) / reviews, or 0 with no reviews.
func (it *LearningItem) Accuracy() float64 {
	if it.ReviewCount == 0 {
		return 0
	}
	return float64(it.ReviewCount-it.MistakeCount) / float64(it.ReviewCount)
}

// ClampSRSLevel forces the spaced-repetition level back into [0, MaxSRSLevel].
// Applied on every durable update.
func (it *LearningItem) ClampSRSLevel() {
	if it.SRSLevel < 0 {
		it.SRSLevel = 0
	}
	if it.SRSLevel > MaxSRSLevel {
		it.SRSLevel = MaxSRSLevel
	}
}

// RecordResponseTime appends a response time to the rolling window.
func (it *LearningItem) RecordResponseTime(ms int) {
	it.RecentResponseMs = append(it.RecentResponseMs, ms)
	if len(it.RecentResponseMs) > MaxRecentResponses {
		it.RecentResponseMs = it.RecentResponseMs[len(it.RecentResponseMs)-MaxRecentResponses:]
	}
}

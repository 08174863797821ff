package session

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// Summary is the read-only report produced once, at completion or
// abandonment.
type Summary struct {
	SessionID   string
	SessionType Type
	Status      Status

	Completed int
	Correct   int
	Incorrect int
	Skipped   int

	Accuracy      float64
	Completion    float64
	AvgResponseMs int
	AvgDifficulty float64
	TotalTime     time.Duration
	Score         float64

	// WordsLearned and WordsImproved are heuristic estimates derived from
	// the correct count; callers may refine them against durable state.
	WordsLearned  int
	WordsImproved int

	DifficultyTrace []float64
	MistakePatterns map[string]int

	Recommendations []string
	Achievements    []string
}

const (
	wordsLearnedFraction  = 0.3
	wordsImprovedFraction = 0.6
)

// buildSummary derives the summary from final session state.
func buildSummary(s *Session) *Summary {
	accuracy := s.accuracy()
	avgDifficulty := s.averageDifficulty()
	completion := 0.0
	if len(s.Units) > 0 {
		completion = float64(s.Completed) / float64(len(s.Units))
	}

	sum := &Summary{
		SessionID:       s.ID,
		SessionType:     s.Config.Type,
		Status:          s.Status,
		Completed:       s.Completed,
		Correct:         s.Correct,
		Incorrect:       s.Incorrect,
		Skipped:         s.Skipped,
		Accuracy:        accuracy,
		Completion:      completion,
		AvgResponseMs:   s.averageResponseMs(),
		AvgDifficulty:   avgDifficulty,
		TotalTime:       s.Elapsed,
		Score:           sessionScore(accuracy, avgDifficulty, completion),
		WordsLearned:    int(math.Round(float64(s.Correct) * wordsLearnedFraction)),
		WordsImproved:   int(math.Round(float64(s.Correct) * wordsImprovedFraction)),
		DifficultyTrace: append([]float64(nil), s.DifficultyTrace...),
		MistakePatterns: lo.Assign(map[string]int{}, s.MistakePatterns),
	}
	sum.Recommendations = buildRecommendations(sum)
	sum.Achievements = buildAchievements(sum)
	return sum
}

// sessionScore blends accuracy, difficulty, and completion into one number.
// All three inputs are 0..1 fractions; the multipliers are kept exactly as
// the product defines them even though they mix scales.
func sessionScore(accuracy, avgDifficulty, completion float64) float64 {
	raw := accuracy*70 + avgDifficulty*20 + completion*10
	return math.Round(raw*100) / 100
}

func buildRecommendations(sum *Summary) []string {
	var recs []string
	switch {
	case sum.Accuracy >= 0.9 && sum.Completed > 0:
		recs = append(recs, "Excellent accuracy — raise the difficulty mix next session.")
	case sum.Accuracy < 0.5 && sum.Completed > 0:
		recs = append(recs, "Accuracy was low — schedule a remedial session with easier words.")
	default:
		recs = append(recs, "Keep a steady pace — this mix is working for you.")
	}

	if sum.MistakePatterns[PatternSlowResponse] > 0 {
		recs = append(recs, "Several answers came slowly — focus on recall speed.")
	}
	if sum.MistakePatterns[PatternHighDifficulty] > 0 {
		recs = append(recs, "Revisit the hardest words from this session.")
	}
	if sum.MistakePatterns[PatternSkipped] >= 3 {
		recs = append(recs, "You skipped a lot — try shorter sessions with familiar words.")
	}
	return recs
}

const (
	marathonItems  = 20
	fastResponseMs = 5000
	highDifficulty = 0.8
)

func buildAchievements(sum *Summary) []string {
	var tags []string
	if sum.Completed > 0 && sum.Accuracy == 1.0 {
		tags = append(tags, "Perfect Score!")
	}
	if sum.Completed >= marathonItems {
		tags = append(tags, "Marathon")
	}
	if sum.AvgResponseMs > 0 && sum.AvgResponseMs < fastResponseMs {
		tags = append(tags, "Speed Demon")
	}
	if sum.AvgDifficulty > highDifficulty {
		tags = append(tags, "Challenge Seeker")
	}
	return tags
}

package difficulty

import "github.com/vocadrill/vocadrill/internal/item"

// srsLevelDifficulty maps each spaced-repetition level onto a difficulty
// contribution. Level 0 is hardest, level 5 nearly mastered.
var srsLevelDifficulty = [item.MaxSRSLevel + 1]float64{1.0, 0.8, 0.6, 0.4, 0.25, 0.1}

// statusSeverity maps each learning status onto a difficulty contribution.
var statusSeverity = map[item.LearningStatus]float64{
	item.StatusNotStarted:  1.0,
	item.StatusDifficult:   0.9,
	item.StatusNeedsReview: 0.8,
	item.StatusInProgress:  0.5,
	item.StatusLearned:     0.2,
}

const (
	// recencyWindowDays normalizes days-since-last-review.
	recencyWindowDays = 30.0
	// frequencyWindow normalizes lifetime review counts.
	frequencyWindow = 20.0
	// neutralSignal stands in when a signal has no data yet.
	neutralSignal = 0.5
)

// performanceScore blends the seven performance signals.
func (m *Model) performanceScore(it *item.LearningItem) float64 {
	w := m.weights.Perf
	score := mistakeRate(it)*w.MistakeRate +
		invertedStreak(it)*w.Streak +
		srsSignal(it)*w.SRSLevel +
		statusSignal(it)*w.Status +
		responseTimeSignal(it)*w.ResponseTime +
		skipRate(it)*w.SkipRate +
		m.recencyFrequency(it)*w.Recency
	return clamp01(score)
}

func mistakeRate(it *item.LearningItem) float64 {
	rate := float64(it.MistakeCount) / float64(it.ReviewCount+1)
	if rate > 1 {
		rate = 1
	}
	return rate
}

func invertedStreak(it *item.LearningItem) float64 {
	v := 1 - float64(it.CorrectStreak)/10.0
	if v < 0 {
		return 0
	}
	return v
}

func srsSignal(it *item.LearningItem) float64 {
	lvl := it.SRSLevel
	if lvl < 0 {
		lvl = 0
	}
	if lvl > item.MaxSRSLevel {
		lvl = item.MaxSRSLevel
	}
	return srsLevelDifficulty[lvl]
}

func statusSignal(it *item.LearningItem) float64 {
	if sev, ok := statusSeverity[it.Status]; ok {
		return sev
	}
	return statusSeverity[item.StatusNotStarted]
}

// responseTimeSignal buckets the average recent response time through four
// fixed latency thresholds. No data yields a neutral signal.
func responseTimeSignal(it *item.LearningItem) float64 {
	if len(it.RecentResponseMs) == 0 {
		return neutralSignal
	}
	sum := 0
	for _, ms := range it.RecentResponseMs {
		sum += ms
	}
	avg := float64(sum) / float64(len(it.RecentResponseMs))
	switch {
	case avg < 2000:
		return 0.1
	case avg < 5000:
		return 0.3
	case avg < 10000:
		return 0.6
	case avg < 15000:
		return 0.8
	default:
		return 1.0
	}
}

func skipRate(it *item.LearningItem) float64 {
	rate := float64(it.SkipCount) / float64(it.ReviewCount+1)
	if rate > 1 {
		rate = 1
	}
	return rate
}

// recencyFrequency blends how long ago the item was reviewed with how often
// it has been reviewed overall. Never-reviewed items score maximally stale.
func (m *Model) recencyFrequency(it *item.LearningItem) float64 {
	recency := 1.0
	if it.LastReviewedAt != nil {
		days := m.now().Sub(*it.LastReviewedAt).Hours() / 24.0
		recency = days / recencyWindowDays
		if recency > 1 {
			recency = 1
		}
		if recency < 0 {
			recency = 0
		}
	}
	frequency := float64(it.ReviewCount) / frequencyWindow
	if frequency > 1 {
		frequency = 1
	}
	return (recency + (1 - frequency)) / 2
}

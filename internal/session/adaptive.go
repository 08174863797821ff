package session

// rebalanceEvery is how many completed items trigger an adaptive check.
const rebalanceEvery = 3

// Direction says which way the difficulty mix should move.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// AdaptiveSignal is an advisory suggestion to shift future item difficulty.
// The engine never re-selects units mid-session; applying the signal to the
// next session's selection is the caller's call.
type AdaptiveSignal struct {
	Direction        Direction
	TargetDifficulty float64
}

// rebalanceSignal inspects the last three completed difficulties and the
// running accuracy. Strong performance on easy material suggests raising
// difficulty; weak performance on hard material suggests lowering it.
func rebalanceSignal(s *Session) *AdaptiveSignal {
	trace := s.DifficultyTrace
	if len(trace) < rebalanceEvery {
		return nil
	}
	recent := trace[len(trace)-rebalanceEvery:]
	accuracy := s.accuracy()

	if accuracy > 0.9 && allBelow(recent, 0.6) {
		return &AdaptiveSignal{
			Direction:        DirectionIncrease,
			TargetDifficulty: min(0.8, maxOf(recent)+0.2),
		}
	}
	if accuracy < 0.4 && allAbove(recent, 0.6) {
		return &AdaptiveSignal{
			Direction:        DirectionDecrease,
			TargetDifficulty: max(0.2, minOf(recent)-0.2),
		}
	}
	return nil
}

func allBelow(vals []float64, limit float64) bool {
	for _, v := range vals {
		if v >= limit {
			return false
		}
	}
	return true
}

func allAbove(vals []float64, limit float64) bool {
	for _, v := range vals {
		if v <= limit {
			return false
		}
	}
	return true
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

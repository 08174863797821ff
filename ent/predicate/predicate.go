// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LearningItem is the predicate function for learningitem builders.
type LearningItem func(*sql.Selector)

// MistakeEvent is the predicate function for mistakeevent builders.
type MistakeEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

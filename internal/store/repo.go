package store

import (
	"context"
	"time"

	"github.com/vocadrill/vocadrill/internal/item"
)

// Scope restricts a candidate query to a word list and/or explicit item ids.
// The zero value means "everything the user is learning".
type Scope struct {
	ListID  int64
	ItemIDs []int64
}

// MistakeRecordData captures one failed attempt for review-list generation.
type MistakeRecordData struct {
	UserID   int64
	ItemID   int64
	Modality string
	Metadata map[string]string
}

// ItemRepo is the content/progress repository consumed by the engine.
type ItemRepo interface {
	// FindCandidateItems returns the user's items within scope. When
	// excludeRecent is set, items reviewed in the last 24 hours are
	// filtered out.
	FindCandidateItems(ctx context.Context, userID int64, scope Scope, excludeRecent bool) ([]*item.LearningItem, error)

	// GetItem returns a single item by id.
	GetItem(ctx context.Context, itemID int64) (*item.LearningItem, error)

	// UpdateItem applies fn to the item inside a transaction and persists
	// the result. The read-modify-write is atomic at the item level.
	UpdateItem(ctx context.Context, itemID int64, fn func(*item.LearningItem)) (*item.LearningItem, error)

	// CreateItem inserts a new learning item and returns it with its id.
	CreateItem(ctx context.Context, it *item.LearningItem) (*item.LearningItem, error)

	// CreateMistakeRecord appends a mistake record.
	CreateMistakeRecord(ctx context.Context, data MistakeRecordData) error

	// DueItems returns items whose next review is at or before now,
	// most overdue first.
	DueItems(ctx context.Context, userID int64, now time.Time, limit int) ([]*item.LearningItem, error)

	// StatusCounts tallies the user's items by learning status.
	StatusCounts(ctx context.Context, userID int64) (map[item.LearningStatus]int, error)
}

// AttemptEventData is the durable per-attempt checkpoint.
type AttemptEventData struct {
	SessionID string
	UserID    int64
	ItemID    int64
	Modality  string
	UserInput string
	Expected  string
	Correct   bool
	Accuracy  float64
	TimeMs    int
	Skipped   bool
}

// SessionEventData is the durable session lifecycle checkpoint.
type SessionEventData struct {
	SessionID     string
	UserID        int64
	Action        string // started, completed, abandoned
	SessionType   string
	ItemsPlanned  int
	Completed     int
	Correct       int
	Incorrect     int
	Skipped       int
	DurationSecs  int
	Score         float64
	CompletionPct float64
}

// SessionSummaryRecord is a read model over session events for history views.
type SessionSummaryRecord struct {
	SessionID     string
	Timestamp     time.Time
	Action        string
	SessionType   string
	ItemsPlanned  int
	Completed     int
	Correct       int
	Incorrect     int
	Skipped       int
	DurationSecs  int
	Score         float64
	CompletionPct float64
}

// EventRepo provides append access to the durable event log.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// SessionSummaries returns the most recent session events for a user,
	// newest first.
	SessionSummaries(ctx context.Context, userID int64, limit int) ([]SessionSummaryRecord, error)
}

package store

import (
	"context"
	"fmt"

	"github.com/vocadrill/vocadrill/ent"
	"github.com/vocadrill/vocadrill/ent/sessionevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetModality(data.Modality).
		SetUserInput(data.UserInput).
		SetExpected(data.Expected).
		SetCorrect(data.Correct).
		SetAccuracy(data.Accuracy).
		SetTimeMs(data.TimeMs).
		SetSkipped(data.Skipped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetSessionType(data.SessionType).
		SetItemsPlanned(data.ItemsPlanned).
		SetCompleted(data.Completed).
		SetCorrect(data.Correct).
		SetIncorrect(data.Incorrect).
		SetSkipped(data.Skipped).
		SetDurationSecs(data.DurationSecs).
		SetScore(data.Score).
		SetCompletionPct(data.CompletionPct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, userID int64, limit int) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserIDEQ(userID),
			sessionevent.ActionIn("completed", "abandoned"),
		).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(rows))
	for i, row := range rows {
		records[i] = SessionSummaryRecord{
			SessionID:     row.SessionID,
			Timestamp:     row.Timestamp,
			Action:        row.Action,
			SessionType:   row.SessionType,
			ItemsPlanned:  row.ItemsPlanned,
			Completed:     row.Completed,
			Correct:       row.Correct,
			Incorrect:     row.Incorrect,
			Skipped:       row.Skipped,
			DurationSecs:  row.DurationSecs,
			Score:         row.Score,
			CompletionPct: row.CompletionPct,
		}
	}
	return records, nil
}

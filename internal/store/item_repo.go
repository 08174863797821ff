package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vocadrill/vocadrill/ent"
	"github.com/vocadrill/vocadrill/ent/learningitem"
	"github.com/vocadrill/vocadrill/internal/item"
)

// recentReviewWindow is how far back "recently practiced" reaches.
const recentReviewWindow = 24 * time.Hour

type itemRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *itemRepo) FindCandidateItems(ctx context.Context, userID int64, scope Scope, excludeRecent bool) ([]*item.LearningItem, error) {
	q := r.client.LearningItem.Query().
		Where(learningitem.UserIDEQ(userID))

	if scope.ListID != 0 {
		q = q.Where(learningitem.ListIDEQ(scope.ListID))
	}
	if len(scope.ItemIDs) > 0 {
		ids := make([]int, len(scope.ItemIDs))
		for i, id := range scope.ItemIDs {
			ids[i] = int(id)
		}
		q = q.Where(learningitem.IDIn(ids...))
	}
	if excludeRecent {
		cutoff := time.Now().Add(-recentReviewWindow)
		q = q.Where(learningitem.Or(
			learningitem.LastReviewedAtIsNil(),
			learningitem.LastReviewedAtLT(cutoff),
		))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidate items: %w", err)
	}

	items := make([]*item.LearningItem, len(rows))
	for i, row := range rows {
		items[i] = fromEntItem(row)
	}
	return items, nil
}

func (r *itemRepo) GetItem(ctx context.Context, itemID int64) (*item.LearningItem, error) {
	row, err := r.client.LearningItem.Get(ctx, int(itemID))
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}
	return fromEntItem(row), nil
}

// UpdateItem runs the read-modify-write inside one transaction so the item
// row is never left partially updated.
func (r *itemRepo) UpdateItem(ctx context.Context, itemID int64, fn func(*item.LearningItem)) (*item.LearningItem, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin item update: %w", err)
	}

	row, err := tx.LearningItem.Get(ctx, int(itemID))
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}

	dom := fromEntItem(row)
	fn(dom)
	dom.ClampSRSLevel()

	upd := tx.LearningItem.UpdateOneID(row.ID).
		SetReviewCount(dom.ReviewCount).
		SetMistakeCount(dom.MistakeCount).
		SetCorrectStreak(dom.CorrectStreak).
		SetSkipCount(dom.SkipCount).
		SetSrsLevel(dom.SRSLevel).
		SetStatus(string(dom.Status)).
		SetMasteryScore(dom.MasteryScore).
		SetRecentResponseMs(dom.RecentResponseMs)

	if dom.LastReviewedAt != nil {
		upd = upd.SetLastReviewedAt(*dom.LastReviewedAt)
	}
	if dom.NextReviewAt != nil {
		upd = upd.SetNextReviewAt(*dom.NextReviewAt)
	}

	saved, err := upd.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("save item %d: %w", itemID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit item %d: %w", itemID, err)
	}
	return fromEntItem(saved), nil
}

func (r *itemRepo) CreateItem(ctx context.Context, it *item.LearningItem) (*item.LearningItem, error) {
	builder := r.client.LearningItem.Create().
		SetUserID(it.UserID).
		SetListID(it.ListID).
		SetWord(it.Word).
		SetDefinition(it.Definition).
		SetPartOfSpeech(it.PartOfSpeech).
		SetPhonetic(it.Phonetic).
		SetContext(it.Context).
		SetHasImage(it.HasImage).
		SetFrequencyRank(it.FrequencyRank).
		SetRelatedCount(it.RelatedCount).
		SetStatus(string(item.StatusNotStarted))

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create item %q: %w", it.Word, err)
	}
	return fromEntItem(row), nil
}

func (r *itemRepo) CreateMistakeRecord(ctx context.Context, data MistakeRecordData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MistakeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetModality(data.Modality)
	if len(data.Metadata) > 0 {
		builder = builder.SetMetadata(data.Metadata)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save mistake record: %w", err)
	}
	return nil
}

func (r *itemRepo) DueItems(ctx context.Context, userID int64, now time.Time, limit int) ([]*item.LearningItem, error) {
	q := r.client.LearningItem.Query().
		Where(
			learningitem.UserIDEQ(userID),
			learningitem.NextReviewAtNotNil(),
			learningitem.NextReviewAtLTE(now),
		).
		Order(ent.Asc(learningitem.FieldNextReviewAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due items: %w", err)
	}
	items := make([]*item.LearningItem, len(rows))
	for i, row := range rows {
		items[i] = fromEntItem(row)
	}
	return items, nil
}

func (r *itemRepo) StatusCounts(ctx context.Context, userID int64) (map[item.LearningStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.client.LearningItem.Query().
		Where(learningitem.UserIDEQ(userID)).
		GroupBy(learningitem.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count items by status: %w", err)
	}

	counts := make(map[item.LearningStatus]int, len(rows))
	for _, row := range rows {
		counts[item.LearningStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func fromEntItem(row *ent.LearningItem) *item.LearningItem {
	return &item.LearningItem{
		ID:               int64(row.ID),
		UserID:           row.UserID,
		ListID:           row.ListID,
		Word:             row.Word,
		Definition:       row.Definition,
		PartOfSpeech:     row.PartOfSpeech,
		Phonetic:         row.Phonetic,
		Context:          row.Context,
		HasImage:         row.HasImage,
		FrequencyRank:    row.FrequencyRank,
		RelatedCount:     row.RelatedCount,
		ReviewCount:      row.ReviewCount,
		MistakeCount:     row.MistakeCount,
		CorrectStreak:    row.CorrectStreak,
		SkipCount:        row.SkipCount,
		SRSLevel:         row.SrsLevel,
		Status:           item.LearningStatus(row.Status),
		MasteryScore:     row.MasteryScore,
		LastReviewedAt:   row.LastReviewedAt,
		NextReviewAt:     row.NextReviewAt,
		RecentResponseMs: row.RecentResponseMs,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

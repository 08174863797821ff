package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vocadrill/vocadrill/internal/item"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func seedItem(t *testing.T, repo ItemRepo, it *item.LearningItem) *item.LearningItem {
	t.Helper()
	saved, err := repo.CreateItem(context.Background(), it)
	require.NoError(t, err, "create item %q", it.Word)
	return saved
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestCreateAndGetItem(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	saved := seedItem(t, repo, &item.LearningItem{
		UserID:        1,
		ListID:        2,
		Word:          "meadow",
		Definition:    "a field of grass",
		PartOfSpeech:  "noun",
		Phonetic:      "ˈmɛdoʊ",
		HasImage:      true,
		FrequencyRank: 3000,
	})
	require.NotZero(t, saved.ID)
	require.Equal(t, item.StatusNotStarted, saved.Status)

	got, err := repo.GetItem(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "meadow", got.Word)
	require.Equal(t, int64(1), got.UserID)
	require.Equal(t, int64(2), got.ListID)
	require.True(t, got.HasImage)
	require.Nil(t, got.LastReviewedAt)
	require.Nil(t, got.NextReviewAt)
}

func TestUpdateItemAppliesMutation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	saved := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "meadow", Definition: "a field"})

	now := time.Now().UTC().Truncate(time.Second)
	updated, err := repo.UpdateItem(ctx, saved.ID, func(it *item.LearningItem) {
		it.ReviewCount = 3
		it.CorrectStreak = 3
		it.SRSLevel = 1
		it.Status = item.StatusInProgress
		it.MasteryScore = 70
		it.LastReviewedAt = &now
		it.RecordResponseTime(4200)
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated.ReviewCount)
	require.Equal(t, 1, updated.SRSLevel)
	require.Equal(t, 70, updated.MasteryScore)

	got, err := repo.GetItem(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, item.StatusInProgress, got.Status)
	require.Equal(t, []int{4200}, got.RecentResponseMs)
	require.NotNil(t, got.LastReviewedAt)
}

func TestUpdateItemClampsLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()

	saved := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "meadow"})
	updated, err := repo.UpdateItem(context.Background(), saved.ID, func(it *item.LearningItem) {
		it.SRSLevel = 99
	})
	require.NoError(t, err)
	require.Equal(t, item.MaxSRSLevel, updated.SRSLevel)
}

func TestUpdateItemUnknownID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ItemRepo().UpdateItem(context.Background(), 12345, func(*item.LearningItem) {})
	require.Error(t, err)
}

func TestFindCandidateItems(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	a := seedItem(t, repo, &item.LearningItem{UserID: 1, ListID: 1, Word: "meadow"})
	seedItem(t, repo, &item.LearningItem{UserID: 1, ListID: 2, Word: "harvest"})
	seedItem(t, repo, &item.LearningItem{UserID: 2, ListID: 1, Word: "lantern"})

	all, err := repo.FindCandidateItems(ctx, 1, Scope{}, false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	scoped, err := repo.FindCandidateItems(ctx, 1, Scope{ListID: 1}, false)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "meadow", scoped[0].Word)

	byID, err := repo.FindCandidateItems(ctx, 1, Scope{ItemIDs: []int64{a.ID}}, false)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	require.Equal(t, a.ID, byID[0].ID)
}

func TestFindCandidateItemsExcludesRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	fresh := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "meadow"})
	recent := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "harvest"})
	stale := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "lantern"})

	now := time.Now()
	twoDaysAgo := now.Add(-48 * time.Hour)
	_, err := repo.UpdateItem(ctx, recent.ID, func(it *item.LearningItem) {
		it.LastReviewedAt = &now
	})
	require.NoError(t, err)
	_, err = repo.UpdateItem(ctx, stale.ID, func(it *item.LearningItem) {
		it.LastReviewedAt = &twoDaysAgo
	})
	require.NoError(t, err)

	got, err := repo.FindCandidateItems(ctx, 1, Scope{}, true)
	require.NoError(t, err)

	ids := make(map[int64]bool)
	for _, it := range got {
		ids[it.ID] = true
	}
	require.True(t, ids[fresh.ID], "never-reviewed item should stay eligible")
	require.True(t, ids[stale.ID], "item reviewed two days ago should stay eligible")
	require.False(t, ids[recent.ID], "item reviewed just now should be filtered")
}

func TestDueItems(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	overdueFar := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "meadow"})
	overdueNear := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "harvest"})
	future := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: "lantern"})

	set := func(id int64, due time.Time) {
		t.Helper()
		_, err := repo.UpdateItem(ctx, id, func(it *item.LearningItem) {
			it.NextReviewAt = &due
		})
		require.NoError(t, err)
	}
	set(overdueFar.ID, now.Add(-72*time.Hour))
	set(overdueNear.ID, now.Add(-1*time.Hour))
	set(future.ID, now.Add(24*time.Hour))

	due, err := repo.DueItems(ctx, 1, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, overdueFar.ID, due[0].ID, "most overdue first")

	limited, err := repo.DueItems(ctx, 1, now, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestStatusCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	for i, word := range []string{"meadow", "harvest", "lantern"} {
		saved := seedItem(t, repo, &item.LearningItem{UserID: 1, Word: word})
		if i < 2 {
			_, err := repo.UpdateItem(ctx, saved.ID, func(it *item.LearningItem) {
				it.Status = item.StatusInProgress
			})
			require.NoError(t, err)
		}
	}

	counts, err := repo.StatusCounts(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, counts[item.StatusInProgress])
	require.Equal(t, 1, counts[item.StatusNotStarted])
}

func TestCreateMistakeRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.ItemRepo().CreateMistakeRecord(ctx, MistakeRecordData{
		UserID:   1,
		ItemID:   7,
		Modality: "typing",
		Metadata: map[string]string{"user_input": "medow"},
	})
	require.NoError(t, err)

	n, err := s.Client().MistakeEvent.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	appendEvent := func(sessionID, action string, score float64) {
		t.Helper()
		err := events.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   sessionID,
			UserID:      1,
			Action:      action,
			SessionType: "standard",
			Completed:   5,
			Correct:     4,
			Score:       score,
		})
		require.NoError(t, err)
	}

	appendEvent("s1", "started", 0)
	appendEvent("s1", "completed", 81.5)
	appendEvent("s2", "started", 0)
	appendEvent("s2", "abandoned", 20.0)

	// Only terminal events, newest first.
	sums, err := events.SessionSummaries(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	require.Equal(t, "s2", sums[0].SessionID)
	require.Equal(t, "abandoned", sums[0].Action)
	require.Equal(t, "s1", sums[1].SessionID)
	require.Equal(t, 81.5, sums[1].Score)

	limited, err := events.SessionSummaries(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "s2", limited[0].SessionID)
}

func TestAppendAttemptEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendAttemptEvent(ctx, AttemptEventData{
		SessionID: "s1",
		UserID:    1,
		ItemID:    7,
		Modality:  "typing",
		UserInput: "meadow",
		Expected:  "meadow",
		Correct:   true,
		Accuracy:  1.0,
		TimeMs:    3200,
	})
	require.NoError(t, err)

	n, err := s.Client().AttemptEvent.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSequenceIsMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	require.NoError(t, err)
	second, err := s.seq.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, first+1, second)
}

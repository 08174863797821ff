package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vocadrill/vocadrill/internal/item"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		counts, err := s.ItemRepo().StatusCounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("query status counts: %w", err)
		}

		fmt.Println("Items by status:")
		for _, st := range []item.LearningStatus{
			item.StatusNotStarted, item.StatusInProgress, item.StatusNeedsReview,
			item.StatusDifficult, item.StatusLearned,
		} {
			fmt.Printf("  %-13s %d\n", st, counts[st])
		}

		sessions, err := s.EventRepo().SessionSummaries(ctx, userID, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("\nNo finished sessions yet.")
			return nil
		}

		fmt.Printf("\n%-19s  %-9s  %-8s  %5s  %5s  %5s  %6s\n",
			"Finished", "Action", "Type", "Done", "OK", "Skip", "Score")
		fmt.Println(strings.Repeat("─", 70))
		for _, rec := range sessions {
			fmt.Printf("%-19s  %-9s  %-8s  %5d  %5d  %5d  %6.2f\n",
				rec.Timestamp.Format(time.DateTime),
				rec.Action, rec.SessionType,
				rec.Completed, rec.Correct, rec.Skipped, rec.Score)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int64("user", 1, "User id")
	statsCmd.Flags().Int("limit", 10, "Max sessions to list")
}

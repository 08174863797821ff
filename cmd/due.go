package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
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

		items, err := s.ItemRepo().DueItems(context.Background(), userID, time.Now(), limit)
		if err != nil {
			return fmt.Errorf("query due items: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		for _, it := range items {
			due := "—"
			if it.NextReviewAt != nil {
				due = it.NextReviewAt.Format(time.DateOnly)
			}
			fmt.Printf("%-20s  level %d  streak %d  due %s\n",
				it.Word, it.SRSLevel, it.CorrectStreak, due)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int64("user", 1, "User id")
	dueCmd.Flags().Int("limit", 25, "Max items to list")
}

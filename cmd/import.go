package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/vocadrill/vocadrill/internal/item"
	"github.com/vocadrill/vocadrill/internal/logging"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import vocabulary items from a spreadsheet",
	Long: `Import vocabulary items from an .xlsx spreadsheet. Expected columns:
word, definition, part of speech, phonetic, example sentence, frequency rank.
The first row is treated as a header and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		listID, _ := cmd.Flags().GetInt64("list")

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("open spreadsheet: %w", err)
		}
		defer f.Close()

		sheet := f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		log := newLogger()
		repo := s.ItemRepo()
		ctx := context.Background()
		imported, skipped := 0, 0

		for i, row := range rows {
			if i == 0 || len(row) < 2 || row[0] == "" {
				continue
			}
			it := &item.LearningItem{
				UserID:     userID,
				ListID:     listID,
				Word:       row[0],
				Definition: row[1],
			}
			if len(row) > 2 {
				it.PartOfSpeech = row[2]
			}
			if len(row) > 3 {
				it.Phonetic = row[3]
			}
			if len(row) > 4 {
				it.Context = row[4]
			}
			if len(row) > 5 {
				if rank, err := strconv.Atoi(row[5]); err == nil {
					it.FrequencyRank = rank
				}
			}

			if _, err := repo.CreateItem(ctx, it); err != nil {
				// Duplicate words are expected on re-import.
				log.Log("skipping row", logging.LevelWarn, logging.Fields{
					"row":   i + 1,
					"word":  row[0],
					"error": err.Error(),
				})
				skipped++
				continue
			}
			imported++
		}

		fmt.Printf("Imported %d items (%d skipped).\n", imported, skipped)
		return nil
	},
}

func init() {
	importCmd.Flags().Int64("user", 1, "User id to import for")
	importCmd.Flags().Int64("list", 0, "Word list id (0 = unlisted)")
}

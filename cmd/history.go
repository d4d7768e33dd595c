package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"screenwave/internal/history"
	"screenwave/internal/media"
	"screenwave/internal/ui"
)

var (
	flagHistoryList  bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Re-resolve a video from history",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagHistoryList, "list", "l", false, "Print history without the picker")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all history entries")
}

func historyRun(cmd *cobra.Command, args []string) error {
	store, err := history.OpenDefault()
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	items := history.FormatForDisplay(entries)
	if flagHistoryList {
		for i, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item, entries[i].URL)
		}
		return nil
	}

	idx, err := ui.Select("History", items)
	if errors.Is(err, ui.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	selected := entries[idx]
	debugf("re-resolving: %s (%s)", selected.Title, selected.URL)

	res, err := newResolver().Resolve(cmd.Context(), selected.URL)
	if err != nil {
		return fmt.Errorf("re-resolving %s: %w", selected.URL, err)
	}
	return handleResults(cmd.OutOrStdout(), []*media.VideoResult{res})
}

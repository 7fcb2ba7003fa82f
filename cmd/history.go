package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evgfitil/docclip/internal/config"
	"github.com/evgfitil/docclip/internal/history"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently copied snippets",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the history")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store := history.NewStore(config.StateDir())
	if historyClear {
		return store.Clear()
	}
	return writeHistory(cmd.OutOrStdout(), store, historyLimit)
}

// writeHistory prints entries newest first, one line each, with the first
// line of the copied text.
func writeHistory(w io.Writer, store *history.Store, limit int) error {
	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, history.ErrEmpty.Error())
		return err
	}

	for _, e := range entries {
		first, _, more := strings.Cut(e.Text, "\n")
		if more {
			first += " …"
		}
		where := e.Source
		if e.Selector != "" {
			where += " " + e.Selector
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), where, first); err != nil {
			return err
		}
	}
	return nil
}

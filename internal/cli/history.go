package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "history",
		Short: "List previously generated documents",
		IntFlags: []IntFlag{
			{Name: "limit", Usage: "show at most N runs (0 shows all)", Default: 10},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return runHistory(cmd, homeDir, limit)
		},
	}.Build()
	cmd.AddCommand(historyClearCmd)
	return cmd
}

var historyClearCmd = LeafCommand{
	Use:   "clear",
	Short: "Delete the generation history",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runHistoryClear(cmd, homeDir, confirm)
	},
}.Build()

func openHistory(homeDir string) (*history.SQLStore, error) {
	if _, err := os.Stat(config.HistoryPath(homeDir)); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	store := history.NewSQLStore()
	if err := store.Open(config.HistoryPath(homeDir)); err != nil {
		return nil, err
	}
	return store, nil
}

func runHistory(cmd *cobra.Command, homeDir string, limit int) error {
	store, err := openHistory(homeDir)
	if err != nil {
		return err
	}
	if store == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No documents generated yet.")
		return nil
	}
	defer store.Close()

	runs, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No documents generated yet.")
		return nil
	}

	w := cmd.OutOrStdout()
	for _, run := range runs {
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
			Silent(run.CreatedAt.Format("2006-01-02 15:04")),
			Primary(run.Output),
			Info(fmt.Sprintf("%s..%s", run.Start.Format("2006-01-02"), run.End.Format("2006-01-02"))),
			Silent(fmt.Sprintf("%d rows", run.RowCount)),
		)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	store, err := openHistory(homeDir)
	if err != nil {
		return err
	}
	if store == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No history to clear.")
		return nil
	}
	defer store.Close()

	ok, err := confirm("Delete the generation history?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	if err := store.Clear(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}

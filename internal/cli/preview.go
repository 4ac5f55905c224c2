package cli

import (
	"fmt"
	"os"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/document"
	"github.com/spf13/cobra"
)

var previewCmd = LeafCommand{
	Use:   "preview",
	Short: "Print the date table to stdout without writing a document",
	StrFlags: []StringFlag{
		{Name: "start", Shorthand: "s", Usage: "start date (YYYY-MM-DD or e.g. 'today', 'next monday')"},
		{Name: "end", Shorthand: "e", Usage: "end date (inclusive)"},
		{Name: "format", Shorthand: "f", Usage: "date format (strftime tokens)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "include-weekends", Usage: "keep weekend days despite the configured default exclusion"},
	},
	SliceFlags: []SliceFlag{
		{Name: "exclude-day", Usage: "weekday to exclude (repeatable)"},
		{Name: "exclude-range", Usage: "date range START..END to exclude (repeatable)"},
		{Name: "exclude", Usage: "recurrence to exclude (repeatable)"},
		{Name: "column", Shorthand: "c", Usage: "extra empty column to add to the table (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		var flags rangeFlags
		flags.Start, _ = cmd.Flags().GetString("start")
		flags.End, _ = cmd.Flags().GetString("end")
		flags.Format, _ = cmd.Flags().GetString("format")
		flags.IncludeWeekends, _ = cmd.Flags().GetBool("include-weekends")
		flags.ExcludeDays, _ = cmd.Flags().GetStringArray("exclude-day")
		flags.ExcludeRanges, _ = cmd.Flags().GetStringArray("exclude-range")
		flags.ExcludeRules, _ = cmd.Flags().GetStringArray("exclude")
		columns, _ := cmd.Flags().GetStringArray("column")

		return runPreview(cmd, homeDir, flags, columns)
	},
}.Build()

func runPreview(cmd *cobra.Command, homeDir string, flags rangeFlags, columns []string) error {
	if !flags.hasRange() {
		return fmt.Errorf("--start and --end are required")
	}

	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cfg, flags)
	if err != nil {
		return err
	}

	rng, err := resolveRange(flags)
	if err != nil {
		return err
	}

	dates, err := enumerateRange(rng, opts)
	if err != nil {
		return err
	}

	data := document.BuildTableData(dates, opts, columns)
	data.Title = rng.Label()

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderDateTable(data))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), footerStyle.Render(fmt.Sprintf("%d rows", len(dates))))
	return nil
}

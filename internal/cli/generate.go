package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
	"github.com/megabyte6/WordDateGenerator/internal/document"
	"github.com/megabyte6/WordDateGenerator/internal/hashutil"
	"github.com/megabyte6/WordDateGenerator/internal/history"
	"github.com/megabyte6/WordDateGenerator/internal/stringutil"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var generateCmd = LeafCommand{
	Use:   "generate",
	Short: "Generate a document containing a table of every date in a range",
	StrFlags: []StringFlag{
		{Name: "start", Shorthand: "s", Usage: "start date (YYYY-MM-DD or e.g. 'today', 'next monday')"},
		{Name: "end", Shorthand: "e", Usage: "end date (inclusive)"},
		{Name: "format", Shorthand: "f", Usage: "date format (strftime tokens, e.g. '%a. %b. %d')"},
		{Name: "template", Usage: "existing .docx to fill instead of creating a new document"},
		{Name: "output", Shorthand: "o", Usage: "output file path"},
	},
	IntFlags: []IntFlag{
		{Name: "table", Usage: "table number in the template (1-based)", Default: 1},
		{Name: "date-column", Usage: "column in the template table to fill (1-based)", Default: 1},
	},
	BoolFlags: []BoolFlag{
		{Name: "pdf", Usage: "write a PDF instead of a .docx"},
		{Name: "include-weekends", Usage: "keep weekend days despite the configured default exclusion"},
		{Name: "yes", Usage: "skip confirmation prompts"},
	},
	SliceFlags: []SliceFlag{
		{Name: "exclude-day", Usage: "weekday to exclude (repeatable)"},
		{Name: "exclude-range", Usage: "date range START..END to exclude (repeatable)"},
		{Name: "exclude", Usage: "recurrence to exclude, e.g. 'every friday' or an RRULE (repeatable)"},
		{Name: "column", Shorthand: "c", Usage: "extra empty column to add to the table (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		flags, err := readGenerateFlags(cmd)
		if err != nil {
			return err
		}

		pk := NewPromptKit()
		if flags.Yes {
			pk.Confirm = AlwaysYes()
		}

		interactive := isatty.IsTerminal(os.Stdout.Fd())
		return runGenerate(cmd, homeDir, flags, pk, interactive, time.Now)
	},
}.Build()

// generateFlags holds every generate flag after reading.
type generateFlags struct {
	rangeFlags
	Columns    []string
	Template   string
	Table      int
	DateColumn int
	Output     string
	PDF        bool
	Yes        bool
}

func readGenerateFlags(cmd *cobra.Command) (generateFlags, error) {
	var f generateFlags

	f.Start, _ = cmd.Flags().GetString("start")
	f.End, _ = cmd.Flags().GetString("end")
	f.Format, _ = cmd.Flags().GetString("format")
	f.Template, _ = cmd.Flags().GetString("template")
	f.Output, _ = cmd.Flags().GetString("output")
	f.Table, _ = cmd.Flags().GetInt("table")
	f.DateColumn, _ = cmd.Flags().GetInt("date-column")
	f.PDF, _ = cmd.Flags().GetBool("pdf")
	f.IncludeWeekends, _ = cmd.Flags().GetBool("include-weekends")
	f.Yes, _ = cmd.Flags().GetBool("yes")
	f.ExcludeDays, _ = cmd.Flags().GetStringArray("exclude-day")
	f.ExcludeRanges, _ = cmd.Flags().GetStringArray("exclude-range")
	f.ExcludeRules, _ = cmd.Flags().GetStringArray("exclude")
	f.Columns, _ = cmd.Flags().GetStringArray("column")

	if f.Template != "" && f.PDF {
		return generateFlags{}, errors.New("--template and --pdf cannot be combined")
	}
	if f.Table < 1 {
		return generateFlags{}, errors.New("--table must be 1 or greater")
	}
	if f.DateColumn < 1 {
		return generateFlags{}, errors.New("--date-column must be 1 or greater")
	}

	return f, nil
}

func runGenerate(
	cmd *cobra.Command,
	homeDir string,
	flags generateFlags,
	pk PromptKit,
	interactive bool,
	nowFn func() time.Time,
) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cfg, flags.rangeFlags)
	if err != nil {
		return err
	}

	var rng daterange.Range
	switch {
	case flags.hasRange():
		rng, err = resolveRange(flags.rangeFlags)
		if err != nil {
			return err
		}
	case interactive:
		picked, pickedOpts, cancelled, pickErr := runPicker(cmd.OutOrStdout(), opts, nowFn())
		if pickErr != nil {
			return pickErr
		}
		if cancelled {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		rng = picked
		opts = pickedOpts
	default:
		return errors.New("--start and --end are required")
	}

	dates, err := enumerateRange(rng, opts)
	if err != nil {
		return err
	}

	data := document.BuildTableData(dates, opts, flags.Columns)
	if flags.Template == "" {
		data.Title = rng.Label()
	}

	outPath, ok, err := resolveOutputPath(cfg, flags, rng, pk, interactive)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	switch {
	case flags.Template != "":
		err = document.FillTemplate(flags.Template, flags.Table-1, flags.DateColumn-1, data.Cells(), outPath)
	case flags.PDF:
		err = document.WritePDF(data, outPath)
	default:
		err = document.WriteDocx(data, outPath)
	}
	if err != nil {
		return err
	}

	recordRun(cmd, homeDir, rng, outPath, len(dates), opts.Format, nowFn())

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s covering %s (%s).\n",
		Primary(outPath),
		Primary(rng.Label()),
		Info(fmt.Sprintf("%d rows", len(dates))),
	)

	return nil
}

// resolveOutputPath determines where the document goes. Returns ok=false
// when the user cancels (declined overwrite confirmation).
func resolveOutputPath(
	cfg config.Config,
	flags generateFlags,
	rng daterange.Range,
	pk PromptKit,
	interactive bool,
) (string, bool, error) {
	path := flags.Output

	if path == "" && interactive {
		response, err := pk.Prompt(fmt.Sprintf("Output file [%s]", defaultFileName(rng, flags.PDF)))
		if err != nil {
			return "", false, err
		}
		path = response
	}

	if path == "" {
		path = defaultFileName(rng, flags.PDF)
	}
	if filepath.Ext(path) == "" {
		path += outputExt(flags.PDF)
	}
	if !filepath.IsAbs(path) && cfg.OutputDir != "" {
		path = filepath.Join(cfg.OutputDir, path)
	}

	if _, err := os.Stat(path); err == nil {
		ok, err := pk.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
	}

	return path, true, nil
}

func defaultFileName(rng daterange.Range, pdf bool) string {
	return stringutil.SlugifyOr(rng.Label(), "dates") + outputExt(pdf)
}

func outputExt(pdf bool) string {
	if pdf {
		return ".pdf"
	}
	return ".docx"
}

// recordRun journals the generation. Failures only warn: the document is
// already on disk at this point.
func recordRun(cmd *cobra.Command, homeDir string, rng daterange.Range, outPath string, rows int, format string, now time.Time) {
	warn := func(err error) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s could not record history: %v\n", Warning("Warning:"), err)
	}

	if err := os.MkdirAll(config.Dir(homeDir), 0755); err != nil {
		warn(err)
		return
	}

	store := history.NewSQLStore()
	if err := store.Open(config.HistoryPath(homeDir)); err != nil {
		warn(err)
		return
	}
	defer store.Close()

	if format == "" {
		format = daterange.DefaultFormat
	}
	err := store.Record(history.Run{
		ID:        hashutil.RunID(),
		Output:    outPath,
		Start:     rng.Start,
		End:       rng.End,
		RowCount:  rows,
		Format:    format,
		CreatedAt: now.UTC(),
	})
	if err != nil {
		warn(err)
	}
}

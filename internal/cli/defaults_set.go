package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
	"github.com/spf13/cobra"
)

var defaultsSetCmd = LeafCommand{
	Use:   "set",
	Short: "Change the persisted generation defaults",
	StrFlags: []StringFlag{
		{Name: "format", Usage: "default date format (strftime tokens)"},
		{Name: "output-dir", Usage: "default directory for generated documents"},
	},
	IntFlags: []IntFlag{
		{Name: "max-days", Usage: "range cap in days (0 disables the cap)", Default: -1},
	},
	SliceFlags: []SliceFlag{
		{Name: "exclude-day", Usage: "default weekday to exclude (repeatable, replaces the current set)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "no-excluded-days", Usage: "clear the default weekday exclusions"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		maxDays, _ := cmd.Flags().GetInt("max-days")
		excludeDays, _ := cmd.Flags().GetStringArray("exclude-day")
		noExcluded, _ := cmd.Flags().GetBool("no-excluded-days")

		if format == "" && outputDir == "" && maxDays < 0 && len(excludeDays) == 0 && !noExcluded {
			return runDefaultsSetInteractive(cmd, homeDir, NewPromptKit())
		}
		return runDefaultsSet(cmd, homeDir, format, outputDir, maxDays, excludeDays, noExcluded)
	},
}.Build()

func runDefaultsSet(cmd *cobra.Command, homeDir, format, outputDir string, maxDays int, excludeDays []string, noExcluded bool) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	if format != "" {
		if err := daterange.ValidFormat(format); err != nil {
			return err
		}
		cfg.DefaultFormat = format
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if maxDays >= 0 {
		cfg.MaxDays = maxDays
	}
	switch {
	case noExcluded:
		cfg.ExcludedWeekdays = []string{}
	case len(excludeDays) > 0:
		weekdays := make([]time.Weekday, 0, len(excludeDays))
		for _, name := range excludeDays {
			wd, err := daterange.ParseWeekday(name)
			if err != nil {
				return err
			}
			weekdays = append(weekdays, wd)
		}
		cfg.SetWeekdays(weekdays)
	}

	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Defaults updated.")
	return runDefaultsGet(cmd, homeDir, time.Now())
}

// allWeekdays lists selectable weekdays in week order for the interactive
// editor.
var allWeekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

func runDefaultsSetInteractive(cmd *cobra.Command, homeDir string, pk PromptKit) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	format, err := pk.Prompt(fmt.Sprintf("Date format [%s]", cfg.DefaultFormat))
	if err != nil {
		return err
	}
	if format != "" {
		if err := daterange.ValidFormat(format); err != nil {
			return err
		}
		cfg.DefaultFormat = format
	}

	options := make([]string, len(allWeekdays))
	for i, wd := range allWeekdays {
		options[i] = wd.String()
	}
	selected, err := pk.MultiSelect("Weekdays to exclude", options)
	if err != nil {
		return err
	}
	weekdays := make([]time.Weekday, len(selected))
	for i, idx := range selected {
		weekdays[i] = allWeekdays[idx]
	}
	cfg.SetWeekdays(weekdays)

	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Defaults updated.")
	return runDefaultsGet(cmd, homeDir, time.Now())
}

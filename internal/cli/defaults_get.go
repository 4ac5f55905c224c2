package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
	"github.com/spf13/cobra"
)

var defaultsGetCmd = LeafCommand{
	Use:   "get",
	Short: "Show the persisted generation defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runDefaultsGet(cmd, homeDir, time.Now())
	},
}.Build()

func runDefaultsGet(cmd *cobra.Command, homeDir string, now time.Time) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Format:            %s  (today: %s)\n",
		Primary(cfg.DefaultFormat),
		Info(daterange.FormatDate(now, cfg.DefaultFormat)),
	)

	excluded := "none"
	if len(cfg.ExcludedWeekdays) > 0 {
		excluded = strings.Join(cfg.ExcludedWeekdays, ", ")
	}
	_, _ = fmt.Fprintf(w, "Excluded weekdays: %s\n", Primary(excluded))

	maxDays := "unlimited"
	if cfg.MaxDays > 0 {
		maxDays = fmt.Sprintf("%d days", cfg.MaxDays)
	}
	_, _ = fmt.Fprintf(w, "Range cap:         %s\n", Primary(maxDays))

	if cfg.OutputDir != "" {
		_, _ = fmt.Fprintf(w, "Output directory:  %s\n", Primary(cfg.OutputDir))
	}

	return nil
}

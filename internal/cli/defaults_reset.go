package cli

import (
	"fmt"
	"os"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/spf13/cobra"
)

var defaultsResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the factory generation defaults",
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
		return runDefaultsReset(cmd, homeDir, confirm)
	},
}.Build()

func runDefaultsReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	ok, err := confirm("Restore factory defaults?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	if err := config.Reset(homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Defaults reset.")
	return nil
}

package cli

import "github.com/spf13/cobra"

var defaultsCmd = GroupCommand{
	Use:   "defaults",
	Short: "Manage persisted generation defaults",
	Subcommands: []*cobra.Command{
		defaultsGetCmd,
		defaultsSetCmd,
		defaultsResetCmd,
	},
}.Build()

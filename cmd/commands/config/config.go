package config

import (
	"sirivaram/sirictl/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sirictl configuration",
		Long: "View and modify persistent sirictl settings.\n\n" +
			"Configuration is stored at ~/.config/sirictl/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}

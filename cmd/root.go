package cmd

import (
	"os"

	"sirivaram/sirictl/cmd/commands/audit"
	"sirivaram/sirictl/cmd/commands/auth"
	"sirivaram/sirictl/cmd/commands/blogs"
	cfgcmd "sirivaram/sirictl/cmd/commands/config"
	"sirivaram/sirictl/cmd/commands/dashboard"
	"sirivaram/sirictl/cmd/commands/events"
	"sirivaram/sirictl/cmd/commands/footer"
	"sirivaram/sirictl/cmd/commands/gallery"
	"sirivaram/sirictl/cmd/commands/payments"
	"sirivaram/sirictl/cmd/commands/users"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "sirictl",
		Short: "Admin tool for the Sirivaram community platform",
		Long: `sirictl is the admin console for the Sirivaram community platform.
It manages member registrations, event payments, blog posts, events,
the photo gallery, and the site footer against the Sirivaram API.

List commands open an interactive browser on a terminal; pass
--output table or --output json for scripted use.

Quick start:
  sirictl auth login               # Log in with your admin account
  sirictl users list               # Review member registrations
  sirictl payments list            # Verify event payments
  sirictl dashboard                # At-a-glance counts across entities`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(users.NewCommand())
	cmd.AddCommand(payments.NewCommand())
	cmd.AddCommand(blogs.NewCommand())
	cmd.AddCommand(events.NewCommand())
	cmd.AddCommand(gallery.NewCommand())
	cmd.AddCommand(footer.NewCommand())
	cmd.AddCommand(dashboard.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}

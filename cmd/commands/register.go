package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
)

// Register adds the persistent flags and every subcommand to root.
func Register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("settings", "", "Settings file (default $PLUQQY_CV_SETTINGS or .pluqqy-cv/settings.yaml)")
	flags.String("cv", "", "CV document to open (JSON or YAML); the sample CV is used when empty")
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.BoolP("quiet", "q", false, "Suppress informational output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("yes", "y", false, "Skip confirmation prompts")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		noColor, _ := cmd.Flags().GetBool("no-color")
		yes, _ := cmd.Flags().GetBool("yes")
		cli.SetGlobalFlags(quiet, noColor, yes)
	}

	root.AddCommand(
		NewShowCommand(),
		NewExportCommand(),
		NewClipboardCommand(),
		NewRawCommand(),
		NewValidateCommand(),
		NewSampleCommand(),
	)
}

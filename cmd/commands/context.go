package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
)

// commandContext builds the context from the persistent --settings and --cv
// flags of the root command.
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	settings, _ := cmd.Flags().GetString("settings")
	cv, _ := cmd.Flags().GetString("cv")
	return cli.NewCommandContext(settings, cv, cli.Logger())
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

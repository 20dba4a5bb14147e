package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/utils"
)

var (
	exportToFile string
	exportFormat string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the CV as Markdown or plain text",
		Long: `Export the CV as Markdown or plain text.

By default the export is written to stdout. You can redirect it to a file
using shell redirection or the --file flag.

Examples:
  # Export the sample CV as Markdown
  pluqqy-cv export

  # Export a seed document as plain text
  pluqqy-cv export --cv cv.json --format plain

  # Export to file using flag
  pluqqy-cv export --cv cv.json --file cv.md`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := cli.ValidateExportFormat(exportFormat)
			return err
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().StringVar(&exportFormat, "format", "markdown", "Export format (markdown, plain)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	format, _ := cli.ValidateExportFormat(exportFormat)

	cv, err := ctx.LoadCV()
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	output, err := composer.Export(cv, format)
	if err != nil {
		return fmt.Errorf("failed to export CV: %w", err)
	}

	if exportToFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	if err := composer.WriteExport(output, exportToFile); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	cli.PrintSuccess("Exported CV to %s (%s)", exportToFile, cli.FormatBytes(int64(len(output))))

	words := utils.CountWords(output)
	if _, pages, status := utils.GetLengthStatus(words); status == "danger" {
		cli.PrintWarning("CV is longer than %d pages (%s)", pages, utils.FormatWordCount(words))
	} else {
		cli.PrintInfo("Length: %s", utils.FormatWordCount(words))
	}
	return nil
}

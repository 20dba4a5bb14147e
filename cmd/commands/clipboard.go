package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
)

var (
	clipboardFormat string
	clipboardRaw    string
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Copy the CV or a raw section to the clipboard",
		Long: `Copy the exported CV to the system clipboard, ready to be pasted
into a document or a job application form.

With --raw the raw notation of one section is copied instead.

Examples:
  # Copy the CV as Markdown
  pluqqy-cv clipboard --cv cv.yaml

  # Copy as plain text
  pluqqy-cv clipboard --format plain

  # Copy the raw notation of the skills section
  pluqqy-cv clipboard --raw skills`,
		Args:    cobra.NoArgs,
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	cmd.Flags().StringVar(&clipboardFormat, "format", "markdown", "Export format (markdown, plain)")
	cmd.Flags().StringVar(&clipboardRaw, "raw", "", "Copy the raw notation of a section instead")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cv, err := ctx.LoadCV()
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	var content, what string
	if clipboardRaw != "" {
		section, err := cli.ValidateSection(clipboardRaw)
		if err != nil {
			return err
		}
		content, err = rawtext.Encode(cv, section)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", section.Label(), err)
		}
		what = "Raw " + section.Label()
	} else {
		format, err := cli.ValidateExportFormat(clipboardFormat)
		if err != nil {
			return err
		}
		content, err = composer.Export(cv, format)
		if err != nil {
			return fmt.Errorf("failed to export CV: %w", err)
		}
		what = "CV"
	}

	if err := clipboardWrite(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("%s copied to clipboard", what)
	cli.PrintInfo("Preview: %s", cli.TruncateString(cli.FirstLine(content), 80))
	return nil
}

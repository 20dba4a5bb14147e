package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

var (
	showTemplate string
	showVariants map[string]string
	showWidth    int
	showControls bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [section]",
		Short: "Render the CV or one section in the terminal",
		Long: `Render the CV the way the editor preview shows it.

Without a section the whole document is rendered. The template and the
per-section variants default to the settings file and can be overridden
with flags. Structured output (-o json|yaml) prints the document itself.

Examples:
  # Show the sample CV
  pluqqy-cv show

  # Show a seed document with the classic template
  pluqqy-cv show --cv cv.yaml --template classic

  # Show only the skills as bars
  pluqqy-cv show skills --variant skills=bars

  # Output the document as YAML
  pluqqy-cv show -o yaml`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := outputFormat(cmd); err != nil {
				return err
			}
			return cli.ValidateTemplate(showTemplate)
		},
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showTemplate, "template", "t", "", "Template (modern, classic, minimal, professional)")
	cmd.Flags().StringToStringVar(&showVariants, "variant", nil, "Section variant, e.g. skills=bars")
	cmd.Flags().IntVarP(&showWidth, "width", "w", 0, "Wrap width (0 uses the settings)")
	cmd.Flags().BoolVar(&showControls, "controls", false, "Show remove markers and placeholders")

	return cmd
}

// showOptions merges settings with the command flags.
func showOptions(settings *models.Settings) (composer.Options, error) {
	opts := composer.Options{
		Width:    settings.UI.WrapWidth,
		Template: settings.UI.Template,
		Variants: make(map[models.SectionID]string),
		Controls: showControls,
	}
	if opts.Width == 0 {
		opts.Width = 80
	}
	if showWidth > 0 {
		opts.Width = showWidth
	}
	if showTemplate != "" {
		opts.Template = showTemplate
	}
	for _, s := range models.Sections() {
		if v := settings.UI.Variants.Variant(s); v != "" {
			opts.Variants[s] = v
		}
	}
	for name, id := range showVariants {
		s, err := cli.ValidateSection(name)
		if err != nil {
			return opts, err
		}
		if styles.Lookup(s, id).ID != id {
			return opts, fmt.Errorf("unknown %s variant: %s", s.HeadingKey(), id)
		}
		opts.Variants[s] = id
	}
	return opts, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	format, _ := outputFormat(cmd)

	cv, err := ctx.LoadCV()
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, cv)
	}

	opts, err := showOptions(ctx.LoadSettingsWithDefault())
	if err != nil {
		return err
	}

	var out string
	if len(args) == 1 {
		section, err := cli.ValidateSection(args[0])
		if err != nil {
			return err
		}
		out, err = composer.ComposeSection(cv, section, opts)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", section.Label(), err)
		}
	} else {
		out, err = composer.ComposeCV(cv, opts)
		if err != nil {
			return fmt.Errorf("failed to render CV: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

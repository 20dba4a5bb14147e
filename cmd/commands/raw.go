package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

var (
	rawEdit bool
)

// editRaw and confirmOverwrite are replaced in tests.
var (
	editRaw = func(pattern, content string) (string, error) {
		return cli.NewEditorLauncher().EditText(pattern, content)
	}
	confirmOverwrite = cli.ConfirmOverwrite
)

// NewRawCommand creates the raw command
func NewRawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw <section>",
		Short: "Print or edit the raw notation of a section",
		Long: `Print the raw notation of one section: indented JSON, exactly as the
editor's raw panel shows it.

With --edit the section is opened in $EDITOR. When the saved text decodes,
the section is replaced and the seed document given with --cv is rewritten.
Text that does not decode leaves the document untouched and the problems
are listed.

Sections: contactInfo, summary, experience, education, skills,
certificates, courses.

Examples:
  # Print the skills of the sample CV
  pluqqy-cv raw skills

  # Edit the experience section of a seed document
  pluqqy-cv raw experience --cv cv.json --edit`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cli.ValidateSection(args[0]); err != nil {
				return err
			}
			cv, _ := cmd.Flags().GetString("cv")
			if rawEdit && cv == "" {
				return fmt.Errorf("--edit needs a seed document (--cv)")
			}
			return nil
		},
		RunE: runRaw,
	}

	cmd.Flags().BoolVarP(&rawEdit, "edit", "e", false, "Edit the section in $EDITOR and write it back")

	return cmd
}

func runRaw(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	section, _ := cli.ValidateSection(args[0])

	cv, err := ctx.LoadCV()
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	st := store.New(cv, store.WithLogger(ctx.Logger))
	sync := rawtext.New(st, rawtext.WithLogger(ctx.Logger))

	if !rawEdit {
		fmt.Fprintln(cmd.OutOrStdout(), sync.Text(section))
		return nil
	}

	edited, err := editRaw("pluqqy-cv-"+section.HeadingKey()+"-*.json", sync.Text(section))
	if err != nil {
		return err
	}

	before := sync.Text(section)
	out := sync.Edit(section, edited)
	if out.Err != nil {
		printDecodeError(cmd, out.Err)
		return fmt.Errorf("%s not applied", section.Label())
	}
	after, err := rawtext.Encode(st.Snapshot(), section)
	if err != nil {
		return err
	}
	if after == before {
		cli.PrintInfo("%s unchanged", section.Label())
		return nil
	}

	ok, err := confirmOverwrite(ctx.CVPath)
	if err != nil {
		return fmt.Errorf("failed to confirm: %w", err)
	}
	if !ok {
		cli.PrintInfo("%s not saved", section.Label())
		return nil
	}

	if err := files.WriteCV(ctx.CVPath, st.Snapshot()); err != nil {
		return fmt.Errorf("failed to save CV: %w", err)
	}
	cli.PrintSuccess("Updated %s in %s", section.Label(), ctx.CVPath)
	return nil
}

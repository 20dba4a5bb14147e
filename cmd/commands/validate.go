package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
)

var (
	validateSection string
)

// ValidationResult is the structured output of the validate command.
type ValidationResult struct {
	Target string               `json:"target" yaml:"target"`
	Valid  bool                 `json:"valid" yaml:"valid"`
	Errors []rawtext.FieldError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a CV, a raw section or the settings file",
		Long: `Check that a document can be loaded by the editor.

With a file argument the CV document (JSON or YAML) is loaded. With
--section the file (or stdin when the file is "-") is checked as the raw
notation of that section. Without arguments the settings file is checked.

Examples:
  # Check a seed document
  pluqqy-cv validate cv.yaml

  # Check raw notation for the skills section
  pluqqy-cv validate skills.json --section skills

  # Check raw notation from stdin, as JSON
  pluqqy-cv raw skills | pluqqy-cv validate - --section skills -o json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := outputFormat(cmd); err != nil {
				return err
			}
			if validateSection != "" && len(args) == 0 {
				return fmt.Errorf("--section needs a file argument or - for stdin")
			}
			return nil
		},
		RunE: runValidate,
	}

	cmd.Flags().StringVarP(&validateSection, "section", "s", "", "Validate the file as raw notation of this section")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	format, _ := outputFormat(cmd)

	var result ValidationResult
	switch {
	case validateSection != "":
		section, err := cli.ValidateSection(validateSection)
		if err != nil {
			return err
		}
		text, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		result = check(args[0], rawtext.Validate(section, text))
	case len(args) == 1:
		if err := cli.ValidateFilePath(args[0]); err != nil {
			return err
		}
		_, err := files.ReadCV(args[0])
		result = check(args[0], err)
	default:
		_, err := ctx.LoadSettings()
		result = check(ctx.SettingsPath, err)
	}

	if format != string(cli.FormatText) {
		if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	} else if result.Valid {
		cli.PrintSuccess("%s is valid", result.Target)
	} else {
		printFieldErrors(cmd.OutOrStdout(), result.Errors)
	}

	if !result.Valid {
		return fmt.Errorf("%s is not valid", result.Target)
	}
	return nil
}

func check(target string, err error) ValidationResult {
	if err == nil {
		return ValidationResult{Target: target, Valid: true}
	}
	var de *rawtext.DecodeError
	if errors.As(err, &de) {
		return ValidationResult{Target: target, Errors: de.Errors}
	}
	return ValidationResult{Target: target, Errors: []rawtext.FieldError{{Field: "(root)", Message: err.Error()}}}
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func printFieldErrors(w io.Writer, errs []rawtext.FieldError) {
	tf := cli.NewTableFormatter(w)
	tf.Header("FIELD", "PROBLEM")
	for _, fe := range errs {
		tf.Row(fe.Field, fe.Message)
	}
	tf.Flush()
}

func printDecodeError(cmd *cobra.Command, err error) {
	var de *rawtext.DecodeError
	if errors.As(err, &de) {
		cli.PrintError("%s does not decode", de.Section.Label())
	}
	printFieldErrors(cmd.ErrOrStderr(), check("", err).Errors)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/examples"
	"github.com/pluqqy/pluqqy-cv/pkg/files"
)

// NewSampleCommand creates the sample command
func NewSampleCommand() *cobra.Command {
	var listOnly bool
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "sample [category]",
		Short: "Write example CVs to use as seed documents",
		Long: `Write example CVs that can be opened with --cv.

Categories:
  engineer     - Software and platform engineers (default)
  designer     - Product designer with custom headings
  graduate     - Education-first CV without work experience
  all          - Every example

The files are written to the .pluqqy-cv directory unless --dir is given.`,
		Example: `  # Write the engineer examples
  pluqqy-cv sample

  # List available examples without writing them
  pluqqy-cv sample --list

  # Write every example into the current directory
  pluqqy-cv sample all --dir .

  # Force overwrite existing examples
  pluqqy-cv sample designer --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) > 0 {
				category = args[0]
			} else if listOnly {
				category = "all"
			} else {
				category = "engineer"
			}

			validCategories := append(examples.Categories(), "all")
			if !contains(validCategories, category) {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(validCategories, ", "))
			}

			if listOnly {
				return listSamples(cmd, category)
			}
			return installSamples(cmd, category, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without writing them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing example files")
	cmd.Flags().StringVarP(&dir, "dir", "d", files.ConfigDir, "Directory to write the examples to")

	return cmd
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func listSamples(cmd *cobra.Command, category string) error {
	out := cmd.OutOrStdout()
	if category == "all" {
		fmt.Fprintf(out, "Available examples (all categories):\n\n")
	} else {
		fmt.Fprintf(out, "Available examples in category '%s':\n\n", category)
	}

	for _, ex := range examples.GetExamples(category) {
		fmt.Fprintf(out, "📄 [%s] %s (%s)\n", ex.Category, ex.Name, ex.Filename)
		fmt.Fprintf(out, "   %s\n\n", ex.Description)
	}

	fmt.Fprintf(out, "To write these examples, run: pluqqy-cv sample %s\n", category)
	return nil
}

func installSamples(cmd *cobra.Command, category, dir string, force bool) error {
	out := cmd.OutOrStdout()
	written, skipped := 0, 0

	for _, ex := range examples.GetExamples(category) {
		path, err := examples.Install(ex, dir, force)
		if err != nil {
			if !force && strings.Contains(err.Error(), "already exists") {
				skipped++
				fmt.Fprintf(out, "   ⚠️  Skipped %s (already exists, use --force to overwrite)\n", path)
				continue
			}
			return fmt.Errorf("failed to write example %s: %w", ex.Name, err)
		}
		written++
		fmt.Fprintf(out, "   ✓ Wrote %s\n", path)
	}

	fmt.Fprintf(out, "\n%d written, %d skipped\n", written, skipped)
	if written > 0 {
		cli.PrintInfo("Open one with: pluqqy-cv --cv <file>")
	}
	return nil
}

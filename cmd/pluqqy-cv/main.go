package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-cv/cmd/commands"
	"github.com/pluqqy/pluqqy-cv/internal/cli"
	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
	"github.com/pluqqy/pluqqy-cv/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pluqqy-cv",
		Short: "Terminal CV editor with live preview and raw notation",
		Long: `Pluqqy CV is a terminal editor for CVs. Every field is edited as rich
text, every section can also be edited as raw JSON notation, and the
rendered CV is previewed live next to the editor.`,
		Args: cobra.NoArgs,
		RunE: runEditor,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the .pluqqy-cv settings directory",
		Long:  `Creates the .pluqqy-cv folder with a default settings file in the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}
			path := files.SettingsPath("")
			if _, err := os.Stat(path); err == nil {
				cli.PrintInfo("Settings already exist at %s", path)
				return nil
			}
			if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
				return err
			}
			cli.PrintSuccess("Created %s", path)
			cli.PrintInfo("Run 'pluqqy-cv sample' to write example CVs, then 'pluqqy-cv --cv <file>'.")
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Pluqqy CV",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Pluqqy CV version %s\n", version)
		},
	}

	commands.Register(rootCmd)
	rootCmd.AddCommand(initCmd, versionCmd)
	return rootCmd
}

func runEditor(cmd *cobra.Command, args []string) error {
	settingsFlag, _ := cmd.Flags().GetString("settings")
	cvFlag, _ := cmd.Flags().GetString("cv")
	ctx := cli.NewCommandContext(settingsFlag, cvFlag, cli.Logger())

	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	cv, err := ctx.LoadCV()
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	st := store.New(cv, store.WithLogger(ctx.Logger))
	app := tui.NewApp(st, settings, ctx.Logger)
	defer app.Close()

	ctx.Logger.Info("editor started", "cv", ctx.CVPath, "settings", ctx.SettingsPath)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	logger, closeLog, err := cli.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cli.SetLogger(logger)

	code := 0
	if err := newRootCommand().Execute(); err != nil {
		code = 1
	}
	closeLog()
	os.Exit(code)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MercMayhem/PngMe/pkg/commands"
	"github.com/MercMayhem/PngMe/pkg/config"
	"github.com/MercMayhem/PngMe/pkg/di"
)

var (
	container *di.Container

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// cliState carries global flag values and the runner built from them
type cliState struct {
	configPath string
	placement  string
	format     string
	color      string
	logLevel   string
	backup     bool

	runner *commands.Runner
}

// SetContainer sets the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

func getContainer() *di.Container {
	if container == nil {
		container = di.NewContainer()
	}
	return container
}

// newRootCmd builds the base command with every subcommand attached
func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "pngme",
		Short: "pngme - Hide messages inside PNG files",
		Long: `pngme hides text messages in ancillary chunks of PNG files, reads
them back, removes them and lists the chunks of a file.

The image data is never decoded; only the chunk framing is rewritten.

Examples:
  pngme encode image.png ruSt "a secret message"
  pngme decode image.png ruSt
  pngme remove image.png ruSt
  pngme print image.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, state)
			if err != nil {
				return err
			}

			c := getContainer()
			styled := cfg.Output.Format == "table" && useColor(cfg.Output.Color, c.Stdout())
			state.runner = c.NewRunner(cfg, styled)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.configPath, "config", "c", "", "path to config file (default ~/.config/pngme/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&state.placement, "placement", "", "where new chunks go: before-iend or append")
	rootCmd.PersistentFlags().StringVarP(&state.format, "format", "o", "", "output format (table or json)")
	rootCmd.PersistentFlags().StringVar(&state.color, "color", "", "color output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&state.backup, "backup", false, "back up files before rewriting them in place")

	rootCmd.AddCommand(newEncodeCmd(state))
	rootCmd.AddCommand(newDecodeCmd(state))
	rootCmd.AddCommand(newRemoveCmd(state))
	rootCmd.AddCommand(newPrintCmd(state))
	rootCmd.AddCommand(newInitCmd(state))

	c := getContainer()
	rootCmd.SetOut(c.Stdout())
	rootCmd.SetErr(c.Stderr())
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(getContainer().Stderr(), "%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides. A missing file
// at the default location is not an error.
func loadConfig(cmd *cobra.Command, state *cliState) (*config.Config, error) {
	cfg := config.DefaultConfig()

	path := state.configPath
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	if state.configPath != "" || config.ConfigExists(path) {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("placement") {
		cfg.Placement = state.placement
	}
	if flags.Changed("format") {
		cfg.Output.Format = state.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = state.color
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = state.logLevel
	}
	if flags.Changed("backup") {
		cfg.Backup = state.backup
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

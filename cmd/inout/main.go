package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davidroman0O/firm-inout/config"
	"github.com/davidroman0O/firm-inout/logging"
	"github.com/davidroman0O/firm-inout/tui"
	"github.com/davidroman0O/firm-inout/view"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "inout",
		Short:        "Parent and child view models with independent copies of one list",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to inout.yml config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd(), newTraceCmd())
	return cmd
}

// setup loads the config and points logging at fallback unless a log file is configured
func setup(cmd *cobra.Command, fallback io.Writer) (*config.Config, func() error, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}

	closeLog, err := logging.Configure(cfg.Logging, fallback)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeLog, nil
}

// closeInto runs closeFn and joins its failure into *err
func closeInto(err *error, closeFn func() error) {
	if cerr := closeFn(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("failed to close log file: %w", cerr))
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if !stdoutIsTerminal() {
				return fmt.Errorf("run needs a terminal, use `inout trace` instead")
			}

			// The TUI owns the terminal, so logs only go to a configured file
			cfg, closeLog, err := setup(cmd, io.Discard)
			if err != nil {
				return err
			}
			defer closeInto(&err, closeLog)

			return tui.Run(view.NewApp(cfg.Actions), tea.WithAltScreen())
		},
	}
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Print the screen after start and after each action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, closeLog, err := setup(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeInto(&err, closeLog)

			return trace(cmd.OutOrStdout(), view.NewApp(cfg.Actions))
		},
	}
}

func trace(out io.Writer, app *view.App) error {
	steps := []struct {
		title string
		run   func() view.Screen
	}{
		{"start", app.Start},
		{view.AddToParent.String(), func() view.Screen { return app.Press(view.AddToParent) }},
		{view.AddToChild.String(), func() view.Screen { return app.Press(view.AddToChild) }},
	}
	defer app.Stop()

	for _, step := range steps {
		if _, err := fmt.Fprintf(out, "== %s ==\n%s", step.title, step.run()); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riordanpawley/outcome/internal/app"
	"github.com/riordanpawley/outcome/internal/logging"
)

var errNotTerminal = errors.New("the demo host needs an interactive terminal")

func newRunCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive demo host",
		Long: `Launch the demo host. Pick a scenario and run it: after a simulated
delay its outcome is shown in an animated overlay.

Logs go to a file because the terminal belongs to the UI; set logging.file
or OUTCOME_LOGGING_FILE to move it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(cmd, flags)
		},
	}

	return cmd
}

func runHost(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logCfg := cfg.LogConfig()
	if logCfg.File == "" {
		logCfg.File = logging.DefaultFile()
	}
	logger, closer, err := logging.Open(logCfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := logging.WithContext(cmd.Context(), logger)
	logger.Info().
		Str("version", version).
		Int("fps", cfg.Animation.FPS).
		Bool("reduced_motion", cfg.Animation.ReducedMotion).
		Msg("starting demo host")

	model, err := app.New(cfg, app.WithContext(ctx))
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

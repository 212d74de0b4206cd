package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ShinuToki/rdu/internal/nav"
	"github.com/ShinuToki/rdu/internal/scan"
	"github.com/ShinuToki/rdu/internal/tui"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg scan.Config
	cmd := &cobra.Command{
		Use:     "rdu [path]",
		Short:   "Interactive disk usage analyzer",
		Long:    "rdu scans a directory tree and opens an interactive browser showing aggregate disk usage per entry.",
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return run(path, cfg)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&cfg.OneFilesystem, "one-file-system", "x", false,
		"do not cross filesystem boundaries")
	cmd.Flags().BoolVarP(&cfg.FollowLinks, "follow-links", "L", false,
		"follow symbolic links when resolving metadata (caution: can loop)")
	return cmd
}

func run(path string, cfg scan.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve %q: %w", path, err)
	}

	fmt.Printf("Scanning %s... This may take a moment.\n", abs)
	root := scan.Scan(abs, cfg)

	app := nav.New(root, cfg)
	// bubbletea restores the terminal (cooked mode, main screen) before
	// re-raising a panic from the model.
	p := tea.NewProgram(tui.New(app, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}

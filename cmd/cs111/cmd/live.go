package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/ui"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/watcher"
)

func newLiveCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Interactive search with results updating per keystroke",
		Long: `Live opens a full-screen search prompt. Results update as you type;
enter prints the selected result's route and exits.

With --watch, edits to the content YAML files reload the index while the
prompt is open.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := loadSession()
			if err != nil {
				return err
			}

			var (
				reloads  <-chan struct{}
				reloadFn func() error
			)
			if watch {
				w, err := watcher.New(cfg.ContentDir, cfg.Watch.Debounce, slog.Default())
				if err != nil {
					return err
				}

				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				go w.Run(ctx)

				reloads = w.Changes()
				reloadFn = func() error {
					fresh, err := course.Load(cfg.ContentDir)
					if err != nil {
						return err
					}
					session.Reload(fresh)
					return nil
				}
			}

			model := ui.NewLive(session, reloads, reloadFn)
			program := tea.NewProgram(model)
			if _, err := program.Run(); err != nil {
				return err
			}

			if route := model.ChosenRoute(); route != "" {
				fmt.Fprintln(cmd.OutOrStdout(), route)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the index when content files change")

	return cmd
}

package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
	mcpserver "github.com/justinvassantachart/cs111-interactive-sub002/internal/mcp"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/watcher"
)

func newMCPCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve course search to AI assistants over MCP stdio",
		Long: `MCP runs a Model Context Protocol server on stdin/stdout exposing the
search_course and course_status tools. Point an MCP-capable assistant at
this command to let it search the course.

With --watch, edits to the content YAML files reload the index while the
server runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, session, err := loadSession()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var mu sync.Mutex
			current := catalog
			catalogFn := func() *course.Catalog {
				mu.Lock()
				defer mu.Unlock()
				return current
			}

			server, err := mcpserver.NewServer(session, catalogFn, slog.Default())
			if err != nil {
				return err
			}

			if watch {
				w, err := watcher.New(cfg.ContentDir, cfg.Watch.Debounce, slog.Default())
				if err != nil {
					return err
				}
				go w.Run(ctx)
				go reloadLoop(ctx, w.Changes(), func() {
					fresh, err := course.Load(cfg.ContentDir)
					if err != nil {
						slog.Warn("content reload failed", slog.String("error", err.Error()))
						return
					}
					mu.Lock()
					current = fresh
					mu.Unlock()
					session.Reload(fresh)
					slog.Info("content reloaded", slog.Int("entries", session.TotalIndexed()))
				})
			}

			return server.Serve(ctx)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the index when content files change")

	return cmd
}

// reloadLoop applies reload on every watcher notification until the context
// is cancelled.
func reloadLoop(ctx context.Context, changes <-chan struct{}, reload func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			reload()
		}
	}
}

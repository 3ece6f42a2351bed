// Package cmd provides the CLI commands for the cs111 course search tool.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/config"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/logging"
	"github.com/justinvassantachart/cs111-interactive-sub002/internal/search"
	"github.com/justinvassantachart/cs111-interactive-sub002/pkg/version"
)

var (
	cfgPath    string
	contentDir string
	debugMode  bool

	cfg            *config.Config
	loggingCleanup func()
)

// NewRootCmd creates the root command for the cs111 CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cs111",
		Short: "Full-text search over the CS111 interactive course",
		Long: `cs111 indexes the course content tree (lectures, discussion sections,
assignments) and answers free-text queries with a small ranked list of
jump targets.

Content is read from YAML files in the content directory; see --content-dir
and the .cs111.yaml config file.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("cs111 version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default: .cs111.yaml)")
	cmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "Course content directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.cs111/logs/")

	cmd.PersistentPreRunE = setup
	cmd.PersistentPostRun = teardown

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newLiveCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newMCPCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// setup loads configuration and installs the logger before any subcommand
// runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.FilePath = cfg.Log.File
	if debugMode {
		logCfg = logging.DebugConfig()
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	loggingCleanup = cleanup
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if loggingCleanup != nil {
		loggingCleanup()
	}
}

// loadSession loads the catalog and wraps it in a search session.
func loadSession() (*course.Catalog, *search.Session, error) {
	catalog, err := course.Load(cfg.ContentDir)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("content loaded",
		slog.String("dir", cfg.ContentDir),
		slog.Int("items", catalog.Len()))
	return catalog, search.NewSessionWithCache(catalog, cfg.Search.CacheSize), nil
}

// Package main provides the CLI entrypoint for wordstats.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordstats/internal/analyzer"
	"github.com/verte-zerg/wordstats/internal/config"
	"github.com/verte-zerg/wordstats/internal/plot"
	"github.com/verte-zerg/wordstats/internal/stats"
	"github.com/verte-zerg/wordstats/internal/store"
)

const defaultHistoryLimit = 10

var (
	configPath string
	dbPath     string
	record     bool

	historyLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordstats",
		Short:         "Word list length statistics and histograms",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/wordstats/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "run history database")
	rootCmd.Flags().BoolVar(&record, "record", false, "append this run to the history database")

	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	runCfg := config.Apply(fileCfg, config.DefaultRunConfig())

	startedAt := time.Now()
	results, err := analyzer.Run(contextOrBackground(cmd), runCfg, plot.NewPNGRenderer())
	if err != nil {
		return err
	}
	if err := analyzer.WriteJSON(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if !record && fileCfg.History.DB == nil {
		return nil
	}
	st, err := store.Open(resolveDBPath(cmd, fileCfg))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	id, err := st.InsertRun(contextOrBackground(cmd), startedAt, results)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	logErrf("Recorded run %d\n", id)
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "number of runs to show (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	path := resolveDBPath(cmd, fileCfg)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logErrln("No history recorded yet. Run: wordstats --record")
			return fmt.Errorf("history database does not exist: %s", path)
		}
		return fmt.Errorf("failed to stat db: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	runs, err := st.ListRuns(contextOrBackground(cmd), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return stats.RenderHistory(cmd.OutOrStdout(), runs)
}

func loadFileConfig() (config.FileConfig, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

func resolveDBPath(cmd *cobra.Command, fileCfg config.FileConfig) string {
	if cmd.Flags().Changed("db") && dbPath != "" {
		return dbPath
	}
	if fileCfg.History.DB != nil && *fileCfg.History.DB != "" {
		return *fileCfg.History.DB
	}
	return config.DefaultDBPath()
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

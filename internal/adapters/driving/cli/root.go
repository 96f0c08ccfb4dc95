// Package cli implements the yamly command-line interface using cobra.
// Commands are thin: they load inputs, call the core diff service and
// hand results to a renderer.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driving"
	"github.com/noamoss/yamly-sub000/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired by main before Execute runs. Commands check for nil
// and fail with a clear message rather than panic.
var (
	diffService  driving.DiffService
	docLoader    driven.DocumentLoader
	valueLoader  driven.ValueLoader
	ruleStore    driven.RuleStore
	historyStore driven.HistoryStore
	fetcher      driven.Fetcher
	lineResolver driven.LineResolver
)

// Services bundles everything the commands need.
type Services struct {
	Diff         driving.DiffService
	DocLoader    driven.DocumentLoader
	ValueLoader  driven.ValueLoader
	Rules        driven.RuleStore
	History      driven.HistoryStore
	Fetcher      driven.Fetcher
	LineResolver driven.LineResolver
}

// SetServices injects the service implementations used by the
// commands.
func SetServices(s Services) {
	diffService = s.Diff
	docLoader = s.DocLoader
	valueLoader = s.ValueLoader
	ruleStore = s.Rules
	historyStore = s.History
	fetcher = s.Fetcher
	lineResolver = s.LineResolver
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "yamly",
	Short: "Structural diff for hierarchical documents",
	Long: `yamly compares two versions of a hierarchical document and reports
what changed: sections added, removed, edited, renamed or moved, with
rename and move detection based on content similarity.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command. The command context is cancelled on
// SIGINT or SIGTERM so long-running commands like watch exit cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

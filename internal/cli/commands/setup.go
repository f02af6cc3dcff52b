package commands

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/spacelint/internal/checker"
	"github.com/leapstack-labs/spacelint/internal/cli/config"
	"github.com/leapstack-labs/spacelint/internal/cli/output"
	"github.com/leapstack-labs/spacelint/pkg/lint"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	jobs, _ := strconv.Atoi(os.Getenv("SPACELINT_JOBS"))
	verbose := os.Getenv("SPACELINT_VERBOSE") == "true"
	out := getEnvOrDefault("SPACELINT_OUTPUT", config.DefaultOutput)

	return &config.Config{
		Paths:      []string{"."},
		Extensions: config.DefaultExtensions,
		Jobs:       jobs,
		Verbose:    verbose,
		Output:     out,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// newChecker builds a checker from the resolved configuration.
func newChecker(cfg *config.Config, lintCfg *lint.Config, logger *slog.Logger) *checker.Checker {
	return checker.New(checker.Config{
		Extensions: cfg.Extensions,
		Jobs:       cfg.Jobs,
		Lint:       lintCfg,
		Logger:     logger,
	})
}

// buildLintConfig merges project config and CLI overrides into a
// lint.Config. CLI flags take precedence over the config file.
func buildLintConfig(cfg *config.Config, disable, only []string) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(only) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range only {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvndeps/internal/config"
	"github.com/matzehuels/mvndeps/pkg/deps"
	"github.com/matzehuels/mvndeps/pkg/integrations/maven"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mvndeps"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr      io.Writer
	interactive bool // stderr is a terminal; enables the spinner
	flags       globalFlags
}

// globalFlags holds the persistent flags that are not configuration keys.
// The remaining persistent flags are bound to the config loader by name.
type globalFlags struct {
	configSource string
	verbose      bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
	if f, ok := w.(*os.File); ok {
		c.interactive = isatty.IsTerminal(f.Fd())
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Configuration
// =============================================================================

// configFlags maps configuration keys to the persistent flags that set them.
var configFlags = []struct {
	key  string
	flag string
}{
	{config.KeyPackageName, "package"},
	{config.KeyRepositoryURL, "repository"},
	{config.KeyMaxDependencyDepth, "depth"},
	{config.KeyTestRepositoryMode, "test-repository-mode"},
	{config.KeyTimeout, "timeout"},
}

// loadConfig merges flags, environment, the --config source and defaults.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader(c.Logger)
	for _, b := range configFlags {
		if err := loader.BindFlag(b.key, cmd.Flags().Lookup(b.flag)); err != nil {
			return nil, err
		}
	}
	return loader.Load(cmd.Context(), c.flags.configSource)
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver creates a resolver for the repository named in cfg.
func (c *CLI) newResolver(cfg *config.Config) *deps.Resolver {
	client := maven.NewClient(cfg.RepositoryURL, cfg.Timeout)
	return deps.NewResolver(client, c.Logger)
}

// newSpinner creates a spinner on stderr, disabled unless stderr is a
// terminal and debug logging is off.
func (c *CLI) newSpinner(cmd *cobra.Command, message string) *Spinner {
	s := newSpinner(cmd.Context(), c.stderr, message)
	s.disabled = !c.interactive || c.flags.verbose
	return s
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvndeps/internal/config"
	"github.com/matzehuels/mvndeps/pkg/buildinfo"
	"github.com/matzehuels/mvndeps/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Running the root command without a subcommand behaves like "deps".
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including every repository request
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	depsOpts := &depsOptions{}

	root := &cobra.Command{
		Use:   appName,
		Short: "mvndeps lists the direct dependencies of a Maven package",
		Long: `mvndeps resolves a Maven package against a Maven-layout repository,
selects its latest version from maven-metadata.xml, and lists the
dependencies declared in that version's POM.

Configuration is merged from flags, MVNDEPS_* environment variables, a JSON
file or URL (--config), and built-in defaults, in that order of precedence.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.flags.verbose {
				level = LogDebug
				observability.SetHTTPHooks(httpLogHooks{logger: c.Logger})
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeps(cmd, depsOpts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringP("package", "p", "", "package to resolve, groupId:artifactId")
	pf.StringP("repository", "r", "", "Maven repository URL")
	pf.IntP("depth", "d", 0, "maximum dependency depth (validated, direct dependencies only)")
	pf.Bool("test-repository-mode", false, "mark the run as using a test repository")
	pf.Duration("timeout", 0, "per-request timeout (default "+config.DefaultTimeout.String()+")")
	pf.StringVarP(&c.flags.configSource, "config", "c", config.DefaultSource, "configuration file path or http(s) URL")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().BoolVar(&depsOpts.json, "json", false, "print dependencies as JSON")

	root.AddCommand(c.depsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

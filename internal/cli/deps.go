package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mvndeps/internal/config"
	"github.com/matzehuels/mvndeps/pkg/deps"
	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

// depsOptions holds the flags of the deps command.
type depsOptions struct {
	json bool // print the result as JSON instead of a numbered list
}

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	opts := &depsOptions{}

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Resolve and print the direct dependencies of a package",
		Long: `Resolve and print the direct dependencies of a package.

The configuration is validated and printed first, then the package's
maven-metadata.xml and POM are fetched from the repository.

Examples:
  mvndeps deps -p org.springframework:spring-core
  mvndeps deps -p junit:junit -r https://repo.maven.apache.org/maven2
  mvndeps deps -c https://example.com/mvndeps.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeps(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print dependencies as JSON")

	return cmd
}

// runDeps loads and validates the configuration, resolves the package and
// prints the result. Invalid configuration is reported line by line and
// aborts before any request is made.
func (c *CLI) runDeps(cmd *cobra.Command, opts *depsOptions) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkConfig(cmd.ErrOrStderr(), cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.json {
		printConfig(out, cfg)
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("resolving", "package", cfg.PackageName, "repository", cfg.RepositoryURL)

	prog := newProgress(logger)
	spin := c.newSpinner(cmd, "Resolving "+cfg.PackageName)
	spin.Start()
	res, err := c.newResolver(cfg).Resolve(cmd.Context(), cfg.PackageName)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done("Resolved " + res.Package.String())

	if opts.json {
		return writeJSON(out, res)
	}
	printDependencies(out, res)
	return nil
}

// checkConfig prints every violation in cfg to w. The returned error only
// signals that validation failed.
func checkConfig(w io.Writer, cfg *config.Config) error {
	err := cfg.Validate()
	if err == nil {
		return nil
	}
	printError(w, "Invalid configuration:")
	for _, v := range config.Violations(err) {
		printDetail(w, "- %s", v)
	}
	return apperr.New(apperr.ErrCodeInvalidConfig, "configuration is invalid")
}

func writeJSON(w io.Writer, res *deps.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

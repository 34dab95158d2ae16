// Package config loads the mvndeps run configuration.
//
// Values are merged from, in decreasing priority: command-line flags,
// MVNDEPS_* environment variables, a JSON document read from a file or an
// http(s) URL, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
	"github.com/matzehuels/mvndeps/pkg/integrations"
	"github.com/matzehuels/mvndeps/pkg/integrations/maven"
)

// Configuration keys, shared by the JSON document, the environment
// (upper-cased, MVNDEPS_ prefix) and flag bindings.
const (
	KeyPackageName        = "package_name"
	KeyRepositoryURL      = "repository_url"
	KeyMaxDependencyDepth = "max_dependency_depth"
	KeyTestRepositoryMode = "test_repository_mode"
	KeyTimeout            = "timeout"
)

// Defaults.
const (
	DefaultSource             = "config.json"
	DefaultPackageName        = "org.springframework:spring-core"
	DefaultRepositoryURL      = maven.DefaultRepositoryURL
	DefaultMaxDependencyDepth = 3
	DefaultTimeout            = integrations.DefaultTimeout
)

// Config is the effective configuration of a run.
type Config struct {
	// PackageName is the coordinate to resolve, "groupId:artifactId".
	// Env: MVNDEPS_PACKAGE_NAME
	PackageName string `mapstructure:"package_name" json:"package_name"`

	// RepositoryURL is the root of the Maven-layout repository.
	// Env: MVNDEPS_REPOSITORY_URL
	RepositoryURL string `mapstructure:"repository_url" json:"repository_url"`

	// MaxDependencyDepth is validated and displayed but does not change
	// behavior: only direct dependencies are resolved.
	// Env: MVNDEPS_MAX_DEPENDENCY_DEPTH
	MaxDependencyDepth int `mapstructure:"max_dependency_depth" json:"max_dependency_depth"`

	// TestRepositoryMode is carried for display only.
	// Env: MVNDEPS_TEST_REPOSITORY_MODE
	TestRepositoryMode bool `mapstructure:"test_repository_mode" json:"test_repository_mode"`

	// Timeout bounds each repository request, e.g. "10s".
	// Env: MVNDEPS_TIMEOUT
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		PackageName:        DefaultPackageName,
		RepositoryURL:      DefaultRepositoryURL,
		MaxDependencyDepth: DefaultMaxDependencyDepth,
		Timeout:            DefaultTimeout,
	}
}

// Validate reports every invalid field at once. The returned error joins one
// INVALID_CONFIG error per violation, in field order.
func (c *Config) Validate() error {
	return errors.Join(
		apperr.ValidatePackageName(c.PackageName),
		apperr.ValidateURL(c.RepositoryURL),
		apperr.ValidateDepth(c.MaxDependencyDepth),
	)
}

// Entry is one displayed configuration value.
type Entry struct {
	Key   string
	Value string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Value)
}

// Entries returns the configuration as key/value pairs in a fixed order.
func (c *Config) Entries() []Entry {
	return []Entry{
		{KeyPackageName, c.PackageName},
		{KeyRepositoryURL, c.RepositoryURL},
		{KeyMaxDependencyDepth, strconv.Itoa(c.MaxDependencyDepth)},
		{KeyTestRepositoryMode, strconv.FormatBool(c.TestRepositoryMode)},
		{KeyTimeout, c.Timeout.String()},
	}
}

// Violations splits a Validate error into its individual messages.
func Violations(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{apperr.UserMessage(err)}
	}
	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, apperr.UserMessage(e))
	}
	return out
}

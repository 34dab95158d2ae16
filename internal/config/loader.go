package config

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/mvndeps/pkg/buildinfo"
	apperr "github.com/matzehuels/mvndeps/pkg/errors"
	"github.com/matzehuels/mvndeps/pkg/integrations"
)

// Environment variable prefix for mvndeps configuration.
const envPrefix = "MVNDEPS"

// Loader merges configuration from flags, environment, a JSON source and
// defaults.
type Loader struct {
	v      *viper.Viper
	logger *log.Logger
	http   *integrations.Client
}

// NewLoader creates a loader with defaults and environment bindings in place.
// Warnings about unusable configuration sources go to logger; nil uses
// log.Default().
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}

	v := viper.New()
	def := Default()
	v.SetDefault(KeyPackageName, def.PackageName)
	v.SetDefault(KeyRepositoryURL, def.RepositoryURL)
	v.SetDefault(KeyMaxDependencyDepth, def.MaxDependencyDepth)
	v.SetDefault(KeyTestRepositoryMode, def.TestRepositoryMode)
	v.SetDefault(KeyTimeout, def.Timeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:      v,
		logger: logger,
		http:   integrations.NewClient(0, map[string]string{
			"Accept":     "application/json",
			"User-Agent": buildinfo.UserAgent(),
		}),
	}
}

// BindFlag makes flag override key whenever the flag is set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return apperr.New(apperr.ErrCodeInvalidConfig, "no flag to bind for %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads source, when non-empty, and returns the merged configuration.
//
// A source starting with http:// or https:// is fetched with GET; anything
// else is read from disk. Either way the document must be a JSON object. A
// source that cannot be read or parsed is logged as a warning and skipped so
// the remaining layers still apply. The returned error is reserved for values
// that cannot be decoded into [Config], such as a non-numeric depth.
func (l *Loader) Load(ctx context.Context, source string) (*Config, error) {
	if source != "" {
		l.read(ctx, source)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "decoding configuration")
	}
	return &cfg, nil
}

func (l *Loader) read(ctx context.Context, source string) {
	l.v.SetConfigType("json")

	if isURL(source) {
		l.logger.Info("loading configuration", "url", source)
		body, err := l.http.GetText(ctx, source)
		if err != nil {
			l.logger.Warn("could not fetch configuration", "url", source, "err", err)
			return
		}
		if err := l.v.ReadConfig(strings.NewReader(body)); err != nil {
			l.logger.Warn("could not parse configuration", "url", source, "err", err)
		}
		return
	}

	l.v.SetConfigFile(source)
	err := l.v.ReadInConfig()
	switch {
	case err == nil:
		l.logger.Debug("loaded configuration", "file", source)
	case errors.Is(err, fs.ErrNotExist):
		// The default file is optional.
		if source == DefaultSource {
			l.logger.Debug("configuration file not found", "file", source)
			return
		}
		l.logger.Warn("configuration file not found", "file", source)
	default:
		l.logger.Warn("could not read configuration", "file", source, "err", err)
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

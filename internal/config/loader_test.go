package config

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

func newTestLoader(t *testing.T) (*Loader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewLoader(log.New(&buf)), &buf
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader(nil)
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
	assert.NotNil(t, loader.logger)
}

func TestLoaderLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults without source", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		cfg, err := loader.Load(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("loads file", func(t *testing.T) {
		path := writeConfig(t, `{
  "package_name": "com.example:demo",
  "repository_url": "http://localhost:8081/repo",
  "max_dependency_depth": 7,
  "test_repository_mode": true,
  "timeout": "3s"
}`)

		loader, _ := newTestLoader(t)
		cfg, err := loader.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, &Config{
			PackageName:        "com.example:demo",
			RepositoryURL:      "http://localhost:8081/repo",
			MaxDependencyDepth: 7,
			TestRepositoryMode: true,
			Timeout:            3 * time.Second,
		}, cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `{"package_name": "junit:junit"}`)

		loader, _ := newTestLoader(t)
		cfg, err := loader.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "junit:junit", cfg.PackageName)
		assert.Equal(t, DefaultRepositoryURL, cfg.RepositoryURL)
		assert.Equal(t, DefaultMaxDependencyDepth, cfg.MaxDependencyDepth)
	})

	t.Run("missing file warns and falls back", func(t *testing.T) {
		loader, logs := newTestLoader(t)
		cfg, err := loader.Load(ctx, filepath.Join(t.TempDir(), "absent.json"))

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Contains(t, logs.String(), "configuration file not found")
	})

	t.Run("invalid JSON warns and falls back", func(t *testing.T) {
		path := writeConfig(t, `{"package_name": `)

		loader, logs := newTestLoader(t)
		cfg, err := loader.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Contains(t, logs.String(), "could not read configuration")
	})

	t.Run("undecodable value is an error", func(t *testing.T) {
		path := writeConfig(t, `{"max_dependency_depth": "deep"}`)

		loader, _ := newTestLoader(t)
		_, err := loader.Load(ctx, path)

		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig))
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MVNDEPS_PACKAGE_NAME", "env.group:env-artifact")
		t.Setenv("MVNDEPS_TIMEOUT", "250ms")
		path := writeConfig(t, `{"package_name": "file.group:file-artifact", "max_dependency_depth": 4}`)

		loader, _ := newTestLoader(t)
		cfg, err := loader.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "env.group:env-artifact", cfg.PackageName)
		assert.Equal(t, 4, cfg.MaxDependencyDepth)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})
}

func TestLoaderLoadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/mvndeps.json", r.URL.Path)
			w.Write([]byte(`{"package_name": "org.remote:conf", "max_dependency_depth": 2}`))
		}))
		defer srv.Close()

		loader, logs := newTestLoader(t)
		cfg, err := loader.Load(ctx, srv.URL+"/mvndeps.json")

		require.NoError(t, err)
		assert.Equal(t, "org.remote:conf", cfg.PackageName)
		assert.Equal(t, 2, cfg.MaxDependencyDepth)
		assert.Contains(t, logs.String(), "loading configuration")
	})

	t.Run("HTTP error warns and falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		loader, logs := newTestLoader(t)
		cfg, err := loader.Load(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Contains(t, logs.String(), "could not fetch configuration")
	})

	t.Run("bad JSON warns and falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		loader, logs := newTestLoader(t)
		cfg, err := loader.Load(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Contains(t, logs.String(), "could not parse configuration")
	})
}

func TestLoaderBindFlag(t *testing.T) {
	ctx := context.Background()
	path := writeConfig(t, `{"package_name": "file.group:file-artifact", "repository_url": "http://file"}`)

	t.Run("set flag overrides env and file", func(t *testing.T) {
		t.Setenv("MVNDEPS_PACKAGE_NAME", "env.group:env-artifact")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("package", "", "")
		fs.Int("depth", 0, "")
		require.NoError(t, fs.Parse([]string{"--package", "flag.group:flag-artifact", "--depth", "9"}))

		loader, _ := newTestLoader(t)
		require.NoError(t, loader.BindFlag(KeyPackageName, fs.Lookup("package")))
		require.NoError(t, loader.BindFlag(KeyMaxDependencyDepth, fs.Lookup("depth")))

		cfg, err := loader.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "flag.group:flag-artifact", cfg.PackageName)
		assert.Equal(t, 9, cfg.MaxDependencyDepth)
		assert.Equal(t, "http://file", cfg.RepositoryURL)
	})

	t.Run("unset flag does not override", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("package", "", "")
		require.NoError(t, fs.Parse(nil))

		loader, _ := newTestLoader(t)
		require.NoError(t, loader.BindFlag(KeyPackageName, fs.Lookup("package")))

		cfg, err := loader.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "file.group:file-artifact", cfg.PackageName)
	})

	t.Run("missing flag", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		err := loader.BindFlag(KeyPackageName, nil)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig))
	})
}

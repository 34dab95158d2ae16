package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "org.springframework:spring-core", cfg.PackageName)
	assert.Equal(t, "https://repo1.maven.org/maven2", cfg.RepositoryURL)
	assert.Equal(t, 3, cfg.MaxDependencyDepth)
	assert.False(t, cfg.TestRepositoryMode)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{PackageName: "g:a", RepositoryURL: "http://localhost:8080", MaxDependencyDepth: 10}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("single violation", func(t *testing.T) {
		cfg := Default()
		cfg.MaxDependencyDepth = 11

		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidConfig))
		assert.Equal(t, []string{"max dependency depth cannot exceed 10"}, Violations(err))
	})

	t.Run("all violations reported", func(t *testing.T) {
		cfg := &Config{PackageName: "no-colon", RepositoryURL: "ftp://repo", MaxDependencyDepth: 0}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, []string{
			"package name must have the form groupId:artifactId",
			"repository URL must start with http:// or https://",
			"max dependency depth must be positive",
		}, Violations(err))
	})

	t.Run("empty values", func(t *testing.T) {
		err := (&Config{MaxDependencyDepth: 1}).Validate()
		assert.Equal(t, []string{
			"package name is not set",
			"repository URL is not set",
		}, Violations(err))
	})
}

func TestViolationsNil(t *testing.T) {
	assert.Nil(t, Violations(nil))
}

func TestEntries(t *testing.T) {
	cfg := &Config{
		PackageName:        "g:a",
		RepositoryURL:      "https://repo.example.com",
		MaxDependencyDepth: 5,
		TestRepositoryMode: true,
		Timeout:            1500 * time.Millisecond,
	}

	var lines []string
	for _, e := range cfg.Entries() {
		lines = append(lines, e.String())
	}
	assert.Equal(t, []string{
		"package_name: g:a",
		"repository_url: https://repo.example.com",
		"max_dependency_depth: 5",
		"test_repository_mode: true",
		"timeout: 1.5s",
	}, lines)
}

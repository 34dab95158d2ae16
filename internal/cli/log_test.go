package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)

	prog.done("Resolved g:a:1")

	out := buf.String()
	if !strings.Contains(out, "Resolved g:a:1 (") {
		t.Errorf("progress output %q should contain message and elapsed time", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestHTTPLogHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := httpLogHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	hooks.OnRequest(ctx, "GET", "repo.example", "/junit/junit/maven-metadata.xml")
	hooks.OnResponse(ctx, "GET", "repo.example", "/junit/junit/maven-metadata.xml", 404, 12*time.Millisecond)
	hooks.OnError(ctx, "GET", "repo.example", "/x.pom", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{
		"url=repo.example/junit/junit/maven-metadata.xml",
		"status=404",
		"elapsed=12ms",
		"request failed",
		"connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestHTTPLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	hooks := httpLogHooks{logger: newLogger(&buf, log.InfoLevel)}
	hooks.OnRequest(context.Background(), "GET", "repo.example", "/")

	if buf.Len() != 0 {
		t.Errorf("request logged at info level: %q", buf.String())
	}
}

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/load-planner/pkg/logging"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logging.Config
		json  bool
		debug bool
	}{
		{"text info", logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, false, false},
		{"json debug", logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewWithWriter(&tt.cfg, &buf)

			logger.Debug("debug line")
			logger.Info("plan created", "packed", 3)

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.debug {
				t.Errorf("debug emitted = %v, want %v", got, tt.debug)
			}

			lines := strings.Split(strings.TrimSpace(out), "\n")
			last := lines[len(lines)-1]
			if tt.json {
				var entry map[string]any
				if err := json.Unmarshal([]byte(last), &entry); err != nil {
					t.Fatalf("not JSON: %q", last)
				}
				if entry["msg"] != "plan created" || entry["packed"] != float64(3) {
					t.Errorf("entry = %v", entry)
				}
				return
			}
			if !strings.Contains(last, "msg=\"plan created\"") || !strings.Contains(last, "packed=3") {
				t.Errorf("text line = %q", last)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		slog  slog.Level
		valid bool
	}{
		{logging.LevelDebug, slog.LevelDebug, true},
		{logging.LevelInfo, slog.LevelInfo, true},
		{logging.LevelWarn, slog.LevelWarn, true},
		{logging.LevelError, slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.slog {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.slog)
			}
			if err := tt.level.Validate(); (err == nil) != tt.valid {
				t.Errorf("Validate() error = %v, valid %v", err, tt.valid)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "warn")

	cfg := logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelWarn || cfg.Format != logging.FormatText {
		t.Errorf("cfg = %+v", cfg)
	}

	bad := logging.Config{Format: "xml"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() with xml format error = nil")
	}

	merged := logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	merged.Merge(&logging.Config{Format: logging.FormatJSON, AddSource: true})
	if merged.Level != logging.LevelInfo || merged.Format != logging.FormatJSON || !merged.AddSource {
		t.Errorf("Merge() = %+v", merged)
	}
}

func TestConfig_FinalizeNormalizes(t *testing.T) {
	t.Setenv("TEST_LOG_FORMAT", "JSON")
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := logging.Config{Level: "Debug"}
	env := &logging.Env{Format: "TEST_LOG_FORMAT", AddSource: "TEST_LOG_SOURCE"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug || cfg.Format != logging.FormatJSON {
		t.Errorf("level/format = %q/%q", cfg.Level, cfg.Format)
	}
	if cfg.Service != logging.DefaultService || !cfg.AddSource {
		t.Errorf("service/source = %q/%v", cfg.Service, cfg.AddSource)
	}
}

func TestNewWithWriter_ServiceAndSource(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.Config{
		Level:     logging.LevelInfo,
		Format:    logging.FormatJSON,
		Service:   "planner-kiosk",
		AddSource: true,
	}
	logging.NewWithWriter(&cfg, &buf).Info("catalog stored")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not JSON: %q", buf.String())
	}
	if entry["service"] != "planner-kiosk" {
		t.Errorf("service = %v", entry["service"])
	}
	if _, ok := entry[slog.SourceKey]; !ok {
		t.Errorf("entry missing %s: %v", slog.SourceKey, entry)
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		lines = append(lines, m)
	}
	return lines
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelDebug, Output: buf})

	fixtureLogger := NewLogger(ComponentFixture)
	fixtureLogger.Debug().Int("pages", 10).Msg("Dataset built")
	publishLogger := NewLogger(ComponentPublish)
	publishLogger.Info().Str("namespace", "demo").Msg("Dataset published")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0]["component"] != "fixture" || lines[0]["pages"] != float64(10) {
		t.Errorf("fixture line = %v", lines[0])
	}
	if lines[1]["component"] != "publish" || lines[1]["namespace"] != "demo" {
		t.Errorf("publish line = %v", lines[1])
	}
	if _, ok := lines[1]["time"]; !ok {
		t.Errorf("missing timestamp in %v", lines[1])
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelWarn, Output: buf})

	logger := NewLogger(ComponentPublish)
	logger.Info().Msg("Dataset published")
	logger.Warn().Msg("Retrying after backoff")

	output := buf.String()
	if strings.Contains(output, "Dataset published") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(output, "Retrying after backoff") {
		t.Error("warn line should be written at warn level")
	}
}

func TestSetup_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelInfo, Pretty: true, Output: buf})

	logger := NewLogger(ComponentCLI)
	logger.Info().Str("out", "db.yaml").Msg("Dataset written")

	output := buf.String()
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("pretty output should not be JSON: %q", output)
	}
	for _, want := range []string{"Dataset written", "component=cli", "out=db.yaml"} {
		if !strings.Contains(output, want) {
			t.Errorf("pretty output missing %q: %q", want, output)
		}
	}
}

func TestSetup_NilOutput(t *testing.T) {
	logger := Setup(Config{Level: LevelError})
	if logger.GetLevel() == zerolog.Disabled {
		t.Error("logger should be enabled")
	}
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("global level = %v, want error", zerolog.GlobalLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"trace", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogLevel_UnknownFallsBackToInfo(t *testing.T) {
	if got := LogLevel("verbose").zerolog(); got != zerolog.InfoLevel {
		t.Errorf("zerolog() = %v, want info", got)
	}
	if got := LevelDebug.zerolog(); got != zerolog.DebugLevel {
		t.Errorf("zerolog() = %v, want debug", got)
	}
}

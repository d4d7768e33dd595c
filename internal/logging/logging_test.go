package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"screenwave/internal/config"
)

func TestConfigureLevels(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		want  logrus.Level
	}{
		{"default", false, logrus.WarnLevel},
		{"debug", true, logrus.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Debug = tt.debug

			entry := configure(logrus.New(), cfg, &bytes.Buffer{})
			if got := entry.Logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigureJSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogJSON = true
	cfg.Debug = true

	var buf bytes.Buffer
	configure(logrus.New(), cfg, &buf).WithField("label", "Downloading webpage").Debug("fetch")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["label"] != "Downloading webpage" || rec["msg"] != "fetch" {
		t.Errorf("record = %v", rec)
	}
}

func TestConfigureTextSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	entry := configure(logrus.New(), config.Default(), &buf)

	entry.Debug("hidden")
	entry.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output %q", out)
	}
}

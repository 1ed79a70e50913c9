package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "WARN", logrus.WarnLevel},
		{"empty falls back", "", logrus.InfoLevel},
		{"junk falls back", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(&bytes.Buffer{}, tt.level, "text")
			if Log.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.want)
			}
		})
	}
}

func TestConfigureJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	Configure(buf, "info", "json")

	Log.WithField("region", "0.0").Info("written")

	out := map[string]interface{}{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not json: %v (%s)", err, buf.String())
	}
	if out["msg"] != "written" || out["region"] != "0.0" {
		t.Errorf("unexpected entry %v", out)
	}
}

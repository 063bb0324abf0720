package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterEmitsComponentField(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("loader", "image loaded", map[string]interface{}{"width": 640})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["component"] != "loader" {
		t.Errorf("component = %v, want loader", entry["component"])
	}
	if entry["message"] != "image loaded" {
		t.Errorf("message = %v, want image loaded", entry["message"])
	}
	if entry["width"] != float64(640) {
		t.Errorf("width = %v, want 640", entry["width"])
	}
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("engine", "suppressed", nil)
	log.Info("engine", "suppressed", nil)
	if buf.Len() != 0 {
		t.Fatalf("low-severity events written: %q", buf.String())
	}

	log.Error("engine", errors.New("boom"), nil)
	if buf.Len() == 0 {
		t.Error("error event not written")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

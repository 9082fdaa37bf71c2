package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", "json")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", logger.GetLevel())
	}

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("path", "/api/health").Info("request")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if entry["path"] != "/api/health" || entry["msg"] != "request" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_Text(t *testing.T) {
	logger, err := New("info", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected text formatter, got %T", logger.Formatter)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New("loud", "text"); err == nil {
		t.Error("expected invalid level error")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Error("expected invalid format error")
	}
}

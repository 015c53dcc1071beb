package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Messages below WARN should be suppressed, got: %s", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("WARN message missing from output: %s", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "parser"})

	log.Error("parse failed", errors.New("bad token"), map[string]interface{}{"row": 12})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("Expected level ERROR, got %s", entry.Level)
	}
	if entry.Component != "parser" {
		t.Errorf("Expected component parser, got %s", entry.Component)
	}
	if entry.Error != "bad token" {
		t.Errorf("Expected error field, got %q", entry.Error)
	}
	if entry.Fields["row"] != float64(12) {
		t.Errorf("Expected row field 12, got %v", entry.Fields["row"])
	}
}

func TestTextFormatIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf})

	log.WithComponent("fetcher").Info("catalog fetched", map[string]interface{}{"records": 500})

	output := buf.String()
	if !strings.Contains(output, "[fetcher]") {
		t.Errorf("Expected component tag in output: %s", output)
	}
	if !strings.Contains(output, "records=500") {
		t.Errorf("Expected fields in output: %s", output)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"Warn":    WARN,
		"warning": WARN,
		"error":   ERROR,
		"FATAL":   FATAL,
		"bogus":   -1,
	}
	for input, expected := range cases {
		if got := ParseLogLevel(input); got != expected {
			t.Errorf("ParseLogLevel(%q) = %d, expected %d", input, got, expected)
		}
	}
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf})

	log.Infof("fetched %d records in %s", 42, "1.2s")

	if !strings.Contains(buf.String(), "fetched 42 records in 1.2s") {
		t.Errorf("Formatted message missing: %s", buf.String())
	}
}

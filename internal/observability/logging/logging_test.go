package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name     string
		input    string
		wantSame bool
	}{
		{name: "valid uuid is kept", input: valid, wantSame: true},
		{name: "empty generates", input: ""},
		{name: "garbage generates", input: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAndExtractRequestID(tt.input)
			if tt.wantSame && got != tt.input {
				t.Errorf("got %q, want %q", got, tt.input)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("result %q is not a uuid: %v", got, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q): got %v, want %v", input, got, want)
		}
	}
}

func TestNewHandler_AddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(Config{
		Service:       ServiceInfo{Name: "medication-sync", Version: "test"},
		Environment:   EnvProd,
		DefaultModule: Module("sync"),
		Level:         slog.LevelInfo,
		Writer:        &buf,
	}))

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello", slog.String("schedule_id", "s1"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}

	if entry["request_id"] != "req-1" {
		t.Errorf("request_id: got %v", entry["request_id"])
	}
	if entry["module"] != "sync" {
		t.Errorf("module: got %v", entry["module"])
	}
	if entry["schedule_id"] != "s1" {
		t.Errorf("schedule_id: got %v", entry["schedule_id"])
	}
	service, ok := entry["service"].(map[string]any)
	if !ok || service["name"] != "medication-sync" {
		t.Errorf("service: got %v", entry["service"])
	}
}

func TestNewHandler_ModuleFromContextOverridesDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(Config{
		Environment:   EnvProd,
		DefaultModule: Module("sync"),
		Writer:        &buf,
	}))

	logger.InfoContext(WithModule(context.Background(), Module("http")), "hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}
	if entry["module"] != "http" {
		t.Errorf("module: got %v, want http", entry["module"])
	}
}

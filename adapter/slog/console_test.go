package slogadapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/gatelog"
)

var at = time.Date(2024, 12, 31, 23, 59, 59, 123000000, time.UTC)

func TestConsole_JSON_EmitsTSAndExtras(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewJSON(&buf)
	c.Print(gatelog.PlainFormatter{}.Render(gatelog.LevelInfo, "state changed", []gatelog.Extra{
		gatelog.TextExtra("old"),
	}, at))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["ts"] != "2024-12-31T23:59:59.123Z" {
		t.Fatalf("ts mismatch: got %v", m["ts"])
	}
	if _, ok := m["time"]; ok {
		t.Fatalf("slog time should be dropped: %v", m)
	}
	if m["msg"] != "state changed" || m["level"] != "INFO" || m["severity"] != "INFO" {
		t.Fatalf("unexpected line: %v", m)
	}
	extras, _ := m["extras"].([]any)
	if len(extras) != 1 || extras[0] != "old" {
		t.Fatalf("extras mismatch: %v", m["extras"])
	}
}

func TestConsole_Text_ChannelLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewText(&buf)
	c.Print(gatelog.PlainFormatter{}.Render(gatelog.LevelWarn, "w", nil, at))
	c.Print(gatelog.PlainFormatter{}.Render(gatelog.LevelDebug, "d", nil, at))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "level=WARN") || !strings.Contains(lines[0], "severity=WARN") {
		t.Fatalf("warn line mismatch: %s", lines[0])
	}
	if !strings.Contains(lines[1], "level=INFO") || !strings.Contains(lines[1], "severity=DEBUG") {
		t.Fatalf("debug line mismatch: %s", lines[1])
	}
}

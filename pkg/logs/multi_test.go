package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	slog.New(h).Info("assessment saved", "user_id", "u1")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "assessment saved") {
			t.Errorf("%s handler missing record: %q", name, buf.String())
		}
		if !strings.Contains(buf.String(), "u1") {
			t.Errorf("%s handler missing attribute: %q", name, buf.String())
		}
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debugOut, infoOut bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&infoOut, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be enabled when any handler accepts it")
	}

	slog.New(h).Debug("cache warmed")

	if !strings.Contains(debugOut.String(), "cache warmed") {
		t.Errorf("debug handler dropped record: %q", debugOut.String())
	}
	if infoOut.Len() != 0 {
		t.Errorf("info handler should skip debug records, got %q", infoOut.String())
	}
}

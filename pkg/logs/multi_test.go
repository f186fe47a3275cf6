package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFansOutToAllHandlers(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	logger := slog.New(h)
	logger.Info("queue called", "serial", 7)

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "queue called") {
			t.Errorf("%s handler did not receive the record: %q", name, buf.String())
		}
	}
}

func TestMultiHandlerRespectsPerHandlerLevel(t *testing.T) {
	var info, errOnly bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected Enabled to be true when any handler accepts the level")
	}

	slog.New(h).Info("stock adjusted")

	if !strings.Contains(info.String(), "stock adjusted") {
		t.Error("info-level handler should have received the record")
	}
	if errOnly.Len() != 0 {
		t.Errorf("error-level handler should have been skipped, got %q", errOnly.String())
	}
}

func TestMultiHandlerWithAttrsPropagates(t *testing.T) {
	var a, b bytes.Buffer
	var h slog.Handler = &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	}}

	h = h.WithAttrs([]slog.Attr{slog.String("service", "niramoy_backend")})
	slog.New(h).Info("started")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "niramoy_backend") {
			t.Errorf("%s handler missing attrs added via WithAttrs: %q", name, buf.String())
		}
	}
}

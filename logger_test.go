package nyx

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// recordingHandler keeps every record it receives.
type recordingHandler struct {
	mu      sync.Mutex
	level   slog.Level
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	h.records = append(h.records, r.Clone())
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Message
	}
	return out
}

func TestLoggerSilentByDefault(t *testing.T) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	h := nopHandler{}
	for _, level := range levels {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler enabled for %v", level)
		}
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("cycle", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs should keep the nop handler")
	}
	if _, ok := h.WithGroup("blob").(nopHandler); !ok {
		t.Error("WithGroup should keep the nop handler")
	}
}

func TestSetLoggerRoutesRecords(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	rec := &recordingHandler{level: slog.LevelInfo}
	SetLogger(slog.New(rec))

	Logger().Debug("dropped below level")
	Logger().Info("animator started", "complexity", 3)
	Logger().Warn("save failed", "name", "untitled_0.png")

	got := rec.messages()
	want := []string{"animator started", "save failed"}
	if len(got) != len(want) {
		t.Fatalf("messages = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	SetLogger(slog.New(&recordingHandler{}))
	SetLogger(nil)

	if Logger() == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should silence the logger")
	}
}

func TestLoggerSwapDuringUse(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	rec := &recordingHandler{level: slog.LevelDebug}
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("tick")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(rec))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

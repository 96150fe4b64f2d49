package importer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
)

// Notifier receives status messages as an import progresses
type Notifier interface {
	Notify(ctx context.Context, n importer.Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n importer.Notification)

// Notify calls f
func (f NotifierFunc) Notify(ctx context.Context, n importer.Notification) {
	f(ctx, n)
}

// SlogNotifier writes notifications to the default logger
type SlogNotifier struct{}

// Notify logs errors at error level and everything else at info
func (SlogNotifier) Notify(ctx context.Context, n importer.Notification) {
	if n.Level == importer.LevelError {
		slog.ErrorContext(ctx, n.Message, "notification", n.Level)
		return
	}
	slog.InfoContext(ctx, n.Message, "notification", n.Level)
}

// Recorder keeps every notification it receives
type Recorder struct {
	mu    sync.Mutex
	items []importer.Notification
}

// Notify records n
func (r *Recorder) Notify(_ context.Context, n importer.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Notifications returns a copy of what was recorded
func (r *Recorder) Notifications() []importer.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]importer.Notification(nil), r.items...)
}

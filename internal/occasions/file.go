package occasions

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
)

// FileSource reads events from a local JSON file. It stands in for a real
// calendar integration on platforms without one; a missing file means no
// events, not an error.
type FileSource struct {
	Path string
}

type fileEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
}

func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

func (s FileSource) Events(ctx context.Context, from, to time.Time) ([]Event, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []fileEvent
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	var out []Event
	for _, e := range entries {
		if e.Start.Before(from) || e.Start.After(to) {
			continue
		}
		out = append(out, Event{ID: e.ID, Title: e.Title, Start: e.Start})
	}
	return out, nil
}

// LogScheduler records reminders in the application log instead of firing
// platform notifications.
type LogScheduler struct {
	Logger *zap.Logger
}

func (s LogScheduler) Schedule(ctx context.Context, title string, at time.Time) error {
	s.Logger.Info("reminder scheduled", zap.String("title", title), zap.Time("at", at))
	return nil
}

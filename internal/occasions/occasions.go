// Package occasions consumes the platform calendar as a read-only
// collaborator: it classifies upcoming events as gift-worthy and computes
// reminder times. It makes no scheduling or network calls itself.
package occasions

import (
	"context"
	"sort"
	"strings"
	"time"
)

// EventType classifies a calendar event.
type EventType string

const (
	Birthday    EventType = "birthday"
	Anniversary EventType = "anniversary"
	Holiday     EventType = "holiday"
	Other       EventType = "other"
)

// Event is a calendar entry as surfaced by an EventSource.
type Event struct {
	ID    string
	Title string
	Start time.Time
	Type  EventType
}

// EventSource lists raw calendar events in a window. Implementations wrap
// whatever the platform provides.
type EventSource interface {
	Events(ctx context.Context, from, to time.Time) ([]Event, error)
}

// ReminderScheduler schedules a one-way notification. Implementations wrap
// the platform notifier; failures there are not this package's concern.
type ReminderScheduler interface {
	Schedule(ctx context.Context, title string, at time.Time) error
}

// Classify derives an event type from its title.
func Classify(title string) EventType {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "birthday") || strings.Contains(t, "bday"):
		return Birthday
	case strings.Contains(t, "anniversary") || strings.Contains(t, "wedding"):
		return Anniversary
	case strings.Contains(t, "christmas") || strings.Contains(t, "hanukkah"):
		return Holiday
	default:
		return Other
	}
}

// Giftworthy filters events down to the ones worth buying a gift for,
// classifying each and ordering by start date.
func Giftworthy(events []Event) []Event {
	var out []Event
	for _, e := range events {
		e.Type = Classify(e.Title)
		if e.Type == Other {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// reminderLeadDays is how far ahead of an occasion the reminder fires.
const reminderLeadDays = 7

// ReminderTime returns 09:00 local time, reminderLeadDays before the
// occasion. Zero time when that moment is already in the past relative to
// now.
func ReminderTime(occasion, now time.Time) time.Time {
	day := occasion.AddDate(0, 0, -reminderLeadDays)
	at := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, occasion.Location())
	if at.Before(now) {
		return time.Time{}
	}
	return at
}

// Upcoming lists gift-worthy events in the next windowDays and is the single
// entry point the wizard uses.
func Upcoming(ctx context.Context, src EventSource, now time.Time, windowDays int) ([]Event, error) {
	events, err := src.Events(ctx, now, now.AddDate(0, 0, windowDays))
	if err != nil {
		return nil, err
	}
	return Giftworthy(events), nil
}

// Package events publishes a change event for every record written through
// the API, so downstream consumers can follow bookings, stock and payroll
// without polling the database.
package events

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPublisherClosed = errors.New("event publisher is closed")

	ErrEmptyRecordID = errors.New("event record ID cannot be empty")
)

type Type string

const (
	Created Type = "created"
	Updated Type = "updated"
	Deleted Type = "deleted"
)

// Header keys attached to every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Event describes one successful write. Record is the document as returned
// to the client; it is omitted for deletes.
type Event struct {
	ID         string    `json:"event_id"`
	Type       Type      `json:"type"`
	Resource   string    `json:"resource"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Record     any       `json:"record,omitempty"`
}

func New(eventType Type, resource, recordID string, record any) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Resource:   resource,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
		Record:     record,
	}
}

// Name is the dotted event type carried in the event-type header,
// e.g. "booking.created".
func (e Event) Name() string {
	return e.Resource + "." + string(e.Type)
}

func (e Event) encode() ([]byte, error) {
	return json.Marshal(e)
}

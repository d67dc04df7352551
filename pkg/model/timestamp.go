package model

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// timestampLayouts are tried in order. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a client-supplied date. It reads RFC 3339, ISO 8601 without a
// zone offset (as sent by Dart's toIso8601String), a bare calendar date, or
// milliseconds since the epoch, and is stored as a BSON datetime.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func ParseTimestamp(s string) (Timestamp, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimestamp(t), nil
		}
		lastErr = err
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, lastErr)
}

// StdTime returns the wrapped time, or nil for a nil Timestamp.
func (t *Timestamp) StdTime() *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] != '"' {
		var ms int64
		if err := json.Unmarshal(data, &ms); err != nil {
			return err
		}
		*t = NewTimestamp(time.UnixMilli(ms))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *Timestamp) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	if typ == bsontype.Null {
		t.Time = time.Time{}
		return nil
	}

	var v time.Time
	if err := bson.UnmarshalValue(typ, data, &v); err != nil {
		return err
	}
	t.Time = v.UTC()
	return nil
}

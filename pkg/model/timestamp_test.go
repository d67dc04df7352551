package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", `"2024-02-10T08:30:00Z"`, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2024-02-10T10:30:00+02:00"`, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)},
		{"iso without offset", `"2024-02-10T08:30:00.000"`, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)},
		{"iso with microseconds", `"2024-02-10T08:30:00.123456"`, time.Date(2024, 2, 10, 8, 30, 0, 123456000, time.UTC)},
		{"plain date", `"2024-02-10"`, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1707553800000`, time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestamp_UnmarshalJSON_Rejects(t *testing.T) {
	for _, input := range []string{`"10/02/2024"`, `"2024-13-01"`, `"tomorrow"`, `true`} {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(input), &ts), input)
	}
}

func TestTimestamp_InvalidStringIsParseError(t *testing.T) {
	var in ExpenseInput
	err := json.Unmarshal([]byte(`{"date":"10/02/2024"}`), &in)

	var parseErr *time.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestTimestamp_NullLeavesPointerNil(t *testing.T) {
	var in ExpenseInput
	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &in))
	assert.Nil(t, in.Date)
}

func TestTimestamp_MarshalJSONIsRFC3339(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	out, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-01T00:00:00Z"`, string(out))
}

func TestTimestamp_StoredAsDatetime(t *testing.T) {
	at := NewTimestamp(time.Date(2024, 1, 4, 11, 0, 0, 0, time.UTC))
	doc, err := bson.Marshal(BookingUpdate{CheckOut: &at})
	require.NoError(t, err)

	raw := bson.Raw(doc)
	assert.Equal(t, bsontype.DateTime, raw.Lookup("checkOut").Type)
	_, missingErr := raw.LookupErr("checkIn")
	assert.Error(t, missingErr)

	var back Booking
	require.NoError(t, bson.Unmarshal(doc, &back))
	require.NotNil(t, back.CheckOut)
	assert.True(t, at.Equal(back.CheckOut.Time))
}

func TestTimestamp_StdTime(t *testing.T) {
	var missing *Timestamp
	assert.Nil(t, missing.StdTime())

	ts := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, ts.StdTime())
	assert.Equal(t, ts.Time, *ts.StdTime())
}

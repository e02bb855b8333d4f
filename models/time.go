package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// utcLayout is fixed-width so the stored strings sort lexicographically in
// chronological order, which the newest-first list endpoints depend on.
const utcLayout = "2006-01-02T15:04:05.000000Z07:00"

// UTCTime is a timestamp that serializes as an ISO-8601 UTC string on the
// wire and is stored in MongoDB as that same string, so values round-trip
// through create, store and read without losing precision.
type UTCTime time.Time

// Now returns the current UTC time truncated to the stored precision.
func Now() UTCTime {
	return UTCTime(time.Now().UTC().Truncate(time.Microsecond))
}

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime(t.UTC().Truncate(time.Microsecond))
}

func (t UTCTime) Time() time.Time {
	return time.Time(t)
}

func (t UTCTime) String() string {
	return time.Time(t).UTC().Format(utcLayout)
}

func (t UTCTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = NewUTCTime(parsed)
	return nil
}

func (t UTCTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.String())
}

// UnmarshalBSONValue accepts both the string form this API writes and native
// BSON datetimes, for documents written by other tooling.
func (t *UTCTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.String:
		parsed, err := time.Parse(time.RFC3339Nano, rv.StringValue())
		if err != nil {
			return fmt.Errorf("invalid stored timestamp %q: %w", rv.StringValue(), err)
		}
		*t = NewUTCTime(parsed)
		return nil
	case bsontype.DateTime:
		*t = NewUTCTime(rv.Time())
		return nil
	case bsontype.Null:
		*t = UTCTime{}
		return nil
	default:
		return fmt.Errorf("cannot decode BSON %s into UTCTime", bt)
	}
}

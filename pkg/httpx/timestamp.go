package httpx

import (
	"bytes"
	"fmt"
	"time"
)

// LocalDateTimeLayout renders a wall-clock timestamp without zone information.
const LocalDateTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalDateTime is a time.Time that encodes as an ISO-8601 local date-time
// (no offset). The zero value encodes as null.
type LocalDateTime time.Time

// Time returns the underlying time.Time.
func (t LocalDateTime) Time() time.Time { return time.Time(t) }

// String formats t with LocalDateTimeLayout.
func (t LocalDateTime) String() string { return time.Time(t).Format(LocalDateTimeLayout) }

// MarshalJSON implements json.Marshaler.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Values are read in time.Local.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = LocalDateTime{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("httpx: local date-time must be a JSON string, got %s", data)
	}
	parsed, err := time.ParseInLocation(LocalDateTimeLayout, string(data[1:len(data)-1]), time.Local)
	if err != nil {
		return fmt.Errorf("httpx: parse local date-time: %w", err)
	}
	*t = LocalDateTime(parsed)
	return nil
}

// Package stamp provides the timestamp value type used on every record.
//
// Stamps are instants with millisecond granularity, serialized in RFC 3339
// so that the stored state stays human-readable and diff-friendly.
package stamp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Granularity is the finest resolution a Stamp can hold. Anything finer is
// truncated at creation so that a Stamp survives a store/load round trip
// unchanged.
const Granularity = time.Millisecond

// Stamp represents the instant a record was created.
type Stamp struct {
	t time.Time
}

// New returns a normalized Stamp for the given instant.
func New(t time.Time) Stamp { return Stamp{t.UTC().Truncate(Granularity)} }

// Now returns the current instant.
func Now() Stamp { return New(time.Now()) }

// Parse parses a Stamp from an RFC 3339 string, with or without fractional
// seconds.
func Parse(str string) (Stamp, error) {
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return Stamp{}, fmt.Errorf("invalid timestamp %q want RFC 3339: %w", str, err)
	}
	return New(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Stamp {
	s, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Before reports whether the stamp s is before x.
func (s Stamp) Before(x Stamp) bool { return s.t.Before(x.t) }

// After reports whether the stamp s is after x.
func (s Stamp) After(x Stamp) bool { return s.t.After(x.t) }

// Equal reports whether s and x denote the same instant.
func (s Stamp) Equal(x Stamp) bool { return s.t.Equal(x.t) }

// IsZero reports whether the stamp is the zero value.
func (s Stamp) IsZero() bool { return s.t.IsZero() }

// Add returns a new Stamp shifted by the given duration.
func (s Stamp) Add(d time.Duration) Stamp { return New(s.t.Add(d)) }

// Time returns the underlying instant.
func (s Stamp) Time() time.Time { return s.t }

// String formats the stamp in its standard RFC 3339 format.
func (s Stamp) String() string { return s.t.Format(time.RFC3339Nano) }

// Day formats only the calendar day part, for compact table rendering.
func (s Stamp) Day() string { return s.t.Format("2006-01-02") }

// UnmarshalJSON implements the json specific way to unmarshal a stamp from a
// json string.
func (s *Stamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	str := s.String()
	return json.Marshal(&str)
}

// check that a Stamp pointer is a valid json marshal/unmarshal type.
var _ json.Marshaler = (*Stamp)(nil)
var _ json.Unmarshaler = (*Stamp)(nil)

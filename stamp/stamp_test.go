package stamp

import (
	"encoding/json"
	"testing"
	"time"
)

// TestNew asserts that New is canonical and gives comparable stamps.
func TestNew(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	s1 := New(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s2 := New(time.Date(2024, 1, 1, 14, 0, 0, 0, loc))

	if !s1.Equal(s2) {
		t.Errorf("same instant in different zones gives two different stamps: %v vs %v", s1, s2)
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"2024-01-01T00:00:00Z",
		"2024-02-01T10:30:00.5Z",
		"2025-12-31T23:59:59.999Z",
	}
	for _, str := range cases {
		s, err := Parse(str)
		if err != nil {
			t.Fatalf("Parse(%q): %v", str, err)
		}
		round, err := Parse(s.String())
		if err != nil {
			t.Fatalf("Parse(String(%q)): %v", str, err)
		}
		if !s.Equal(round) {
			t.Errorf("round trip of %q: got %v want %v", str, round, s)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, str := range []string{"", "2024-01-01", "not a time", "01/02/2024"} {
		if _, err := Parse(str); err == nil {
			t.Errorf("Parse(%q): want error, got none", str)
		}
	}
}

func TestOrdering(t *testing.T) {
	early := MustParse("2024-01-01T00:00:00Z")
	late := MustParse("2024-02-01T00:00:00Z")

	if !early.Before(late) {
		t.Errorf("%v should be before %v", early, late)
	}
	if !late.After(early) {
		t.Errorf("%v should be after %v", late, early)
	}
	if early.After(late) || late.Before(early) {
		t.Error("ordering is not antisymmetric")
	}
}

func TestJSON(t *testing.T) {
	s := MustParse("2024-03-15T08:45:00Z")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-15T08:45:00Z"` {
		t.Errorf("marshal: got %s", data)
	}
	var back Stamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !s.Equal(back) {
		t.Errorf("json round trip: got %v want %v", back, s)
	}
}

func TestDay(t *testing.T) {
	s := MustParse("2024-03-15T23:59:00Z")
	if got := s.Day(); got != "2024-03-15" {
		t.Errorf("Day(): got %q", got)
	}
}

package profin

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	if got := M(2000).Add(M(6000)); !got.Equal(M(8000)) {
		t.Errorf("2000+6000: got %s", got)
	}
	if got := M(8000).Sub(M(1250)); !got.Equal(M(6750)) {
		t.Errorf("8000-1250: got %s", got)
	}
	if !M(-1).IsNegative() {
		t.Error("M(-1) should be negative")
	}
	if !M(0).IsZero() {
		t.Error("M(0) should be zero")
	}
	if !M(99.5).LessThan(M(100)) {
		t.Error("99.5 should be less than 100")
	}
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney("99.90")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if !got.Equal(M(99.90)) {
		t.Errorf("ParseMoney(99.90): got %s", got)
	}
	if _, err := ParseMoney("not a number"); err == nil {
		t.Error("ParseMoney should reject garbage")
	}
}

func TestMoneyJSONIsBareNumber(t *testing.T) {
	data, err := json.Marshal(M(450))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "450" {
		t.Errorf("marshal: got %s want bare number 450", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("1250.5"), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if !m.Equal(M(1250.5)) {
		t.Errorf("unmarshal number: got %s", m)
	}
	if err := json.Unmarshal([]byte(`"42"`), &m); err != nil {
		t.Fatalf("unmarshal quoted: %v", err)
	}
	if !m.Equal(M(42)) {
		t.Errorf("unmarshal quoted: got %s", m)
	}
}

func TestMoneyDisplay(t *testing.T) {
	cases := []struct {
		amount Money
		code   string
		want   string
	}{
		{M(5000), "USD", "$5,000.00"},
		{M(99.9), "EUR", "€99.90"},
	}
	for _, c := range cases {
		if got := c.amount.Display(c.code); got != c.want {
			t.Errorf("Display(%s, %s): got %q want %q", c.amount, c.code, got, c.want)
		}
	}
}

package money_test

import (
	"encoding/json"
	"testing"

	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"50.00", 5000, true},
		{"75.5", 7550, true},
		{"100", 10000, true},
		{"0.25", 25, true},
		{".50", 50, true},
		{"-20.00", -2000, true},
		{"", 0, false},
		{"12.345", 0, false},
		{"abc", 0, false},
		{".", 0, false},
	}
	for _, c := range cases {
		got, err := money.Parse(c.in)
		if c.ok && err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %d", c.in, got.Minor())
			}
			continue
		}
		if got.Minor() != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got.Minor(), c.want)
		}
	}
}

func TestString(t *testing.T) {
	if s := money.FromMinor(15000).String(); s != "150.00" {
		t.Errorf("expected 150.00, got %s", s)
	}
	if s := money.FromMinor(4925).String(); s != "49.25" {
		t.Errorf("expected 49.25, got %s", s)
	}
	if s := money.FromMinor(-75).String(); s != "-0.75" {
		t.Errorf("expected -0.75, got %s", s)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(money.FromMinor(5525))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"55.25"` {
		t.Fatalf(`expected "55.25", got %s`, b)
	}

	var a money.Amount
	if err := json.Unmarshal([]byte(`"40.00"`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Minor() != 4000 {
		t.Fatalf("expected 4000, got %d", a.Minor())
	}
}

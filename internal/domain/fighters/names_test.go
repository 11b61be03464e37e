package fighters

import (
	"testing"

	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Israel Adesanya", "Israel", "Adesanya"},
		{"  Jon   Jones ", "Jon", "Jones"},
		{"Alexandre Pantoja de Souza", "Alexandre", "Pantoja de Souza"},
		{"Shogun", "Shogun", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("SplitName(%q) = %q,%q want %q,%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}

func TestParseRecord(t *testing.T) {
	cases := []struct {
		in   string
		want Record
		ok   bool
	}{
		{"24-1-0", Record{Wins: 24, Losses: 1}, true},
		{"27-1-0 (1 NC)", Record{Wins: 27, Losses: 1}, true},
		{"10-2", Record{Wins: 10, Losses: 2}, true},
		{"5-5-1", Record{Wins: 5, Losses: 5, Draws: 1}, true},
		{"", Record{}, false},
		{"W-L-D", Record{}, false},
		{"1-2-3-4", Record{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseRecord(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseRecord(%q) = %+v,%v want %+v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchesChecksOptionalFields(t *testing.T) {
	f := Fighter{
		ID:          1,
		Name:        "Alex Pereira",
		Nickname:    optional.Some("Poatan"),
		WeightClass: optional.Some("Light Heavyweight"),
	}
	for _, q := range []string{"", "pereira", "poatan", "heavy"} {
		if !f.Matches(q) {
			t.Fatalf("expected %q to match", q)
		}
	}
	if f.Matches("brazil") {
		t.Fatalf("expected absent country not to match")
	}
}

func TestNewProfileDerivesDisplayFields(t *testing.T) {
	p := NewProfile(Fighter{ID: 7, Name: "Valentina Shevchenko", Record: optional.Some("23-4-1")})
	if p.FirstName != "Valentina" || p.LastName != "Shevchenko" {
		t.Fatalf("unexpected split %+v", p)
	}
	tally, ok := p.Tally.Get()
	if !ok || tally.Wins != 23 || tally.Losses != 4 || tally.Draws != 1 {
		t.Fatalf("unexpected tally %+v", p.Tally)
	}

	bare := NewProfile(Fighter{ID: 8, Name: "Unknown"})
	if bare.Tally.IsPresent() {
		t.Fatalf("expected no tally without a record")
	}
}

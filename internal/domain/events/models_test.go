package events

import "testing"

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"", FilterUpcoming, true},
		{"upcoming", FilterUpcoming, true},
		{"past", FilterPast, true},
		{"tomorrow", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseFilter(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseFilter(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

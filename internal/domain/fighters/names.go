package fighters

import (
	"strconv"
	"strings"
)

// SplitName splits a full name into the first token and the remainder.
// A single-token name has an empty last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// Record is a parsed "W-L-D" string.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// ParseRecord parses "W-L-D" (draws optional). Trailing annotations such as
// "(1 NC)" are ignored.
func ParseRecord(raw string) (Record, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " ("); i >= 0 {
		raw = raw[:i]
	}
	parts := strings.Split(raw, "-")
	if len(parts) < 2 || len(parts) > 3 {
		return Record{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Record{}, false
		}
		nums[i] = n
	}
	return Record{Wins: nums[0], Losses: nums[1], Draws: nums[2]}, true
}

// Matches reports whether the fighter matches a roster filter query on name,
// nickname, weight class, or country. The query must already be lowercased.
func (f Fighter) Matches(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), lowerQuery) {
		return true
	}
	for _, v := range []string{
		f.Nickname.OrElse(""),
		f.WeightClass.OrElse(""),
		f.Country.OrElse(""),
	} {
		if v != "" && strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}

package fighters

// MergePage appends the fighters of page whose id is not already present in
// existing. First-seen order is preserved and existing is not modified.
func MergePage(existing, page []Fighter) []Fighter {
	seen := make(map[int]struct{}, len(existing)+len(page))
	out := make([]Fighter, 0, len(existing)+len(page))
	for _, f := range existing {
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	for _, f := range page {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Filter returns the fighters matching a roster query.
func Filter(list []Fighter, lowerQuery string) []Fighter {
	if lowerQuery == "" {
		return list
	}
	out := make([]Fighter, 0, len(list))
	for _, f := range list {
		if f.Matches(lowerQuery) {
			out = append(out, f)
		}
	}
	return out
}

package aliases

// Expand returns ids plus every cross-catalog equivalent, preserving input
// order with equivalents appended after the id that introduced them.
// Expand is idempotent: Expand(Expand(x)) equals Expand(x).
func Expand(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	expanded := make([]string, 0, len(ids)*2)
	seen := make(map[string]struct{}, len(ids)*2)
	for _, id := range ids {
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			expanded = append(expanded, id)
		}
		other, ok := Equivalent(id)
		if !ok {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		expanded = append(expanded, other)
	}
	return expanded
}

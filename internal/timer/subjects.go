package timer

import "strings"

// SubjectCandidates returns general followed by the distinct, non-empty
// subjects in their original order.
func SubjectCandidates(general string, subjects []string) []string {
	seen := map[string]bool{general: true}
	out := []string{general}
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

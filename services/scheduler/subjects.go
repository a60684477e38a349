package scheduler

import "strings"

// DefaultSubjects is used when the user leaves the subject list empty.
var DefaultSubjects = []string{"Math", "Physics", "Chemistry", "Biology", "English"}

// ParseSubjects splits a comma-separated list, keeping order and duplicates.
// Blank entries are dropped; an empty result falls back to DefaultSubjects.
func ParseSubjects(raw string) []string {
	var subjects []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	if len(subjects) == 0 {
		return append([]string(nil), DefaultSubjects...)
	}
	return subjects
}

package career

import "strings"

// crossDisciplinary fields match every course.
var crossDisciplinary = map[string]bool{
	"general":            true,
	"cross-disciplinary": true,
	"cross disciplinary": true,
}

// fieldAliases lists, per field of study, the course names that count as
// belonging to it.
var fieldAliases = map[string][]string{
	"computer science": {"computer science", "information technology", "software engineering", "data science", "cybersecurity"},
	"data science":     {"data science", "computer science", "statistics", "business analytics", "information technology"},
	"business":         {"business", "management", "economics", "marketing", "accounting"},
	"medicine":         {"medicine", "medical technology", "biology", "nursing", "health sciences"},
	"engineering":      {"engineering", "mechanical", "civil", "electrical", "chemical", "industrial"},
}

// CourseMatchesField reports whether a subject in field is relevant to a
// student enrolled in course.
//
// A field matches when it is cross-disciplinary, when the course is empty,
// when either string contains the other, when one of the field's aliases
// appears in the course, or when the course shares a word with an alias.
func CourseMatchesField(course, field string) bool {
	f := strings.ToLower(strings.TrimSpace(field))
	if crossDisciplinary[f] {
		return true
	}
	c := strings.ToLower(strings.TrimSpace(course))
	if c == "" {
		return true
	}
	if strings.Contains(c, f) || strings.Contains(f, c) {
		return true
	}

	aliases, ok := fieldAliases[f]
	if !ok {
		aliases = []string{f}
	}
	for _, a := range aliases {
		if strings.Contains(c, a) {
			return true
		}
	}

	tokens := make(map[string]bool)
	for _, t := range strings.Fields(strings.ReplaceAll(c, "-", " ")) {
		tokens[t] = true
	}
	for _, a := range aliases {
		for _, w := range strings.Fields(a) {
			if tokens[w] {
				return true
			}
		}
	}
	return false
}

package analysis

import (
	"regexp"
	"strings"
)

// Matcher reports whether a signature occurs in s.
type Matcher interface {
	Match(s string) bool
}

// Literal matches a fixed substring.
type Literal struct {
	Text       string
	IgnoreCase bool
}

func (l Literal) Match(s string) bool {
	if l.IgnoreCase {
		return strings.Contains(strings.ToLower(s), strings.ToLower(l.Text))
	}
	return strings.Contains(s, l.Text)
}

// Pattern matches a regular expression. Case sensitivity is part of the
// expression, e.g. a leading (?i).
type Pattern struct {
	re *regexp.Regexp
}

func MustPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

func (p Pattern) Match(s string) bool {
	return p.re.MatchString(s)
}

func (p Pattern) String() string {
	return p.re.String()
}

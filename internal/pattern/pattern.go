// Package pattern turns a raw search term into a reusable line matcher.
package pattern

import (
	"fmt"
	"regexp"
)

// Term is the raw search input before compilation.
type Term struct {
	Raw        string // The search text or regular expression
	Regex      bool   // Interpret Raw as a regular expression
	IgnoreCase bool   // Case-insensitive matching
}

// InvalidPatternError reports a search term that is not a valid
// regular expression.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled search term. It is built once per run and
// applied to every line of every file.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from a Term.
//
// When Regex is false every metacharacter in Raw is escaped first, so
// matching has literal-substring semantics. Case-insensitivity is the
// engine's (?i) flag and does not change anchor or multi-line behavior.
// Compilation of an escaped literal cannot fail, so an
// *InvalidPatternError is only possible when Regex is true.
func Compile(t Term) (*Matcher, error) {
	expr := t.Raw
	if !t.Regex {
		expr = regexp.QuoteMeta(expr)
	}
	if t.IgnoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: t.Raw, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Match reports whether the pattern occurs anywhere within line.
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// String returns the compiled expression, for diagnostics.
func (m *Matcher) String() string {
	return m.re.String()
}

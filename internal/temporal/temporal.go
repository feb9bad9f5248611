// Package temporal parses free-form date and time text.
package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseError is returned when text cannot be interpreted as a date-time.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date-time", e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	epochRe = regexp.MustCompile(`^-?[0-9]+$`)

	normalizers = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`([\-.:/+])\s+`), "${1}"},
		{regexp.MustCompile(`([0-9\s]+T)\s+`), "${1}"},
		{regexp.MustCompile(`\s+([\-.:/+])`), "${1}"},
		{regexp.MustCompile(`\s+(T[0-9\s]+)`), "${1}"},
		{regexp.MustCompile(`\s{2,}`), " "},
	}
)

// Normalize removes whitespace around date and time separators and
// collapses whitespace runs, e.g. " 2021 - 01 - 01   12 : 00 " becomes
// "2021-01-01 12:00".
func Normalize(text string) string {
	for _, n := range normalizers {
		text = n.re.ReplaceAllString(text, n.repl)
	}
	return strings.TrimSpace(text)
}

// Parser interprets date-time text in a fixed location.
type Parser struct {
	// Location is used for text without a zone; nil means time.Local.
	Location *time.Location
}

func (p Parser) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// Parse accepts a Unix timestamp (all digits) or free-form date-time text
// such as "2021-01-01", "2021-01-01 12:00" or "2021-01-01T12:00:00Z".
// The result is expressed in the parser's location.
func (p Parser) Parse(text string) (time.Time, error) {
	s := Normalize(text)
	if s == "" {
		return time.Time{}, &ParseError{Text: text}
	}

	if epochRe.MatchString(s) {
		sec, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, &ParseError{Text: text, Err: err}
		}
		return p.ParseUnix(sec), nil
	}

	t, err := dateparse.ParseIn(s, p.location())
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Err: err}
	}
	return t.In(p.location()), nil
}

// ParseUnix returns the instant sec seconds after the Unix epoch.
func (p Parser) ParseUnix(sec int64) time.Time {
	return time.Unix(sec, 0).In(p.location())
}

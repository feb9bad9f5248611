// Package pattern compiles shell wildcards and raw regular expressions into
// immutable, ready-to-evaluate patterns.
package pattern

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags is a bit mask of match modifiers. The values are stable and may be
// persisted by callers.
type Flags int

const (
	CaseInsensitive Flags = 1 << iota // "i"
	Multiline                         // "m"
	DotAll                            // "s"
	Comments                          // "x"
	UTF8                              // "u"
)

// modifiers lists flags in rendering order.
var modifiers = []struct {
	flag   Flags
	letter byte
}{
	{CaseInsensitive, 'i'},
	{Multiline, 'm'},
	{DotAll, 's'},
	{Comments, 'x'},
	{UTF8, 'u'},
}

// String returns the modifier letters for f, e.g. "imsxu".
func (f Flags) String() string {
	var b strings.Builder
	for _, m := range modifiers {
		if f&m.flag != 0 {
			b.WriteByte(m.letter)
		}
	}
	return b.String()
}

// ParseFlags converts modifier letters ("i", "ms", ...) into Flags.
func ParseFlags(letters string) (Flags, error) {
	var f Flags
	for i := 0; i < len(letters); i++ {
		found := false
		for _, m := range modifiers {
			if letters[i] == m.letter {
				f |= m.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown pattern modifier %q", letters[i])
		}
	}
	return f, nil
}

// engineOptions maps flags onto regexp2 options. UTF8 has no engine
// counterpart; it switches on encoding validation instead.
func (f Flags) engineOptions() regexp2.RegexOptions {
	opts := regexp2.None
	if f&CaseInsensitive != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if f&Comments != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	return opts
}

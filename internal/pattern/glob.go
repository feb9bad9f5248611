package pattern

import "strings"

// DefaultSeparator is the directory separator used by the file filter.
const DefaultSeparator = "/"

// FromGlob translates a shell wildcard pattern into an anchored pattern.
//
//	*      any sequence of characters except the separator(s)
//	**     any sequence of characters including the separator(s)
//	?      exactly one character other than the separator(s)
//	[abc]  one character from the class
//	[!abc] one character not in the class
//	\c     the literal character c
//
// A class never matches a separator, even one inside a declared range such
// as "[.-0]". An empty separator lets every wildcard match anything.
// Leading periods are ordinary characters.
func FromGlob(glob, separator string, caseFold bool, opts ...Option) *Pattern {
	return New("^"+globToRegex(glob, separator)+"$", caseFoldFlags(caseFold), opts...)
}

// FromGlobs merges globs into one pattern that matches when any of them
// matches. Each alternative is anchored on its own. An empty list yields a
// pattern that matches nothing.
func FromGlobs(globs []string, separator string, caseFold bool, opts ...Option) *Pattern {
	if len(globs) == 0 {
		return New("(?!)", caseFoldFlags(caseFold), opts...)
	}
	alts := make([]string, len(globs))
	for i, g := range globs {
		alts[i] = "(^" + globToRegex(g, separator) + "$)"
	}
	return New(strings.Join(alts, "|"), caseFoldFlags(caseFold), opts...)
}

func caseFoldFlags(caseFold bool) Flags {
	if caseFold {
		return CaseInsensitive
	}
	return 0
}

// globToRegex translates glob into regex source without anchors.
func globToRegex(glob, separator string) string {
	sep := Quote(separator, "")
	anyRun, anyOne := ".*", "."
	if separator != "" {
		anyRun = "[^" + sep + "]*"
		anyOne = "[^" + sep + "]"
	}

	// Closing a class appends one negative lookbehind per separator char.
	var closeClass strings.Builder
	closeClass.WriteByte(']')
	for _, r := range separator {
		closeClass.WriteString("(?<!" + Quote(string(r), "") + ")")
	}

	var b strings.Builder
	runes := []rune(glob)
	inClass := false
	classStart := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\\' && i+1 < len(runes) {
			i++
			b.WriteString(Quote(string(runes[i]), ""))
			continue
		}

		if inClass {
			switch {
			case r == ']' && i > classStart:
				b.WriteString(closeClass.String())
				inClass = false
			case r == '-':
				b.WriteByte('-')
			default:
				b.WriteString(Quote(string(r), ""))
			}
			continue
		}

		switch r {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				i++
				b.WriteString(".*")
			} else {
				b.WriteString(anyRun)
			}
		case '?':
			b.WriteString(anyOne)
		case '[':
			inClass = true
			b.WriteByte('[')
			if i+1 < len(runes) && runes[i+1] == '!' {
				i++
				b.WriteByte('^')
			}
			// "]" right after the opening bracket is a class member.
			classStart = i + 1
		default:
			b.WriteString(Quote(string(r), ""))
		}
	}
	return b.String()
}

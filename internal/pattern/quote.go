package pattern

import (
	"sort"
	"strings"
)

// special lists every character with regex-syntax significance.
const special = `.\+*?[^]$(){}=!<>|:-#`

// Quote returns a literal pattern for s: every special character and every
// rune of delimiter is preceded by a backslash. '#' is always escaped so the
// result stays literal under the Comments flag.
func Quote(s, delimiter string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteString(`\000`)
			continue
		case r < 0x80 && strings.IndexByte(special, byte(r)) >= 0:
			b.WriteByte('\\')
		case delimiter != "" && strings.ContainsRune(delimiter, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bind substitutes placeholders in regex with quoted values in one pass.
// Longer placeholders win over their prefixes and substituted text is never
// scanned again.
func bind(regex string, binds map[string]string) string {
	if len(binds) == 0 {
		return regex
	}
	keys := make([]string, 0, len(binds))
	for k := range binds {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, Quote(binds[k], ""))
	}
	return strings.NewReplacer(pairs...).Replace(regex)
}

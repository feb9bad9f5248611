package pattern

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/dlclark/regexp2/syntax"
)

// Delimiter encloses the pattern source in its string form.
const Delimiter = '~'

// DefaultMatchTimeout bounds a single match. Exceeding it is reported as
// KindBacktrackLimit.
const DefaultMatchTimeout = time.Second

// Option configures a Pattern at construction.
type Option func(*options)

type options struct {
	binds   map[string]string
	timeout time.Duration
}

// WithBinds substitutes placeholders in the regex with the given values.
// Values are quoted automatically; do not quote them beforehand.
//
//	New(`^https?://(host\.)?example\.com$`, 0, WithBinds(map[string]string{"host": "www"}))
func WithBinds(binds map[string]string) Option {
	return func(o *options) { o.binds = binds }
}

// WithMatchTimeout overrides DefaultMatchTimeout. Zero or negative disables
// the limit.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Pattern is an immutable compiled regular expression. It is safe for
// concurrent use.
type Pattern struct {
	regex    string
	flags    Flags
	rendered string
	re       *regexp2.Regexp
	err      *Error
}

// New returns a pattern for regex (without delimiters or modifiers).
// Construction never fails: if the engine rejects the source, the error is
// reported by every Match call.
func New(regex string, flags Flags, opts ...Option) *Pattern {
	o := options{timeout: DefaultMatchTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pattern{
		regex: bind(regex, o.binds),
		flags: flags,
	}
	p.rendered = render(p.regex, flags)
	p.re, p.err = compile(p.regex, flags, o.timeout, p.rendered)
	return p
}

func render(regex string, flags Flags) string {
	d := string(Delimiter)
	return d + strings.ReplaceAll(regex, d, `\`+d) + d + flags.String()
}

func compile(regex string, flags Flags, timeout time.Duration, rendered string) (*regexp2.Regexp, *Error) {
	if flags&UTF8 != 0 && !utf8.ValidString(regex) {
		return nil, newError(KindMalformedUTF8, rendered, nil)
	}
	re, err := regexp2.Compile(regex, flags.engineOptions())
	if err != nil {
		var synErr *syntax.Error
		if errors.As(err, &synErr) && synErr.Code == syntax.ErrInternalError {
			return nil, newError(KindInternal, rendered, err)
		}
		return nil, newError(KindCompile, rendered, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}

// Regex returns the source with placeholders already replaced.
func (p *Pattern) Regex() string {
	return p.regex
}

// Flags returns the modifiers the pattern was compiled with.
func (p *Pattern) Flags() Flags {
	return p.flags
}

// String returns the delimited form, e.g. "~^a\~b$~i".
func (p *Pattern) String() string {
	return p.rendered
}

// Match reports whether subject contains a match of the pattern.
func (p *Pattern) Match(subject string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if p.flags&UTF8 != 0 && !utf8.ValidString(subject) {
		return false, newError(KindMalformedUTF8, p.rendered, nil)
	}
	ok, err := p.re.MatchString(subject)
	if err != nil {
		// Compilation already succeeded, so the only runtime failure is the
		// match timeout.
		return false, newError(KindBacktrackLimit, p.rendered, err)
	}
	return ok, nil
}

// MatchFrom is like Match but starts searching at byte offset. Anchors keep
// referring to the start of subject. An offset outside subject never
// matches; one inside a multi-byte character is an error.
func (p *Pattern) MatchFrom(subject string, offset int) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if offset < 0 || offset > len(subject) {
		return false, nil
	}
	if p.flags&UTF8 != 0 && !utf8.ValidString(subject) {
		return false, newError(KindMalformedUTF8, p.rendered, nil)
	}
	if offset < len(subject) && !utf8.RuneStart(subject[offset]) {
		return false, newError(KindBadUTF8Offset, p.rendered, nil)
	}
	m, err := p.re.FindStringMatchStartingAt(subject, offset)
	if err != nil {
		return false, newError(KindBacktrackLimit, p.rendered, err)
	}
	return m != nil, nil
}

// IsValid reports whether the pattern can be evaluated at all.
func (p *Pattern) IsValid() bool {
	_, err := p.Match("")
	return err == nil
}

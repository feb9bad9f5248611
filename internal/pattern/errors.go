package pattern

import "fmt"

// Kind classifies a pattern failure.
type Kind int

const (
	KindCompile Kind = iota
	KindInternal
	KindBacktrackLimit
	KindRecursionLimit
	KindMalformedUTF8
	KindBadUTF8Offset
)

var kindMessages = map[Kind]string{
	KindCompile:        "compilation failed due to unknown error",
	KindInternal:       "regex engine internal error occurred",
	KindBacktrackLimit: "backtracking limit exhausted",
	KindRecursionLimit: "recursion limit exhausted",
	KindMalformedUTF8:  "malformed UTF-8 characters, possibly incorrectly encoded",
	KindBadUTF8Offset:  "the offset did not correspond to the beginning of a valid UTF-8 code point",
}

func (k Kind) String() string {
	switch k {
	case KindCompile:
		return "compile"
	case KindInternal:
		return "internal"
	case KindBacktrackLimit:
		return "backtrack-limit"
	case KindRecursionLimit:
		return "recursion-limit"
	case KindMalformedUTF8:
		return "malformed-utf8"
	case KindBadUTF8Offset:
		return "bad-utf8-offset"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned when the engine rejects a pattern or fails while matching.
type Error struct {
	Kind    Kind
	Pattern string // rendered form, see Pattern.String
	Msg     string
	Err     error
}

func newError(kind Kind, p string, err error) *Error {
	msg := kindMessages[kind]
	if kind == KindCompile && err != nil {
		msg = err.Error()
	}
	return &Error{Kind: kind, Pattern: p, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("pattern %s: %s", e.Pattern, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

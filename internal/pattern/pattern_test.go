package pattern

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	in := `.+*?[^]$(){}=!<>|:-#\` + "~"
	quoted := `\.\+\*\?\[\^\]\$\(\)\{\}\=\!\<\>\|\:\-\#\\`

	assert.Equal(t, quoted+"~", Quote(in, ""))
	assert.Equal(t, quoted+`\~`, Quote(in, "~"))
	assert.Equal(t, `a\000b`, Quote("a\x00b", ""))
	assert.Equal(t, "ñ/x", Quote("ñ/x", ""))
}

// constructed mirrors the table of patterns used by the getter and match tests.
func constructed() []*Pattern {
	binds := map[string]string{"@bind1": "~value1", "bind2": "#value2"}
	return []*Pattern{
		0: New(`^[a-z]\:\\DIR~1\\file\.txt$`, 0),
		1: New(`file\.(jpg|png)`, CaseInsensitive),
		2: New("^line[0-9]$\n^line[0-9]$", Multiline),
		3: New(`^line1.*line2$`, DotAll),
		4: New(`.* # match all`, Comments),
		5: New("\xc3\xb1", UTF8),
		6: New("UTF8\xc3\xb1.*$ #UTF8 regex", CaseInsensitive|Multiline|DotAll|Comments|UTF8),
		7: New(`^Binds~@bind1\\bind2$`, CaseInsensitive|Comments, WithBinds(binds)),
		8: New(`^Binds~@bind1\\bind2$`, CaseInsensitive, WithBinds(binds)),
	}
}

func TestPatternAccessors(t *testing.T) {
	tests := []struct {
		name     string
		idx      int
		regex    string
		flags    Flags
		rendered string
	}{
		{"basic", 0, `^[a-z]\:\\DIR~1\\file\.txt$`, 0, `~^[a-z]\:\\DIR\~1\\file\.txt$~`},
		{"case insensitive", 1, `file\.(jpg|png)`, CaseInsensitive, `~file\.(jpg|png)~i`},
		{"multiline", 2, "^line[0-9]$\n^line[0-9]$", Multiline, "~^line[0-9]$\n^line[0-9]$~m"},
		{"dotall", 3, `^line1.*line2$`, DotAll, `~^line1.*line2$~s`},
		{"comments", 4, `.* # match all`, Comments, `~.* # match all~x`},
		{"utf8", 5, "\xc3\xb1", UTF8, "~\xc3\xb1~u"},
		{"all flags", 6, "UTF8\xc3\xb1.*$ #UTF8 regex", CaseInsensitive | Multiline | DotAll | Comments | UTF8, "~UTF8\xc3\xb1.*$ #UTF8 regex~imsxu"},
		{"binds with comments", 7, `^Binds~~value1\\\#value2$`, CaseInsensitive | Comments, `~^Binds\~\~value1\\\#value2$~ix`},
		{"binds", 8, `^Binds~~value1\\\#value2$`, CaseInsensitive, `~^Binds\~\~value1\\\#value2$~i`},
	}

	patterns := constructed()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := patterns[tt.idx]
			assert.Equal(t, tt.regex, p.Regex())
			assert.Equal(t, tt.flags, p.Flags())
			assert.Equal(t, tt.rendered, p.String())
			assert.True(t, p.IsValid())
		})
	}
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		name    string
		idx     int
		subject string
		want    bool
	}{
		{"basic match", 0, `c:\DIR~1\file.txt`, true},
		{"basic case mismatch", 0, `C:\DIR~1\file.txt`, false},
		{"case insensitive", 1, "FILE.PNG", true},
		{"multiline", 2, "line1\nline2", true},
		{"dotall", 3, "line1\nline2", true},
		{"comments", 4, "subject", true},
		{"utf8", 5, "\xc3\xb1", true},
		{"all flags", 6, "utf8\xc3\xb1\nline2", true},
		{"binds with comments", 7, `Binds~~value1\#value2`, true},
		{"binds case insensitive", 8, `binds~~value1\#value2`, true},
	}

	patterns := constructed()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := patterns[tt.idx].Match(tt.subject)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindsAreNotRescanned(t *testing.T) {
	// The value of "a" contains the placeholder "b"; it must stay literal.
	p := New(`^a-b$`, 0, WithBinds(map[string]string{"a": "b", "b": "x"}))
	assert.Equal(t, `^b-x$`, p.Regex())

	// Longer placeholders win over their prefixes.
	p = New(`^:idx:id$`, 0, WithBinds(map[string]string{":id": "1", ":idx": "2"}))
	assert.Equal(t, `^21$`, p.Regex())
}

func TestBindValuesAreQuoted(t *testing.T) {
	p := New(`^host$`, 0, WithBinds(map[string]string{"host": "a.b"}))
	ok, err := p.Match("a.b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Match("axb")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		subject string
		kind    Kind
	}{
		{"unclosed bracket", New("[", 0), "[", KindCompile},
		{"malformed utf8 subject", New("foo", UTF8), "\xf8\xa1\xa1\xa1\xa1", KindMalformedUTF8},
		{"malformed utf8 regex", New("\xf8\xa1\xa1\xa1\xa1", UTF8), "foo", KindMalformedUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pattern.Match(tt.subject)
			require.Error(t, err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.pattern.String(), perr.Pattern)
		})
	}
}

func TestMalformedUTF8Message(t *testing.T) {
	_, err := New("foo", UTF8).Match("\xff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestIsValid(t *testing.T) {
	assert.False(t, New("[", 0).IsValid())
	assert.False(t, New("\xf8\xa1\xa1\xa1\xa1", UTF8).IsValid())
	assert.False(t, New("(a", 0).IsValid())
	assert.True(t, New("a|b", 0).IsValid())
}

func TestBacktrackLimit(t *testing.T) {
	p := New(`^(a+)+$`, 0, WithMatchTimeout(50*time.Millisecond))
	subject := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa!"

	_, err := p.Match(subject)
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindBacktrackLimit, perr.Kind)
}

func TestMatchFrom(t *testing.T) {
	p := New(`b`, UTF8)

	ok, err := p.MatchFrom("abc", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.MatchFrom("abc", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.MatchFrom("abc", 10)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = p.MatchFrom("ñb", 1)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindBadUTF8Offset, perr.Kind)

	ok, err = p.MatchFrom("ñb", 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("xi")
	require.NoError(t, err)
	assert.Equal(t, CaseInsensitive|Comments, f)
	assert.Equal(t, "ix", f.String())

	f, err = ParseFlags("")
	require.NoError(t, err)
	assert.Equal(t, Flags(0), f)

	_, err = ParseFlags("g")
	assert.Error(t, err)
}

func TestFlagValuesAreStable(t *testing.T) {
	assert.Equal(t, Flags(1), CaseInsensitive)
	assert.Equal(t, Flags(2), Multiline)
	assert.Equal(t, Flags(4), DotAll)
	assert.Equal(t, Flags(8), Comments)
	assert.Equal(t, Flags(16), UTF8)
}

func TestConcurrentMatch(t *testing.T) {
	p := FromGlobs([]string{"*.jpg", "*.png"}, DefaultSeparator, true)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ok, err := p.Match("photo.JPG")
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}

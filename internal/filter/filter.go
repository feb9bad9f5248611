// Package filter decides which files are acceptable by name, size and
// modification time.
package filter

import (
	"cmp"
	"time"

	"github.com/ivoronin/fsfilter/internal/bytesize"
	"github.com/ivoronin/fsfilter/internal/pattern"
	"github.com/ivoronin/fsfilter/internal/predicate"
	"github.com/ivoronin/fsfilter/internal/temporal"
)

// SizeParser turns size text such as "1 KB" into bytes.
type SizeParser interface {
	Parse(text string) (int64, error)
}

// TimeParser turns date-time text into an instant.
type TimeParser interface {
	Parse(text string) (time.Time, error)
}

// Candidate describes a file to be checked.
type Candidate struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Filter holds name patterns and size/time predicates. Configure it from a
// single goroutine, then query it from any number of goroutines.
type Filter struct {
	whitelist *pattern.Pattern
	blacklist *pattern.Pattern
	nameRegex *pattern.Pattern
	sizes     []predicate.Clause[int64]
	times     []predicate.Clause[time.Time]

	sizeParser  SizeParser
	timeParser  TimeParser
	patternOpts []pattern.Option
}

// Option configures a Filter.
type Option func(*Filter)

// WithSizeParser replaces the default bytesize parser.
func WithSizeParser(p SizeParser) Option {
	return func(f *Filter) { f.sizeParser = p }
}

// WithTimeParser replaces the default temporal parser (local time zone).
func WithTimeParser(p TimeParser) Option {
	return func(f *Filter) { f.timeParser = p }
}

// WithMatchTimeout bounds each whitelist/blacklist match.
func WithMatchTimeout(d time.Duration) Option {
	return func(f *Filter) {
		f.patternOpts = append(f.patternOpts, pattern.WithMatchTimeout(d))
	}
}

// New returns an empty filter that accepts everything.
func New(opts ...Option) *Filter {
	f := &Filter{
		sizeParser: bytesize.Parser{},
		timeParser: temporal.Parser{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetWhitelist sets the shell wildcard patterns a name must match. An empty
// list removes the whitelist.
func (f *Filter) SetWhitelist(globs []string, separator string, caseFold bool) *Filter {
	f.whitelist = f.globs(globs, separator, caseFold)
	return f
}

// SetBlacklist sets the shell wildcard patterns a name must not match. An
// empty list removes the blacklist.
func (f *Filter) SetBlacklist(globs []string, separator string, caseFold bool) *Filter {
	f.blacklist = f.globs(globs, separator, caseFold)
	return f
}

func (f *Filter) globs(globs []string, separator string, caseFold bool) *pattern.Pattern {
	if len(globs) == 0 {
		return nil
	}
	return pattern.FromGlobs(globs, separator, caseFold, f.patternOpts...)
}

// SetNameRegex sets a regular expression the name must match; nil removes it.
func (f *Filter) SetNameRegex(p *pattern.Pattern) *Filter {
	f.nameRegex = p
	return f
}

// SetSizePredicate sets the size constraint from text such as "1KB",
// "< 1 MB" or "> 1 KB < 1 MB". On error the previous constraint is kept.
// Size parser errors are returned unchanged.
func (f *Filter) SetSizePredicate(text string) error {
	raws, err := predicate.Parse(text)
	if err != nil {
		return err
	}
	clauses, err := predicate.Resolve(raws, f.sizeParser.Parse)
	if err != nil {
		return err
	}
	if err := predicate.Validate(clauses); err != nil {
		return err
	}
	f.sizes = clauses
	return nil
}

// SetSize requires the size to be exactly bytes.
func (f *Filter) SetSize(bytes int64) *Filter {
	f.sizes = []predicate.Clause[int64]{{Operator: predicate.OpEqual, Value: bytes}}
	return f
}

// SetTimePredicate sets the modification time constraint from text such as
// "2021-03-01", "<> 2021-03-01" or "> 2021-01-01 < 2021-03-01". On error
// the previous constraint is kept. Time parser errors are returned unchanged.
func (f *Filter) SetTimePredicate(text string) error {
	raws, err := predicate.Parse(text)
	if err != nil {
		return err
	}
	clauses, err := predicate.Resolve(raws, f.timeParser.Parse)
	if err != nil {
		return err
	}
	if err := predicate.Validate(clauses); err != nil {
		return err
	}
	f.times = clauses
	return nil
}

// SetTime requires the modification time to be exactly t.
func (f *Filter) SetTime(t time.Time) *Filter {
	f.times = []predicate.Clause[time.Time]{{Operator: predicate.OpEqual, Value: t}}
	return f
}

// SetUnixTime requires the modification time to be exactly sec seconds
// after the Unix epoch.
func (f *Filter) SetUnixTime(sec int64) *Filter {
	return f.SetTime(time.Unix(sec, 0))
}

// NameMatches reports whether name is whitelisted (or no whitelist is set),
// is not blacklisted, and matches the name regex (if set).
func (f *Filter) NameMatches(name string) (bool, error) {
	if f.whitelist != nil {
		ok, err := f.whitelist.Match(name)
		if err != nil || !ok {
			return false, err
		}
	}
	if f.blacklist != nil {
		ok, err := f.blacklist.Match(name)
		if err != nil || ok {
			return false, err
		}
	}
	if f.nameRegex != nil {
		ok, err := f.nameRegex.Match(name)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// SizeMatches reports whether size satisfies every size clause.
func (f *Filter) SizeMatches(size int64) bool {
	ok, err := predicate.Match(f.sizes, size, cmp.Compare[int64])
	return err == nil && ok
}

// MTimeMatches reports whether t satisfies every modification time clause.
func (f *Filter) MTimeMatches(t time.Time) bool {
	ok, err := predicate.Match(f.times, t, time.Time.Compare)
	return err == nil && ok
}

// Matches checks name, size and modification time of c. A nil filter
// accepts everything.
func (f *Filter) Matches(c Candidate) (bool, error) {
	if f == nil {
		return true, nil
	}
	ok, err := f.NameMatches(c.Name)
	if err != nil || !ok {
		return false, err
	}
	return f.SizeMatches(c.Size) && f.MTimeMatches(c.ModTime), nil
}

// Whitelist returns the compiled whitelist, or nil.
func (f *Filter) Whitelist() *pattern.Pattern { return f.whitelist }

// Blacklist returns the compiled blacklist, or nil.
func (f *Filter) Blacklist() *pattern.Pattern { return f.blacklist }

// NameRegex returns the name regex, or nil.
func (f *Filter) NameRegex() *pattern.Pattern { return f.nameRegex }

// SizeClauses returns a copy of the size clauses.
func (f *Filter) SizeClauses() []predicate.Clause[int64] {
	return append([]predicate.Clause[int64](nil), f.sizes...)
}

// TimeClauses returns a copy of the modification time clauses.
func (f *Filter) TimeClauses() []predicate.Clause[time.Time] {
	return append([]predicate.Clause[time.Time](nil), f.times...)
}

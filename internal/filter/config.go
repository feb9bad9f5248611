package filter

import (
	"fmt"

	"github.com/ivoronin/fsfilter/internal/pattern"
)

// Config is the declarative form of a Filter, as read from flags, a config
// file or the environment. Empty fields leave the matching aspect
// unconstrained.
type Config struct {
	Include       []string `mapstructure:"include" json:"include,omitempty"`
	Exclude       []string `mapstructure:"exclude" json:"exclude,omitempty"`
	Separator     string   `mapstructure:"separator" json:"separator"`
	CaseSensitive bool     `mapstructure:"case_sensitive" json:"case_sensitive"`
	Regex         string   `mapstructure:"regex" json:"regex,omitempty"`
	RegexFlags    string   `mapstructure:"regex_flags" json:"regex_flags,omitempty"`
	Size          string   `mapstructure:"size" json:"size,omitempty"`
	MTime         string   `mapstructure:"mtime" json:"mtime,omitempty"`
}

// FromConfig builds a Filter from cfg. The name regex is compiled eagerly
// so that an invalid expression is reported here rather than on first use.
func FromConfig(cfg Config, opts ...Option) (*Filter, error) {
	f := New(opts...)
	caseFold := !cfg.CaseSensitive

	f.SetWhitelist(cfg.Include, cfg.Separator, caseFold)
	f.SetBlacklist(cfg.Exclude, cfg.Separator, caseFold)

	if cfg.Regex != "" {
		flags, err := pattern.ParseFlags(cfg.RegexFlags)
		if err != nil {
			return nil, fmt.Errorf("regex flags: %w", err)
		}
		re := pattern.New(cfg.Regex, flags, f.patternOpts...)
		if _, err := re.Match(""); err != nil {
			return nil, err
		}
		f.SetNameRegex(re)
	}

	if cfg.Size != "" {
		if err := f.SetSizePredicate(cfg.Size); err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
	}
	if cfg.MTime != "" {
		if err := f.SetTimePredicate(cfg.MTime); err != nil {
			return nil, fmt.Errorf("mtime: %w", err)
		}
	}

	return f, nil
}

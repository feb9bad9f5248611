package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/fsfilter/internal/output"
	"github.com/ivoronin/fsfilter/internal/pattern"
)

type globOptions struct {
	separator     string
	caseSensitive bool
	subjects      []string
	json          bool
}

func newGlobCmd(a *app) *cobra.Command {
	var opts globOptions

	cmd := &cobra.Command{
		Use:   "glob <glob>...",
		Short: "Show the regular expression a glob translates to",
		Long: `Translate one or more shell wildcard patterns into a single regular expression
and optionally test it against subjects. Exits with 1 if any subject does not match.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  fsfilter glob '*.jpg'
  fsfilter glob --case-sensitive '[!0-9]???.PNG' -t img1.PNG -t abcd.PNG
  fsfilter glob -j '*.txt' '**.md'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGlob(args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.separator, "separator", pattern.DefaultSeparator, "Separator that * ? and [...] never match")
	f.BoolVar(&opts.caseSensitive, "case-sensitive", false, "Match case-sensitively")
	f.StringArrayVarP(&opts.subjects, "test", "t", nil, "Subject to match against the pattern (repeatable)")
	f.BoolVarP(&opts.json, "json", "j", false, "Output in JSON format")

	return cmd
}

func (a *app) runGlob(globs []string, opts globOptions) error {
	var p *pattern.Pattern
	if len(globs) == 1 {
		p = pattern.FromGlob(globs[0], opts.separator, !opts.caseSensitive)
	} else {
		p = pattern.FromGlobs(globs, opts.separator, !opts.caseSensitive)
	}
	if _, err := p.Match(""); err != nil {
		return fmt.Errorf("invalid glob: %w", err)
	}
	a.logger.Debug("translated", "globs", globs, "pattern", p)

	report := &output.GlobReport{Globs: globs, Pattern: p}
	allMatched := true
	for _, s := range opts.subjects {
		ok, err := p.Match(s)
		report.Tests = append(report.Tests, output.GlobTest{Subject: s, Matches: ok, Err: err})
		allMatched = allMatched && ok
	}

	format := output.FormatText
	if opts.json {
		format = output.FormatJSON
	}
	out, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)

	if !allMatched {
		return errRejected
	}
	return nil
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivoronin/fsfilter/internal/config"
	"github.com/ivoronin/fsfilter/internal/filter"
	"github.com/ivoronin/fsfilter/internal/output"
	"github.com/ivoronin/fsfilter/internal/pattern"
	"github.com/ivoronin/fsfilter/internal/temporal"
)

// checkFlagKeys maps config keys to check flags.
var checkFlagKeys = map[string]string{
	"include":        "include",
	"exclude":        "exclude",
	"separator":      "separator",
	"case_sensitive": "case-sensitive",
	"regex":          "regex",
	"regex_flags":    "regex-flags",
	"size":           "size",
	"mtime":          "mtime",
	"timezone":       "timezone",
	"match_timeout":  "match-timeout",
	"log_level":      "log-level",
}

type checkOptions struct {
	json      bool
	recursive bool
	fullPath  bool
}

func newCheckCmd(a *app) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [flags] <path>...",
		Short: "Check files against name, size and modification time filters",
		Long: `Stat each path and check its name, size and modification time against the
configured filter. Exits with 1 if any path is rejected.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  fsfilter check -i '*.jpg' -i '*.png' -e 'tmp*' photos/*
  fsfilter check --size '> 1 KB < 1 MB' --mtime '>= 2021-01-01' report.pdf
  fsfilter check -r --full-path -i 'src/**.go' .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceP("include", "i", nil, "Glob the name must match (repeatable)")
	f.StringSliceP("exclude", "e", nil, "Glob the name must not match (repeatable)")
	f.String("separator", pattern.DefaultSeparator, "Separator that * ? and [...] never match")
	f.Bool("case-sensitive", false, "Match globs case-sensitively")
	f.String("regex", "", "Regular expression the name must match")
	f.String("regex-flags", "", "Regex modifiers, any of imsxu")
	f.String("size", "", "Size predicate, e.g. '> 1 KB < 1 MB'")
	f.String("mtime", "", "Modification time predicate, e.g. '>= 2021-01-01'")
	f.String("timezone", "", "IANA zone for dates without offset (default local)")
	f.Duration("match-timeout", pattern.DefaultMatchTimeout, "Time limit for a single pattern match")
	f.BoolVarP(&opts.json, "json", "j", false, "Output in JSON format")
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "Descend into directories")
	f.BoolVar(&opts.fullPath, "full-path", false, "Match the path as given instead of its base name")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, opts checkOptions) error {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags(), checkFlagKeys); err != nil {
		return err
	}
	cfg, err := loader.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := a.setLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	flt, err := buildFilter(cfg)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	a.logFilter(flt)

	report := &output.MatchReport{}
	for _, path := range args {
		for _, e := range checkPath(flt, path, opts) {
			res := report.Add(e)
			a.logger.Debug("checked", "path", e.Path, "result", res)
		}
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

	switch {
	case report.Count(output.ResultError) > 0:
		return errUnreadable
	case !report.AllAccepted():
		return errRejected
	}
	return nil
}

func buildFilter(cfg config.Config) (*filter.Filter, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return filter.FromConfig(cfg.Filter,
		filter.WithTimeParser(temporal.Parser{Location: loc}),
		filter.WithMatchTimeout(cfg.MatchTimeout),
	)
}

func (a *app) logFilter(f *filter.Filter) {
	if p := f.Whitelist(); p != nil {
		a.logger.Debug("whitelist", "pattern", p)
	}
	if p := f.Blacklist(); p != nil {
		a.logger.Debug("blacklist", "pattern", p)
	}
	if p := f.NameRegex(); p != nil {
		a.logger.Debug("name regex", "pattern", p)
	}
	for _, c := range f.SizeClauses() {
		a.logger.Debug("size clause", "op", c.Operator, "bytes", c.Value)
	}
	for _, c := range f.TimeClauses() {
		a.logger.Debug("mtime clause", "op", c.Operator, "time", c.Value.Format(time.RFC3339))
	}
}

// checkPath returns one entry for a file, or one per regular file below a
// directory when recursing.
func checkPath(f *filter.Filter, path string, opts checkOptions) []output.MatchEntry {
	info, err := os.Stat(path)
	if err != nil {
		return []output.MatchEntry{{Path: path, Err: err}}
	}
	if !info.IsDir() {
		return []output.MatchEntry{checkFile(f, path, info, opts.fullPath)}
	}
	if !opts.recursive {
		return []output.MatchEntry{{Path: path, Err: fmt.Errorf("%s is a directory (use --recursive)", path)}}
	}

	var entries []output.MatchEntry
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			entries = append(entries, output.MatchEntry{Path: p, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			entries = append(entries, output.MatchEntry{Path: p, Err: err})
			return nil
		}
		entries = append(entries, checkFile(f, p, fi, opts.fullPath))
		return nil
	})
	return entries
}

// checkFile matches one file. Modification times are compared at second
// precision.
func checkFile(f *filter.Filter, path string, info fs.FileInfo, fullPath bool) output.MatchEntry {
	e := output.MatchEntry{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime().Truncate(time.Second),
	}

	name := info.Name()
	if fullPath {
		name = filepath.ToSlash(path)
	}

	ok, err := f.Matches(filter.Candidate{Name: name, Size: e.Size, ModTime: e.ModTime})
	switch {
	case err != nil:
		e.Err = err
	case ok:
		e.Result = output.ResultAccept
	default:
		e.Result = output.ResultReject
	}
	return e
}

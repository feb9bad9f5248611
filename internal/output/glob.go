package output

import (
	"encoding/json"

	"github.com/ivoronin/fsfilter/internal/pattern"
)

// GlobTest is the outcome of matching one subject against a glob pattern.
type GlobTest struct {
	Subject string
	Matches bool
	Err     error
}

// GlobReport implements Formatter for the glob command.
type GlobReport struct {
	Globs   []string
	Pattern *pattern.Pattern
	Tests   []GlobTest
}

// FormatText prints the delimited pattern, then a SUBJECT/RESULT table when
// subjects were tested.
func (g *GlobReport) FormatText() string {
	tw := NewTableWriter()
	tw.Header("SUBJECT", "RESULT")
	for _, tc := range g.Tests {
		tw.Row(tc.Subject, globResult(tc))
	}

	out := g.Pattern.String()
	if tw.Len() > 0 {
		out += "\n\n" + tw.String()
	}
	return out
}

func globResult(tc GlobTest) string {
	switch {
	case tc.Err != nil:
		return resultColors[ResultError].Sprint(string(ResultError)) + ": " + tc.Err.Error()
	case tc.Matches:
		return resultColors[ResultAccept].Sprint("MATCH")
	default:
		return resultColors[ResultReject].Sprint("NO MATCH")
	}
}

// FormatJSON renders globs, pattern parts and test results.
func (g *GlobReport) FormatJSON() ([]byte, error) {
	jr := jsonGlobReport{
		Globs:   g.Globs,
		Pattern: g.Pattern.String(),
		Regex:   g.Pattern.Regex(),
		Flags:   g.Pattern.Flags().String(),
		Tests:   make([]jsonGlobTest, len(g.Tests)),
	}
	for i, tc := range g.Tests {
		jt := jsonGlobTest{Subject: tc.Subject, Matches: tc.Matches}
		if tc.Err != nil {
			jt.Error = tc.Err.Error()
		}
		jr.Tests[i] = jt
	}
	return json.MarshalIndent(jr, "", "  ")
}

type jsonGlobReport struct {
	Globs   []string       `json:"globs"`
	Pattern string         `json:"pattern"`
	Regex   string         `json:"regex"`
	Flags   string         `json:"flags"`
	Tests   []jsonGlobTest `json:"tests"`
}

type jsonGlobTest struct {
	Subject string `json:"subject"`
	Matches bool   `json:"matches"`
	Error   string `json:"error,omitempty"`
}

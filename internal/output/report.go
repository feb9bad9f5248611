package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/ivoronin/fsfilter/internal/bytesize"
)

// Result is the verdict for one checked path.
type Result string

const (
	ResultAccept Result = "ACCEPT"
	ResultReject Result = "REJECT"
	ResultError  Result = "ERROR"
)

var resultColors = map[Result]*color.Color{
	ResultAccept: color.New(color.FgGreen),
	ResultReject: color.New(color.FgRed),
	ResultError:  color.New(color.FgYellow),
}

// MatchEntry is one row of a check report.
type MatchEntry struct {
	Path    string
	Size    int64
	ModTime time.Time
	Result  Result
	Err     error
}

// MatchReport implements Formatter for the check command.
type MatchReport struct {
	Entries []MatchEntry
}

// Add appends an entry and returns its result.
func (r *MatchReport) Add(e MatchEntry) Result {
	if e.Err != nil {
		e.Result = ResultError
	}
	r.Entries = append(r.Entries, e)
	return e.Result
}

// Count returns how many entries have result res.
func (r *MatchReport) Count(res Result) int {
	n := 0
	for _, e := range r.Entries {
		if e.Result == res {
			n++
		}
	}
	return n
}

// AllAccepted reports whether every entry was accepted.
func (r *MatchReport) AllAccepted() bool {
	return r.Count(ResultAccept) == len(r.Entries)
}

// FormatText renders a NAME/SIZE/MODIFIED/RESULT table followed by a
// summary line. Errors are shown after the result.
func (r *MatchReport) FormatText() string {
	tw := NewTableWriter()
	tw.Header("NAME", "SIZE", "MODIFIED", "RESULT")

	for _, e := range r.Entries {
		size, modified := "-", "-"
		if !e.ModTime.IsZero() {
			size = bytesize.Format(e.Size)
			modified = e.ModTime.Format(textTimeFormat)
		}
		result := resultColors[e.Result].Sprint(string(e.Result))
		if e.Err != nil {
			result += ": " + e.Err.Error()
		}
		tw.Row(e.Path, size, modified, result)
	}

	tw.Note(fmt.Sprintf("%d accepted, %d rejected, %d errors",
		r.Count(ResultAccept), r.Count(ResultReject), r.Count(ResultError)))
	return tw.String()
}

// FormatJSON renders the report with exact sizes and RFC 3339 times.
func (r *MatchReport) FormatJSON() ([]byte, error) {
	jr := jsonMatchReport{
		Results:     make([]jsonMatch, len(r.Entries)),
		Accepted:    r.Count(ResultAccept),
		Rejected:    r.Count(ResultReject),
		Errors:      r.Count(ResultError),
		AllAccepted: r.AllAccepted(),
	}
	for i, e := range r.Entries {
		m := jsonMatch{
			Path:     e.Path,
			Accepted: e.Result == ResultAccept,
		}
		if e.Err != nil {
			m.Error = e.Err.Error()
		}
		if !e.ModTime.IsZero() {
			size := e.Size
			m.Size = &size
			m.SizeHuman = bytesize.Format(e.Size)
			m.Modified = e.ModTime.Format(jsonTimeFormat)
		}
		jr.Results[i] = m
	}
	return json.MarshalIndent(jr, "", "  ")
}

type jsonMatchReport struct {
	Results     []jsonMatch `json:"results"`
	Accepted    int         `json:"accepted"`
	Rejected    int         `json:"rejected"`
	Errors      int         `json:"errors"`
	AllAccepted bool        `json:"all_accepted"`
}

type jsonMatch struct {
	Path      string `json:"path"`
	Size      *int64 `json:"size,omitempty"`
	SizeHuman string `json:"size_human,omitempty"`
	Modified  string `json:"modified,omitempty"`
	Accepted  bool   `json:"accepted"`
	Error     string `json:"error,omitempty"`
}

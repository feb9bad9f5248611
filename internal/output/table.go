package output

import (
	"bytes"
	"strings"
	"text/tabwriter"
)

// TableWriter aligns columns kubectl-style. Notes are printed below the
// table and take no part in alignment.
type TableWriter struct {
	buf   bytes.Buffer
	w     *tabwriter.Writer
	rows  int
	notes []string
}

// NewTableWriter pads columns with three spaces.
func NewTableWriter() *TableWriter {
	t := &TableWriter{}
	t.w = tabwriter.NewWriter(&t.buf, 0, 0, 3, ' ', 0)
	return t
}

// Header writes the column names.
func (t *TableWriter) Header(columns ...string) {
	_, _ = t.w.Write([]byte(strings.Join(columns, "\t") + "\n"))
}

// Row writes one data row. Colored cells must be last, or use the same
// escape sequence length in every row, to stay aligned.
func (t *TableWriter) Row(values ...string) {
	t.rows++
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Note adds a free-form line after the table.
func (t *TableWriter) Note(line string) {
	t.notes = append(t.notes, line)
}

// Len returns the number of data rows written so far.
func (t *TableWriter) Len() int {
	return t.rows
}

// String flushes the table. A table without rows renders as its notes only.
func (t *TableWriter) String() string {
	var out []string
	if t.rows > 0 {
		_ = t.w.Flush()
		out = append(out, strings.TrimSuffix(t.buf.String(), "\n"))
	}
	out = append(out, t.notes...)
	return strings.Join(out, "\n")
}

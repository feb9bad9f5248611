// Package output renders command results as aligned text tables or JSON.
package output

import "time"

// Format selects how a result is rendered.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// jsonTimeFormat is RFC 3339 with a numeric offset, e.g.
// 2021-01-01T12:00:00+02:00.
const jsonTimeFormat = time.RFC3339

// textTimeFormat is used for the MODIFIED column.
const textTimeFormat = time.DateTime

// Formatter is implemented by every printable result.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
}

// FormatOutput renders f in the requested format.
func FormatOutput(f Formatter, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := f.FormatJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return f.FormatText(), nil
	}
}

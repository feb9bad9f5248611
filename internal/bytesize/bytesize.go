// Package bytesize parses and formats byte counts with binary units.
//
// KB and KiB both mean 1024 bytes (JEDEC and ISO/IEC 80000 respectively);
// the same holds for MB/MiB, GB/GiB and TB/TiB.
package bytesize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	B  int64 = humanize.Byte
	KB int64 = humanize.KiByte
	MB int64 = humanize.MiByte
	GB int64 = humanize.GiByte
	TB int64 = humanize.TiByte
)

// binaryUnits maps accepted unit names to their IEC spelling, which is
// what humanize understands as powers of 1024.
var binaryUnits = map[string]string{
	"B":   "B",
	"KB":  "KiB",
	"KiB": "KiB",
	"MB":  "MiB",
	"MiB": "MiB",
	"GB":  "GiB",
	"GiB": "GiB",
	"TB":  "TiB",
	"TiB": "TiB",
}

var unitBytes = map[string]int64{
	"B": B, "KB": KB, "KiB": KB, "MB": MB, "MiB": MB,
	"GB": GB, "GiB": GB, "TB": TB, "TiB": TB,
}

var (
	withUnitRe  = regexp.MustCompile(`^((?:0|[1-9][0-9]*)(?:[.,][0-9]+)?)\s*([KMGT]i?B)$`)
	plainByteRe = regexp.MustCompile(`^(0|[1-9][0-9]*)\s*B?$`)
)

// ParseError is returned when text is not a valid byte size.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as a byte size: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as a byte size", e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser implements the size parser used by the file filter.
type Parser struct{}

// Parse calls the package-level Parse.
func (Parser) Parse(text string) (int64, error) {
	return Parse(text)
}

// Parse converts "1024", "0 B", "1KB", "1,5 MiB" etc. into bytes. Decimal
// fractions (with "." or ",") are only allowed with KB and larger units;
// the result is truncated to whole bytes.
func Parse(text string) (int64, error) {
	s := strings.TrimSpace(text)

	if m := withUnitRe.FindStringSubmatch(s); m != nil {
		num := strings.Replace(m[1], ",", ".", 1)
		n, err := humanize.ParseBytes(num + " " + binaryUnits[m[2]])
		if err != nil {
			return 0, &ParseError{Text: text, Err: err}
		}
		if n > math.MaxInt64 {
			return 0, &ParseError{Text: text, Err: fmt.Errorf("value out of range")}
		}
		return int64(n), nil
	}

	if m := plainByteRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, &ParseError{Text: text, Err: err}
		}
		return n, nil
	}

	return 0, &ParseError{Text: text}
}

// From returns value expressed in unit as bytes, e.g. From(1.5, "KB") = 1536.
func From(value float64, unit string) (int64, error) {
	mult, ok := unitBytes[strings.TrimSpace(unit)]
	if !ok {
		return 0, &ParseError{Text: unit, Err: fmt.Errorf("unknown unit")}
	}
	return int64(value * float64(mult)), nil
}

// Convert expresses bytes in unit, rounded to precision decimals.
func Convert(bytes int64, unit string, precision int) (float64, error) {
	mult, ok := unitBytes[strings.TrimSpace(unit)]
	if !ok {
		return 0, &ParseError{Text: unit, Err: fmt.Errorf("unknown unit")}
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(float64(bytes)/float64(mult)*scale) / scale, nil
}

// Format renders bytes for humans, e.g. "1.5 KiB".
func Format(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return humanize.IBytes(uint64(bytes))
}

// Package datausage converts the free-form data-usage values returned by the
// partner subscriber API into canonical byte counts and derives the display
// values the portal renders (formatted size, usage percentage, remaining days).
//
// Upstream payloads are loosely typed: the same field may arrive as a numeric
// byte count, a string like "4.9GB", or be absent entirely. All multipliers
// are binary (1024-based).
package datausage

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	KB int64 = 1024
	MB int64 = 1024 * KB
	GB int64 = 1024 * MB
)

// ParseError reports an input that could not be interpreted as a data amount.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "data amount missing"
	}
	return fmt.Sprintf("malformed data amount %q", e.Input)
}

var amountPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*(B|KB|MB|GB)?$`)

// Parse converts a string of the form "<number><unit>" into bytes.
// The unit defaults to bytes when omitted, so "2097152" parses to 2 MiB
// worth of bytes. Parsing is strict: anything that does not match yields a
// *ParseError rather than a silent zero.
func Parse(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ParseError{Input: s}
	}
	m := amountPattern.FindStringSubmatch(strings.ToUpper(trimmed))
	if m == nil {
		return 0, &ParseError{Input: s}
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &ParseError{Input: s}
	}
	switch m[2] {
	case "KB":
		n *= float64(KB)
	case "MB":
		n *= float64(MB)
	case "GB":
		n *= float64(GB)
	}
	return int64(math.Round(n)), nil
}

// ParseValue converts a decoded JSON value into bytes. Numeric values are
// taken as byte counts; strings go through Parse. A nil value is reported as
// missing.
func ParseValue(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, &ParseError{}
	case float64:
		return int64(math.Round(t)), nil
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, &ParseError{Input: t.String()}
		}
		return int64(math.Round(f)), nil
	case string:
		return Parse(t)
	default:
		return 0, &ParseError{Input: fmt.Sprintf("%v", v)}
	}
}

// GBToBytes converts a gigabyte count (the unit the partner API uses for
// package sizes) into bytes.
func GBToBytes(gb float64) int64 {
	return int64(math.Round(gb * float64(GB)))
}

// Format renders a byte count for display: "X.XX MB" below 1024 MB,
// "X.XX GB" at or above. Zero formats as "0.00 MB", never an empty string.
func Format(bytes int64) string {
	mb := float64(bytes) / float64(MB)
	if mb < 1024 {
		return fmt.Sprintf("%.2f MB", mb)
	}
	return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
}

// Percent returns round(used/total*100). A zero or unknown total yields 0.
func Percent(used, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(used) / float64(total) * 100))
}

// RemainingDays returns the whole days left until expiry, rounded up.
// A past or exactly-now expiry reports 0 days and expired=true.
func RemainingDays(expiry, now time.Time) (days int, expired bool) {
	d := expiry.Sub(now)
	if d <= 0 {
		return 0, true
	}
	return int(math.Ceil(d.Hours() / 24)), false
}

// SynthesizeUsage fabricates a self-consistent used/remaining pair for
// payloads that report neither number: 30% of the package counts as used.
// Callers gate this behind an explicit demo-fill setting so placeholder data
// never leaks into live accounts unannounced.
func SynthesizeUsage(total int64) (used, remaining int64) {
	if total <= 0 {
		return 0, 0
	}
	used = int64(math.Round(float64(total) * 0.30))
	return used, total - used
}

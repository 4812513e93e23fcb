// Package dateutil formats timestamps with user-friendly layout tokens.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultFormat is the layout of the generation timestamp.
const DefaultFormat = "YYYY-MM-DD HH:mm"

// dateTokens maps user-friendly tokens to Go time layout components.
// Ordered by length descending for greedy matching. Tokens are case
// sensitive: MM is the month, mm the minute.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common layouts.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"datetime": "YYYY-MM-DD HH:mm",
	"european": "DD/MM/YYYY HH:mm",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseFormat converts a user-friendly format string to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Text inside brackets is kept literally: [at] stays "at".
// Presets are resolved case-insensitively before parsing.
func ParseFormat(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Format renders t with a user-friendly format. An empty format uses
// DefaultFormat.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	layout, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

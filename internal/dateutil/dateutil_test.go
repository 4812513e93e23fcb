package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "YYYY", format: "YYYY", want: "2006"},
		{name: "YY", format: "YY", want: "06"},
		{name: "MMMM", format: "MMMM", want: "January"},
		{name: "MMM", format: "MMM", want: "Jan"},
		{name: "MM is month", format: "MM", want: "01"},
		{name: "mm is minute", format: "mm", want: "04"},
		{name: "HH", format: "HH", want: "15"},
		{name: "ss", format: "ss", want: "05"},
		{name: "M", format: "M", want: "1"},
		{name: "D", format: "D", want: "2"},
		{name: "default format", format: DefaultFormat, want: "2006-01-02 15:04"},
		{name: "european", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "bracket literal", format: "YYYY [at] HH:mm", want: "2006 at 15:04"},
		{name: "preset", format: "iso", want: "2006-01-02"},
		{name: "preset case-insensitive", format: "DateTime", want: "2006-01-02 15:04"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "YYYY [at", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("Y", MaxDateFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{format: "", want: "2024-03-05 09:07"},
		{format: "YYYY-MM-DD HH:mm:ss", want: "2024-03-05 09:07:03"},
		{format: "D MMM YYYY", want: "5 Mar 2024"},
		{format: "long", want: "March 5, 2024"},
	}

	for _, tt := range tests {
		got, err := Format(ts, tt.format)
		if err != nil {
			t.Fatalf("Format(%q) unexpected error: %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}

	if _, err := Format(ts, "[oops"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("Format([oops) error = %v, want ErrInvalidDateFormat", err)
	}
}

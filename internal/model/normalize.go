package model

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-sheet2html/internal/sheet"
)

// Sentinel errors for normalization.
var (
	ErrEmptySource  = errors.New("source contains no rows")
	ErrEmptyContent = errors.New("source contains no usable rows")
)

// DefaultLanguage is the language of code items without a Lang value.
const DefaultLanguage = "text"

// truthy lists the Collapsed values treated as true (compared lowercased).
var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"y":    true,
	"ja":   true,
}

// Item is one normalized content block.
type Item struct {
	Chapter   string
	Section   string
	Order     int
	Kind      Kind
	Type      string // lowercased type token as written in the source
	Language  string // meaningful for KindCode only
	Body      string
	Collapsed bool
	Seq       int // position in the normalized stream, used as tiebreak
	Line      int // source line number
}

// Report summarizes a normalization pass.
type Report struct {
	Rows     int   // rows read from the source
	Kept     int   // rows converted to items
	Dropped  int   // rows missing chapter, section or type
	BadOrder []int // line numbers whose non-empty Order was not a number
}

// Normalize converts raw rows to items, preserving row order.
// Returns ErrEmptySource for zero rows and ErrEmptyContent when no row
// survives validation.
func Normalize(rows []sheet.Row) ([]Item, Report, error) {
	report := Report{Rows: len(rows)}
	if len(rows) == 0 {
		return nil, report, ErrEmptySource
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		chapter := strings.TrimSpace(row.Chapter)
		section := strings.TrimSpace(row.Section)
		typ := strings.ToLower(strings.TrimSpace(row.Type))
		if chapter == "" || section == "" || typ == "" {
			report.Dropped++
			continue
		}

		order, ok := parseOrder(row.Order)
		if !ok {
			report.BadOrder = append(report.BadOrder, row.Line)
		}

		kind := ParseKind(typ)
		item := Item{
			Chapter:   chapter,
			Section:   section,
			Order:     order,
			Kind:      kind,
			Type:      typ,
			Body:      row.Body,
			Collapsed: parseCollapsed(row.Collapsed),
			Seq:       len(items),
			Line:      row.Line,
		}
		if kind == KindCode {
			item.Language = parseLanguage(row.Lang)
		}
		items = append(items, item)
	}

	report.Kept = len(items)
	if len(items) == 0 {
		return nil, report, ErrEmptyContent
	}
	return items, report, nil
}

// parseOrder reads an Order cell. Empty cells are 0 and valid; spreadsheet
// numbers such as "2.0" are accepted when integral. Anything else is 0 and
// reported as invalid.
func parseOrder(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func parseCollapsed(raw string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(raw))]
}

func parseLanguage(raw string) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

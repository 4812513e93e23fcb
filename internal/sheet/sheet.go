// Package sheet reads documentation sources into raw rows.
//
// A source is a single table whose first row names the columns. Both Excel
// workbooks (.xlsx, .xlsm) and CSV files are supported. Column names are
// matched case-insensitively; unknown columns are ignored and missing
// columns read as empty strings, leaving the decision to drop a row to the
// normalizer.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors for source reading.
var (
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrReadSource        = errors.New("failed to read source")
	ErrSheetNotFound     = errors.New("worksheet not found")
)

// Column names of the input table.
const (
	ColChapter   = "Chapter"
	ColSection   = "Section"
	ColOrder     = "Order"
	ColType      = "Type"
	ColLang      = "Lang"
	ColBody      = "Body"
	ColCollapsed = "Collapsed"
)

// Extensions lists the file extensions ReadFile understands.
var Extensions = []string{".xlsx", ".xlsm", ".csv"}

// Row is one raw record of a source. Values are untrimmed cell text.
type Row struct {
	Line      int // 1-based row number in the source, header is line 1
	Chapter   string
	Section   string
	Order     string
	Type      string
	Lang      string
	Body      string
	Collapsed string
}

// Options controls how a source is read.
type Options struct {
	Sheet string // worksheet name for workbooks; empty = first sheet
}

// IsSupported reports whether path has an extension ReadFile can read.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadFile reads all data rows of the source at path.
// Fully blank rows are skipped; the header row is never returned.
func ReadFile(path string, opts Options) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, opts.Sheet)
	case ".csv":
		f, err := os.Open(path) // #nosec G304 -- path comes from source discovery
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV reads rows from CSV content with a header line.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse csv: %v", ErrReadSource, err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
	return fromRecords(records, lines), nil
}

func readWorkbook(path, sheetName string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return fromRecords(records, nil), nil
}

// fromRecords maps header-indexed records to rows. lines holds the source
// line of each record; nil means records are consecutive rows from line 1.
func fromRecords(records [][]string, lines []int) []Row {
	if len(records) == 0 {
		return nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}

	cell := func(record []string, col string) string {
		i, ok := columns[strings.ToLower(col)]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]Row, 0, len(records)-1)
	for n, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		line := n + 2
		if lines != nil {
			line = lines[n+1]
		}
		rows = append(rows, Row{
			Line:      line,
			Chapter:   cell(record, ColChapter),
			Section:   cell(record, ColSection),
			Order:     cell(record, ColOrder),
			Type:      cell(record, ColType),
			Lang:      cell(record, ColLang),
			Body:      cell(record, ColBody),
			Collapsed: cell(record, ColCollapsed),
		})
	}
	return rows
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

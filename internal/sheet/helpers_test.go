package sheet

import (
	"os"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func mustSetRow(t *testing.T, f *excelize.File, sheet, cell string, values []any) {
	t.Helper()
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		t.Fatalf("SetSheetRow(%s, %s) error: %v", sheet, cell, err)
	}
}

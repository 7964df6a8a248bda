// Package export writes the catalog to CSV or Excel files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bevctl/internal/catalog"

	"github.com/xuri/excelize/v2"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Leading columns of every table; the item fields follow in first-seen order.
var leadingColumns = []string{"id", "type", "summary"}

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q: use .csv or .xlsx", ext)
	}
}

// ToFile writes the partitioned catalog to path in the format its extension
// names.
func ToFile(path string, p catalog.Partition) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, format, p); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Write encodes the catalog to w.
func Write(w io.Writer, format Format, p catalog.Partition) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, p)
	case FormatXLSX:
		return WriteXLSX(w, p)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes bottles then crates as one table.
func WriteCSV(w io.Writer, p catalog.Partition) error {
	items := append(append([]*catalog.Item{}, p.Bottles...), p.Crates...)
	header := columns(items)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write(textRow(it, header)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sheet names of the workbook.
const (
	SheetBottles = "Bottles"
	SheetCrates  = "Crates"
)

// WriteXLSX writes a workbook with one sheet per list. Numbers stay numeric.
func WriteXLSX(w io.Writer, p catalog.Partition) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBottles); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetCrates); err != nil {
		return err
	}
	if err := writeSheet(f, SheetBottles, p.Bottles); err != nil {
		return err
	}
	if err := writeSheet(f, SheetCrates, p.Crates); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sheet string, items []*catalog.Item) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	header := columns(items)
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := sw.SetRow("A1", row); err != nil {
		return err
	}
	for i, it := range items {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cellAddr, cellRow(it, header)); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// columns returns the leading columns followed by every other item key in
// first-seen order.
func columns(items []*catalog.Item) []string {
	out := append([]string{}, leadingColumns...)
	seen := map[string]bool{}
	for _, c := range leadingColumns {
		seen[c] = true
	}
	for _, it := range items {
		for _, k := range it.Keys() {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

func textRow(it *catalog.Item, header []string) []string {
	row := make([]string, len(header))
	for i, col := range header {
		if col == "summary" {
			row[i] = catalog.Summarize(it).String()
			continue
		}
		v, ok := it.Get(col)
		if !ok {
			continue
		}
		row[i] = cellText(v)
	}
	return row
}

func cellRow(it *catalog.Item, header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i, col := range header {
		if col == "summary" {
			row[i] = catalog.Summarize(it).String()
			continue
		}
		v, ok := it.Get(col)
		if !ok {
			continue
		}
		switch v := v.(type) {
		case float64, bool:
			row[i] = v
		default:
			row[i] = cellText(v)
		}
	}
	return row
}

func cellText(v any) string {
	if v == nil || catalog.IsObject(v) {
		return catalog.RawJSON(v)
	}
	return catalog.JSText(v, true)
}

// Package export renders tally pivots as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
)

// CSV renders the pivot as comma-separated text. The UTF-8 BOM up front
// keeps the Bengali labels readable when the file lands in Excel.
func CSV(cat report.Category, rows []report.Row, year int, month time.Month) ([]byte, error) {
	days := report.DaysIn(year, month)

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)

	header := make([]string, 0, days+2)
	header = append(header, cat.Name)
	for d := 1; d <= days; d++ {
		header = append(header, strconv.Itoa(d))
	}
	header = append(header, "মোট")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		line := make([]string, 0, days+2)
		line = append(line, row.Label)
		for d := 1; d <= days; d++ {
			line = append(line, formatCell(row.Days[d]))
		}
		line = append(line, formatCell(row.Total))
		if err := w.Write(line); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatCell trims trailing zeros so whole-number tallies print as integers.
func formatCell(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Filename builds the download name for a category export, e.g.
// "dawati-2025-06.csv".
func Filename(cat report.Category, year int, month time.Month, ext string) string {
	return fmt.Sprintf("%s-%04d-%02d.%s", cat.Slug, year, month, ext)
}

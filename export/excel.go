package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/estiakahmed98/islami-dawa-production-sub001/report"
)

// Excel renders the pivot as a single-sheet workbook: bold header row with
// the day numbers, one row per field, totals in the last column.
func Excel(cat report.Category, rows []report.Row, year int, month time.Month) (*excelize.File, error) {
	days := report.DaysIn(year, month)
	sheet := fmt.Sprintf("%04d-%02d", year, month)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	setStr := func(col, row int, s string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellStr(sheet, cell, s)
	}
	setNum := func(col, row int, v float64) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellFloat(sheet, cell, v, -1, 64)
	}

	if err := setStr(1, 1, cat.Name); err != nil {
		return nil, err
	}
	for d := 1; d <= days; d++ {
		if err := setNum(d+1, 1, float64(d)); err != nil {
			return nil, err
		}
	}
	if err := setStr(days+2, 1, "মোট"); err != nil {
		return nil, err
	}
	end, _ := excelize.CoordinatesToCellName(days+2, 1)
	_ = f.SetCellStyle(sheet, "A1", end, bold)

	for i, row := range rows {
		r := i + 2
		if err := setStr(1, r, row.Label); err != nil {
			return nil, err
		}
		for d := 1; d <= days; d++ {
			if v, ok := row.Days[d]; ok {
				if err := setNum(d+1, r, v); err != nil {
					return nil, err
				}
			}
		}
		if err := setNum(days+2, r, row.Total); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	return f, nil
}

package report

import (
	"fmt"
	"time"
)

// Records is raw submission data keyed email → dateKey (yyyy-mm-dd) → field
// key → raw value, the shape the handlers build from ReportRecord rows.
type Records map[string]map[string]map[string]any

// Row is one pivot line: a field's per-day tallies across the selected
// users for one month. Days is indexed 1..DaysIn(year, month).
type Row struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Days  map[int]float64 `json:"days"`
	Total float64         `json:"total"`
}

// Pivot sums a month of submissions from the given users into one row per
// category field. Missing users, days and fields simply contribute nothing;
// unreadable values count 0 per the lenient conversion rules.
func Pivot(cat Category, recs Records, emails []string, year int, month time.Month) []Row {
	days := DaysIn(year, month)
	rows := make([]Row, len(cat.Fields))
	for i, f := range cat.Fields {
		rows[i] = Row{Key: f.Key, Label: f.Label, Days: make(map[int]float64, days)}
	}

	for _, email := range emails {
		byDate, ok := recs[email]
		if !ok {
			continue
		}
		for day := 1; day <= days; day++ {
			fields, ok := byDate[dateKey(year, month, day)]
			if !ok {
				continue
			}
			for i, f := range cat.Fields {
				raw, ok := fields[f.Key]
				if !ok {
					continue
				}
				p := Points(f.Kind, raw)
				if p == 0 {
					continue
				}
				rows[i].Days[day] += p
				rows[i].Total += p
			}
		}
	}
	return rows
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

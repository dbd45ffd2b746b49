// Package report holds the category registry and the aggregation engine
// that turns raw daily submissions into summable numeric tallies.
package report

import (
	"strconv"
	"strings"
)

// Kind selects the point-conversion rule for a field. Raw values arrive as
// whatever JSON gave us (string, float64, bool, nil); every kind converts
// leniently and yields 0 for anything it cannot read.
type Kind int

const (
	KindNumeric  Kind = iota // number or numeric string
	KindYesNo                // "হ্যাঁ" counts 1, anything else 0
	KindZikir                // "সকাল-সন্ধ্যা" = 2, "সকাল" or "সন্ধ্যা" = 1
	KindAyat                 // verse range "S-E", worth |E-S|
	KindPresence             // non-empty string = 1
	KindJamat                // count, valid only within 1..5
	KindBool                 // true = 1
)

// Points converts one raw field value to its numeric tally contribution.
func Points(kind Kind, raw any) float64 {
	switch kind {
	case KindZikir:
		switch str(raw) {
		case "সকাল-সন্ধ্যা":
			return 2
		case "সকাল", "সন্ধ্যা":
			return 1
		}
		return 0
	case KindAyat:
		return ayatPoints(str(raw))
	case KindPresence:
		if str(raw) != "" {
			return 1
		}
		return 0
	case KindJamat:
		n := num(raw)
		if n >= 1 && n <= 5 {
			return n
		}
		return 0
	case KindYesNo:
		if str(raw) == "হ্যাঁ" {
			return 1
		}
		return 0
	case KindBool:
		if b, ok := raw.(bool); ok && b {
			return 1
		}
		return 0
	default:
		return num(raw)
	}
}

// ayatPoints scores a verse range "S-E" as |E-S|. A missing or unreadable
// bound defaults to the other one, so a bare "10" scores 0.
func ayatPoints(s string) float64 {
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, "-", 2)
	start, sok := parseInt(parts[0])
	var end int
	eok := false
	if len(parts) == 2 {
		end, eok = parseInt(parts[1])
	}
	switch {
	case sok && !eok:
		end = start
	case !sok && eok:
		start = end
	case !sok && !eok:
		return 0
	}
	d := end - start
	if d < 0 {
		d = -d
	}
	return float64(d)
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func str(raw any) string {
	s, _ := raw.(string)
	return strings.TrimSpace(s)
}

func num(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

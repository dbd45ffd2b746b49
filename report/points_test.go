package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZikirPoints(t *testing.T) {
	assert.Equal(t, 2.0, Points(KindZikir, "সকাল-সন্ধ্যা"))
	assert.Equal(t, 1.0, Points(KindZikir, "সকাল"))
	assert.Equal(t, 1.0, Points(KindZikir, "সন্ধ্যা"))
	assert.Equal(t, 0.0, Points(KindZikir, ""))
	assert.Equal(t, 0.0, Points(KindZikir, "দুপুর"))
	assert.Equal(t, 0.0, Points(KindZikir, 5.0))
}

func TestAyatPoints(t *testing.T) {
	tests := []struct {
		raw  any
		want float64
	}{
		{"5-10", 5},
		{"10-5", 5}, // reversed range still counts the span
		{"10", 0},   // single bound defaults the other to itself
		{"7-7", 0},
		{"3-", 0},
		{"-8", 0},
		{"", 0},
		{"abc", 0},
		{"abc-12", 0},
		{" 1 - 20 ", 19},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Points(KindAyat, tt.raw), "raw=%v", tt.raw)
	}
}

func TestPresencePoints(t *testing.T) {
	assert.Equal(t, 1.0, Points(KindPresence, "আল-ফাতিহা"))
	assert.Equal(t, 0.0, Points(KindPresence, ""))
	assert.Equal(t, 0.0, Points(KindPresence, "   "))
	assert.Equal(t, 0.0, Points(KindPresence, nil))
}

func TestJamatPoints(t *testing.T) {
	assert.Equal(t, 3.0, Points(KindJamat, 3))
	assert.Equal(t, 3.0, Points(KindJamat, 3.0))
	assert.Equal(t, 3.0, Points(KindJamat, "3"))
	assert.Equal(t, 5.0, Points(KindJamat, "5"))
	assert.Equal(t, 0.0, Points(KindJamat, 7.0)) // out of the 1..5 range
	assert.Equal(t, 0.0, Points(KindJamat, 0))
	assert.Equal(t, 0.0, Points(KindJamat, "x"))
}

func TestYesNoPoints(t *testing.T) {
	assert.Equal(t, 1.0, Points(KindYesNo, "হ্যাঁ"))
	assert.Equal(t, 0.0, Points(KindYesNo, "না"))
	assert.Equal(t, 0.0, Points(KindYesNo, ""))
	assert.Equal(t, 0.0, Points(KindYesNo, true))
}

func TestNumericPoints(t *testing.T) {
	assert.Equal(t, 4.0, Points(KindNumeric, 4.0))
	assert.Equal(t, 4.0, Points(KindNumeric, "4"))
	assert.Equal(t, 2.5, Points(KindNumeric, "2.5"))
	assert.Equal(t, 0.0, Points(KindNumeric, "many"))
	assert.Equal(t, 0.0, Points(KindNumeric, nil))
	assert.Equal(t, 1.0, Points(KindNumeric, true))
}

func TestBoolPoints(t *testing.T) {
	assert.Equal(t, 1.0, Points(KindBool, true))
	assert.Equal(t, 0.0, Points(KindBool, false))
	assert.Equal(t, 0.0, Points(KindBool, "true"))
}

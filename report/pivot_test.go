package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amoliField(t *testing.T, key string) Field {
	t.Helper()
	cat, ok := BySlug("amoli")
	require.True(t, ok)
	for _, f := range cat.Fields {
		if f.Key == key {
			return f
		}
	}
	t.Fatalf("no amoli field %q", key)
	return Field{}
}

func TestPivotSumsAcrossUsers(t *testing.T) {
	cat, _ := BySlug("amoli")
	recs := Records{
		"a@idi.org": {"2025-06-03": {"Dua": "হ্যাঁ"}},
		"b@idi.org": {"2025-06-03": {"Dua": "হ্যাঁ"}},
	}
	rows := Pivot(cat, recs, []string{"a@idi.org", "b@idi.org"}, 2025, time.June)

	var dua Row
	for _, r := range rows {
		if r.Key == "Dua" {
			dua = r
		}
	}
	assert.Equal(t, 2.0, dua.Days[3])
	assert.Equal(t, 2.0, dua.Total)
}

func TestPivotIgnoresUsersOutsideList(t *testing.T) {
	cat, _ := BySlug("amoli")
	recs := Records{
		"a@idi.org":      {"2025-06-03": {"Dua": "হ্যাঁ"}},
		"outsider@x.org": {"2025-06-03": {"Dua": "হ্যাঁ"}},
	}
	rows := Pivot(cat, recs, []string{"a@idi.org"}, 2025, time.June)
	for _, r := range rows {
		if r.Key == "Dua" {
			assert.Equal(t, 1.0, r.Total)
		}
	}
}

func TestPivotMixedKindsOneUser(t *testing.T) {
	cat, _ := BySlug("amoli")
	recs := Records{
		"a@idi.org": {
			"2025-06-01": {"zikir": "সকাল-সন্ধ্যা", "ayat": "5-10", "jamat": 3.0, "tahajjud": 2.0},
			"2025-06-02": {"zikir": "সকাল", "unknownField": 99.0},
		},
	}
	rows := Pivot(cat, recs, []string{"a@idi.org"}, 2025, time.June)

	byKey := map[string]Row{}
	for _, r := range rows {
		byKey[r.Key] = r
	}
	assert.Equal(t, 2.0, byKey["zikir"].Days[1])
	assert.Equal(t, 1.0, byKey["zikir"].Days[2])
	assert.Equal(t, 3.0, byKey["zikir"].Total)
	assert.Equal(t, 5.0, byKey["ayat"].Total)
	assert.Equal(t, 3.0, byKey["jamat"].Total)
	assert.Equal(t, 2.0, byKey["tahajjud"].Total)
	// unknownField has no row at all
	_, ok := byKey["unknownField"]
	assert.False(t, ok)
}

func TestPivotRowOrderMatchesRegistry(t *testing.T) {
	cat, _ := BySlug("moktob")
	rows := Pivot(cat, Records{}, nil, 2025, time.February)
	require.Len(t, rows, len(cat.Fields))
	for i, f := range cat.Fields {
		assert.Equal(t, f.Key, rows[i].Key)
		assert.Equal(t, f.Label, rows[i].Label)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.June))
	assert.Equal(t, 31, DaysIn(2025, time.December))
}

func TestRegistryLookups(t *testing.T) {
	assert.Len(t, Categories, 9)
	for _, slug := range Slugs() {
		cat, ok := BySlug(slug)
		require.True(t, ok)
		assert.NotEmpty(t, cat.Fields, "category %s", slug)
	}
	_, ok := BySlug("nosuch")
	assert.False(t, ok)

	// amoli carries the coded kinds
	assert.Equal(t, KindZikir, amoliField(t, "zikir").Kind)
	assert.Equal(t, KindAyat, amoliField(t, "ayat").Kind)
	assert.Equal(t, KindJamat, amoliField(t, "jamat").Kind)
	assert.Equal(t, KindYesNo, amoliField(t, "Dua").Kind)
}

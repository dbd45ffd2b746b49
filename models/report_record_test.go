package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMapScanHandlesDriverShapes(t *testing.T) {
	var m FieldMap
	require.NoError(t, m.Scan([]byte(`{"jamat":3,"Dua":"হ্যাঁ","done":true}`)))
	assert.Equal(t, 3.0, m["jamat"])
	assert.Equal(t, "হ্যাঁ", m["Dua"])
	assert.Equal(t, true, m["done"])

	require.NoError(t, m.Scan(nil))
	assert.Empty(t, m)

	require.NoError(t, m.Scan(""))
	assert.Empty(t, m)

	assert.Error(t, m.Scan(42))
}

func TestFieldMapValueNilIsEmptyObject(t *testing.T) {
	var m FieldMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

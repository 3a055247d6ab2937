package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize(t *testing.T) {
	grid := Grid{
		{"line_id", "line_name", "location"},
		{"L1", "Line One", "Pit A"},
		{"L2", "Line Two", "Pit B"},
	}

	records := Materialize(grid)
	require.Len(t, records, 2)

	v, ok := records[0].Get("line_id")
	require.True(t, ok)
	assert.Equal(t, "L1", v)

	v, ok = records[1].Get("location")
	require.True(t, ok)
	assert.Equal(t, "Pit B", v)

	assert.Equal(t, []string{"line_id", "line_name", "location"}, records[0].Keys())
	assert.Equal(t, []string{"line_id", "line_name", "location"}, records[1].Keys())
}

func TestMaterializeEmptyGrid(t *testing.T) {
	records := Materialize(Grid{})

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMaterializeHeaderOnly(t *testing.T) {
	grid := Grid{
		{"line_id", "line_name"},
	}

	records := Materialize(grid)

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMaterializeShortRow(t *testing.T) {
	grid := Grid{
		{"line_id", "line_name", "location", "gold_grams"},
		{"L1", "Line One"},
	}

	records := Materialize(grid)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, []string{"line_id", "line_name", "location", "gold_grams"}, r.Keys())

	v, ok := r.Get("location")
	require.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = r.Get("gold_grams")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestMaterializeLongRow(t *testing.T) {
	grid := Grid{
		{"line_id", "line_name"},
		{"L1", "Line One", "surplus", "cells"},
	}

	records := Materialize(grid)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"line_id", "line_name"}, r.Keys())
}

func TestMaterializeDuplicateHeader(t *testing.T) {
	grid := Grid{
		{"line_id", "location", "line_id"},
		{"L1", "Pit A", "L9"},
	}

	records := Materialize(grid)
	require.Len(t, records, 1)

	// duplicate header names collapse: last value wins
	r := records[0]
	assert.Equal(t, []string{"line_id", "location"}, r.Keys())

	v, ok := r.Get("line_id")
	require.True(t, ok)
	assert.Equal(t, "L9", v)
}

func TestMaterializeUniformKeySet(t *testing.T) {
	grid := Grid{
		{"a", "b", "c"},
		{"1"},
		{"1", "2"},
		{"1", "2", "3", "4"},
	}

	records := Materialize(grid)
	require.Len(t, records, 3)

	for _, r := range records {
		assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
	}
}

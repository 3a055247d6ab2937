package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("b", "2")
	r.Set("a", "1")
	r.SetNumber("n", 1.5)

	assert.Equal(t, []string{"b", "a", "n"}, r.Keys())

	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":"2","a":"1","n":1.5}`, string(b))
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("a", "1")
	r.Set("b", "2")
	r.Set("a", "9")

	assert.Equal(t, []string{"a", "b"}, r.Keys())

	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "9", v)
}

func TestRecordAbsentVsEmpty(t *testing.T) {
	r := NewRecord()
	r.Set("present", "")

	v, ok := r.Get("present")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.Get("absent")
	assert.False(t, ok)

	assert.True(t, r.Has("present"))
	assert.False(t, r.Has("absent"))
}

func TestRecordNumber(t *testing.T) {
	r := NewRecord()
	r.Set("text", "42")
	r.SetNumber("value", 42.5)

	n, ok := r.Number("value")
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	_, ok = r.Number("text")
	assert.False(t, ok)

	_, ok = r.Get("value")
	assert.False(t, ok)
}

func TestRecordMarshalEscaping(t *testing.T) {
	r := NewRecord()
	r.Set(`line "name"`, "Pit\tA")

	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"line \"name\"":"Pit\tA"}`, string(b))
}

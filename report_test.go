package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tallyOf(s string) *Tally {
	t := NewTally()
	for _, r := range s {
		t.Add(r)
	}
	return t
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, tallyOf("cbaCBAa")))
	assert.Equal(t, "A 1\nB 1\nC 1\na 2\nb 1\nc 1\n", buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, NewTally()))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, "in.txt", tallyOf("bλa")))

	var rep jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, "in.txt", rep.Path)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, []letterCount{
		{Letter: "a", Count: 1},
		{Letter: "b", Count: 1},
		{Letter: "λ", Count: 1},
	}, rep.Letters)
}

func TestWriteJSON_EmptyLettersIsArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, "empty.txt", NewTally()))
	assert.Contains(t, buf.String(), `"letters": []`)
}

func TestWriteReport_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeReport(&buf, "xml", "in.txt", NewTally())
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

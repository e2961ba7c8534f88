package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, renderTable(nil, [][]string{{"x"}}))
}

func TestRenderTable_PadsShortRowsAndTrimsWideColumns(t *testing.T) {
	cols := []column{
		{Header: "Group"},
		{Header: "Images", Numeric: true},
		{Header: "Title", MaxWidth: 10},
	}
	out := renderTable(cols, [][]string{
		{"g1", "3", "A very long vintage denim jacket title"},
		{"g2"},
	})

	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "g2")
	assert.NotContains(t, out, "jacket title")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

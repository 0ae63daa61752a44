package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"import React from 'react';",
	"interface Props {",
	"",
	"  name: string;",
	"}",
}

func TestRasterizeDimensions(t *testing.T) {
	g := Rasterize(sample, PAD_SOLID)
	assert.Equal(t, len("import React from 'react';")+2, g.Cols)
	assert.Equal(t, len(sample)+2, g.Rows)
	require.Len(t, g.Matrix, g.Cols)
	for _, col := range g.Matrix {
		assert.Len(t, col, g.Rows)
	}
}

func TestRasterizeBorderStaysEmpty(t *testing.T) {
	g := Rasterize(sample, PAD_SOLID)
	for c := 0; c < g.Cols; c++ {
		assert.Equal(t, EMPTY, g.At(Position{c, 0}).Kind)
		assert.Equal(t, EMPTY, g.At(Position{c, g.Rows - 1}).Kind)
	}
	for r := 0; r < g.Rows; r++ {
		assert.Equal(t, EMPTY, g.At(Position{0, r}).Kind)
		assert.Equal(t, EMPTY, g.At(Position{g.Cols - 1, r}).Kind)
	}
}

func TestRasterizeSolidPadding(t *testing.T) {
	g := Rasterize(sample, PAD_SOLID)

	first := g.At(Position{1, 1})
	assert.Equal(t, WALL, first.Kind)
	assert.Equal(t, 'i', first.Char)

	// the space after "import" is still code
	assert.Equal(t, WALL, g.At(Position{7, 1}).Kind)
	// leading indentation of "  name: string;"
	assert.Equal(t, WALL, g.At(Position{1, 4}).Kind)
	// short line padded with empty cells
	assert.Equal(t, EMPTY, g.At(Position{len("interface Props {") + 1, 2}).Kind)
	// blank line
	for c := 0; c < g.Cols; c++ {
		assert.Equal(t, EMPTY, g.At(Position{c, 3}).Kind)
	}
}

func TestRasterizeOpenSpaces(t *testing.T) {
	g := Rasterize(sample, PAD_OPEN_SPACES)
	assert.Equal(t, EMPTY, g.At(Position{7, 1}).Kind)
	assert.Equal(t, EMPTY, g.At(Position{1, 4}).Kind)
	assert.Equal(t, WALL, g.At(Position{3, 4}).Kind)
}

func TestRasterizeIsDeterministic(t *testing.T) {
	assert.Equal(t, Rasterize(sample, PAD_SOLID), Rasterize(sample, PAD_SOLID))
}

func TestRasterizeCountsRunes(t *testing.T) {
	g := Rasterize([]string{"O(n²)"}, PAD_SOLID)
	assert.Equal(t, 7, g.Cols)
	assert.Equal(t, '²', g.At(Position{4, 1}).Char)
}

func TestRasterizeNoLines(t *testing.T) {
	g := Rasterize(nil, PAD_SOLID)
	assert.Equal(t, 2, g.Cols)
	assert.Equal(t, 2, g.Rows)
	assert.Zero(t, g.CountTokens())
	assert.Len(t, SuitableCells(g), 4)
}

/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"errors"
	"math"
	"testing"
)

func TestIsWallOutsideGridIsWall(t *testing.T) {
	m := DefaultMap()
	points := []struct{ x, y float64 }{
		{-1, 100},
		{100, -0.001},
		{m.WorldWidth(), 100},
		{100, m.WorldHeight()},
		{1e12, 1e12},
		{-1e12, 5},
		{math.NaN(), 100},
		{math.Inf(1), 100},
	}
	for _, p := range points {
		if !m.IsWall(p.x, p.y) {
			t.Errorf("IsWall(%v, %v) = false, want true", p.x, p.y)
		}
	}
	cells := []struct{ col, row int }{{-1, 0}, {0, -1}, {m.Cols(), 1}, {1, m.Rows()}}
	for _, c := range cells {
		if !m.IsWallCell(c.col, c.row) {
			t.Errorf("IsWallCell(%d, %d) = false, want true", c.col, c.row)
		}
	}
}

func TestIsWallScenario(t *testing.T) {
	m := DefaultMap()
	if m.IsWallCell(1, 1) {
		t.Fatal("cell (1,1) should be open")
	}
	if !m.IsWallCell(0, 0) {
		t.Fatal("cell (0,0) should be a wall")
	}
	if m.IsWall(75, 75) {
		t.Error("IsWall(75, 75) = true, want false")
	}
	if !m.IsWall(25, 25) {
		t.Error("IsWall(25, 25) = false, want true")
	}
}

func TestCellAtFloorsCoordinates(t *testing.T) {
	m := DefaultMap()
	col, row := m.CellAt(99.9, 50)
	if col != 1 || row != 1 {
		t.Fatalf("CellAt(99.9, 50) = (%d,%d), want (1,1)", col, row)
	}
	col, row = m.CellAt(-0.5, 0)
	if col != -1 || row != 0 {
		t.Fatalf("CellAt(-0.5, 0) = (%d,%d), want (-1,0)", col, row)
	}
}

func TestNewMapValidation(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		cellSize float64
	}{
		{"empty", nil, 10},
		{"empty row", [][]int{{}}, 10},
		{"ragged", [][]int{{1, 1}, {1}}, 10},
		{"bad cell", [][]int{{1, 2}}, 10},
		{"zero cell size", [][]int{{1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMap(tt.rows, tt.cellSize); !errors.Is(err, ErrInvalidMap) {
				t.Fatalf("NewMap error = %v, want ErrInvalidMap", err)
			}
		})
	}
}

func TestNewMapCopiesRows(t *testing.T) {
	rows := [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	m, err := NewMap(rows, 10)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	rows[1][1] = Wall
	if m.IsWallCell(1, 1) {
		t.Fatal("map changed after caller modified its rows")
	}
}

func TestDefaultRowsIsACopy(t *testing.T) {
	rows := DefaultRows()
	rows[1][1] = Wall
	if DefaultMap().IsWallCell(1, 1) {
		t.Fatal("DefaultRows exposed the built-in layout")
	}
	if len(rows) != 13 || len(rows[0]) != 16 {
		t.Fatalf("default map is %dx%d, want 16x13", len(rows[0]), len(rows))
	}
}

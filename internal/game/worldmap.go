/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"errors"
	"fmt"
	"math"
)

const (
	Open = 0
	Wall = 1

	DefaultCellSize = 50
)

var ErrInvalidMap = errors.New("invalid map")

var defaultRows = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1},
	{1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Map is an immutable grid of open and wall cells. Cells are addressed
// as (column, row); world coordinates map onto cells by dividing by the
// cell size.
type Map struct {
	cells    [][]int
	cols     int
	rows     int
	cellSize float64
}

// NewMap validates rows and copies them into a new Map.
func NewMap(rows [][]int, cellSize float64) (*Map, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v must be positive", ErrInvalidMap, cellSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidMap)
	}
	cols := len(rows[0])
	cells := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMap, y, len(row), cols)
		}
		cells[y] = make([]int, cols)
		for x, cell := range row {
			if cell != Open && cell != Wall {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrInvalidMap, x, y, cell)
			}
			cells[y][x] = cell
		}
	}
	return &Map{cells: cells, cols: cols, rows: len(rows), cellSize: cellSize}, nil
}

// DefaultMap returns the built-in 16x13 maze.
func DefaultMap() *Map {
	m, err := NewMap(defaultRows, DefaultCellSize)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultRows returns a copy of the built-in maze layout.
func DefaultRows() [][]int {
	rows := make([][]int, len(defaultRows))
	for i, row := range defaultRows {
		rows[i] = append([]int(nil), row...)
	}
	return rows
}

func (m *Map) Cols() int            { return m.cols }
func (m *Map) Rows() int            { return m.rows }
func (m *Map) CellSize() float64    { return m.cellSize }
func (m *Map) WorldWidth() float64  { return float64(m.cols) * m.cellSize }
func (m *Map) WorldHeight() float64 { return float64(m.rows) * m.cellSize }

// CellAt converts world coordinates to the cell that contains them.
func (m *Map) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / m.cellSize)), int(math.Floor(y / m.cellSize))
}

// IsWallCell reports whether the cell is a wall. Cells outside the grid are walls.
func (m *Map) IsWallCell(col, row int) bool {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return true
	}
	return m.cells[row][col] == Wall
}

// IsWall reports whether the world coordinate lies in a wall cell.
func (m *Map) IsWall(x, y float64) bool {
	if !(x >= 0 && x < m.WorldWidth() && y >= 0 && y < m.WorldHeight()) {
		return true
	}
	return m.IsWallCell(m.CellAt(x, y))
}

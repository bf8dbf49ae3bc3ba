// Package snake implements the Snake simulation: the snake's direction
// state machine and growing body, and the board that drives ticks,
// collisions and food placement. It has no rendering or I/O dependencies;
// frontends read its state each frame.
package snake

// Cell is a grid coordinate. Two cells are equal iff X and Y match.
type Cell struct {
	X, Y int
}

// IsAt reports whether the cell sits at (x, y).
func (c Cell) IsAt(x, y int) bool {
	return c.X == x && c.Y == y
}

// Same reports whether two cells share coordinates.
func (c Cell) Same(other Cell) bool {
	return c == other
}

// Moved returns the neighbouring cell one step in direction d.
func (c Cell) Moved(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

package game

const (
	defaultRowsBehind = 4
	defaultRowsAhead  = 14
)

// Camera frames the rows around the player that the renderer shows.
type Camera struct {
	RowsBehind int
	RowsAhead  int
}

// NewCamera returns a camera with the default framing.
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the default framing.
func (c *Camera) Reset() {
	c.RowsBehind = defaultRowsBehind
	c.RowsAhead = defaultRowsAhead
}

// Window returns the first and last row visible when following row.
func (c *Camera) Window(row int) (first, last int) {
	return row - c.RowsBehind, row + c.RowsAhead
}

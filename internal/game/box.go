package game

// Box is an axis-aligned bounding box in world units.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns a box of the given size centred on (cx, cy).
func BoxAround(cx, cy float64, size Size) Box {
	return Box{
		MinX: cx - size.W/2,
		MinY: cy - size.H/2,
		MaxX: cx + size.W/2,
		MaxY: cy + size.H/2,
	}
}

// Intersects reports whether b and o overlap. Touching edges count.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Contains reports whether the point (x, y) lies inside b.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Overlap returns the extent of the intersection on each axis.
// Non-positive values mean the boxes do not overlap on that axis.
func (b Box) Overlap(o Box) (dx, dy float64) {
	dx = min(b.MaxX, o.MaxX) - max(b.MinX, o.MinX)
	dy = min(b.MaxY, o.MaxY) - max(b.MinY, o.MinY)
	return dx, dy
}


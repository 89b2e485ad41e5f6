package rtree

import "math"

// BBox is an axis-aligned bounding box over closed intervals. The empty
// BBox has MinX and MinY set to +Inf and MaxX and MaxY set to -Inf, so that
// extending it by any real rectangle yields that rectangle unchanged.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyBBox returns the sentinel empty bounding box.
func emptyBBox() BBox {
	return BBox{
		MinX: math.Inf(+1),
		MinY: math.Inf(+1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// extend grows b in place into the union of b and other.
func (b *BBox) extend(other BBox) {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
}

// combine gives the smallest bounding box containing both a and b.
func combine(a, b BBox) BBox {
	a.extend(b)
	return a
}

// area returns the rectangle's area.
func (b BBox) area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// margin returns the rectangle's half-perimeter.
func (b BBox) margin() float64 {
	return (b.MaxX - b.MinX) + (b.MaxY - b.MinY)
}

// intersects reports whether b and other overlap. Both rectangles are
// treated as closed intervals, so an edge touch counts as an intersection.
func (b BBox) intersects(other BBox) bool {
	return other.MinX <= b.MaxX && other.MinY <= b.MaxY &&
		other.MaxX >= b.MinX && other.MaxY >= b.MinY
}

// contains reports whether other lies entirely within b, closed intervals.
func (b BBox) contains(other BBox) bool {
	return b.MinX <= other.MinX && b.MinY <= other.MinY &&
		other.MaxX <= b.MaxX && other.MaxY <= b.MaxY
}

// enlargement returns how much additional area existing would have to grow
// by to accommodate additional.
func enlargement(existing, additional BBox) float64 {
	return combine(existing, additional).area() - existing.area()
}

// intersectionArea returns the area of overlap between a and b, clamped at
// zero for non-overlapping rectangles.
func intersectionArea(a, b BBox) float64 {
	w := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	if w <= 0 {
		return 0
	}
	h := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if h <= 0 {
		return 0
	}
	return w * h
}

package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel position plus view depth
type screenPoint struct {
	X, Y, Z float64
}

// raster is an RGBA target with a depth buffer
type raster struct {
	img    *image.RGBA
	depth  []float64
	width  int
	height int
}

func newRaster(width, height int, background color.RGBA) *raster {
	r := &raster{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.img.SetRGBA(x, y, background)
		}
	}
	return r
}

// fillTriangle scan-converts a triangle, keeping the nearest fragment
func (r *raster) fillTriangle(a, b, c screenPoint, col color.RGBA) {
	// Sort by Y, top to bottom
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	yStart := int(math.Max(0, math.Ceil(a.Y)))
	yEnd := int(math.Min(float64(r.height-1), c.Y))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Long edge a-c against the short edge on this side of b
		left, ok := edgeAt(a, c, fy)
		if !ok {
			continue
		}
		var right screenPoint
		if fy < b.Y {
			right, ok = edgeAt(a, b, fy)
		} else {
			right, ok = edgeAt(b, c, fy)
		}
		if !ok {
			continue
		}
		if left.X > right.X {
			left, right = right, left
		}
		r.span(y, left, right, col)
	}
}

// edgeAt interpolates the edge p-q at scanline y
func edgeAt(p, q screenPoint, y float64) (screenPoint, bool) {
	if p.Y == q.Y {
		if y != p.Y {
			return screenPoint{}, false
		}
		return q, true
	}
	if y < p.Y || y > q.Y {
		return screenPoint{}, false
	}
	t := (y - p.Y) / (q.Y - p.Y)
	return screenPoint{X: p.X + t*(q.X-p.X), Y: y, Z: p.Z + t*(q.Z-p.Z)}, true
}

func (r *raster) span(y int, left, right screenPoint, col color.RGBA) {
	xStart := int(math.Max(0, math.Ceil(left.X)))
	xEnd := int(math.Min(float64(r.width-1), right.X))
	for x := xStart; x <= xEnd; x++ {
		t := 0.0
		if right.X != left.X {
			t = (float64(x) - left.X) / (right.X - left.X)
		}
		r.plot(x, y, left.Z+t*(right.Z-left.Z), col)
	}
}

// plot writes a pixel if it is nearer than what is already there
func (r *raster) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	idx := y*r.width + x
	if z < r.depth[idx] {
		r.depth[idx] = z
		r.img.SetRGBA(x, y, col)
	}
}

// drawLine draws an overlay line with Bresenham's algorithm, ignoring depth
func (r *raster) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if x1 >= 0 && x1 < r.width && y1 >= 0 && y1 < r.height {
			r.img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawSquare draws a filled overlay square centered on (x, y)
func (r *raster) drawSquare(x, y, half int, col color.RGBA) {
	for py := y - half; py <= y+half; py++ {
		for px := x - half; px <= x+half; px++ {
			if px >= 0 && px < r.width && py >= 0 && py < r.height {
				r.img.SetRGBA(px, py, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

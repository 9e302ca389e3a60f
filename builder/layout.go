package builder

import "math"

// point is a canvas position.
type point struct{ x, y float64 }

func (p point) dist(q point) float64 { return math.Hypot(q.x-p.x, q.y-p.y) }

// linePos places node i of a horizontal line starting at the origin.
func (c builderConfig) linePos(i int) point {
	return point{c.originX + float64(i)*c.spacing, c.originY}
}

// latticePos places the cell (r, col) of a row-major lattice.
func (c builderConfig) latticePos(r, col int) point {
	return point{c.originX + float64(col)*c.spacing, c.originY + float64(r)*c.spacing}
}

// ringRadius returns the radius at which n nodes sit spacing apart along the
// circumference, never less than spacing.
func (c builderConfig) ringRadius(n int) float64 {
	return math.Max(c.spacing, c.spacing*float64(n)/(2*math.Pi))
}

// ringPos places node i of n on a circle of radius r whose bounding box
// starts at the origin. Node 0 is at the top; the ring runs clockwise on a
// y-down canvas.
func (c builderConfig) ringPos(i, n int, r float64) point {
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	cx, cy := c.originX+r, c.originY+r

	return point{cx + r*math.Cos(theta), cy + r*math.Sin(theta)}
}

// addNodes adds one node per position and returns their IDs.
func addNodes(t Target, ps []point) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = t.AddNode(p.x, p.y)
	}

	return ids
}

// ring lays out n nodes on a circle.
func (c builderConfig) ring(n int) []point {
	r := c.ringRadius(n)
	ps := make([]point, n)
	for i := range ps {
		ps[i] = c.ringPos(i, n, r)
	}

	return ps
}

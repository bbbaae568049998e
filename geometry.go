package dragbubble

// minConnectorDistance is the center distance below which the connector is
// skipped. The offsets divide by the distance.
const minConnectorDistance = 1e-9

// Connector is the outline of the goo blob linking the anchor circle to the
// drag bubble: two quadratic curves sharing one control point plus two
// straight segments.
type Connector struct {
	Control     Vec2
	CircleStart Vec2 // on the anchor circle
	CircleEnd   Vec2 // on the anchor circle
	BubbleStart Vec2 // on the drag bubble
	BubbleEnd   Vec2 // on the drag bubble
}

// ComputeConnector returns the connector between the anchor and the bubble.
// ok is false when the centers coincide and no connector can be built.
//
// The tangent points sit on each circle at the center-to-center direction
// rotated by 90 degrees, so the blob pinches as the anchor radius shrinks.
func ComputeConnector(anchor, bubble Circle) (c Connector, ok bool) {
	dist := anchor.Center.Dist(bubble.Center)
	if dist < minConnectorDistance {
		return Connector{}, false
	}
	s := (bubble.Center.Y - anchor.Center.Y) / dist
	k := (bubble.Center.X - anchor.Center.X) / dist
	off := Vec2{s, -k}

	c.Control = anchor.Center.Midpoint(bubble.Center)
	c.CircleStart = anchor.Center.Sub(off.Scale(anchor.Radius))
	c.BubbleEnd = bubble.Center.Sub(off.Scale(bubble.Radius))
	c.BubbleStart = bubble.Center.Add(off.Scale(bubble.Radius))
	c.CircleEnd = anchor.Center.Add(off.Scale(anchor.Radius))
	return c, true
}

// AppendPath appends the closed blob outline to p.
func (c Connector) AppendPath(p *Path) {
	p.MoveTo(c.CircleStart)
	p.QuadTo(c.Control, c.BubbleEnd)
	p.LineTo(c.BubbleStart)
	p.QuadTo(c.Control, c.CircleEnd)
	p.Close()
}

// PathOp is the kind of a path segment.
type PathOp uint8

const (
	PathMoveTo PathOp = iota
	PathLineTo
	PathQuadTo
	PathClose
)

// PathSegment is one instruction of a Path. Ctrl is only used by PathQuadTo.
type PathSegment struct {
	Op   PathOp
	Ctrl Vec2
	To   Vec2
}

// Path is a backend-neutral outline that surfaces replay into their own path
// types. The zero value is an empty path ready to use.
type Path struct {
	segs []PathSegment
}

// MoveTo starts a new sub-path at pt.
func (p *Path) MoveTo(pt Vec2) {
	p.segs = append(p.segs, PathSegment{Op: PathMoveTo, To: pt})
}

// LineTo adds a straight segment to pt.
func (p *Path) LineTo(pt Vec2) {
	p.segs = append(p.segs, PathSegment{Op: PathLineTo, To: pt})
}

// QuadTo adds a quadratic Bézier segment through ctrl to pt.
func (p *Path) QuadTo(ctrl, pt Vec2) {
	p.segs = append(p.segs, PathSegment{Op: PathQuadTo, Ctrl: ctrl, To: pt})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.segs = append(p.segs, PathSegment{Op: PathClose})
}

// Reset empties the path, keeping its backing array.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
}

// Segments returns the recorded segments. The returned slice MUST NOT be mutated.
func (p *Path) Segments() []PathSegment {
	return p.segs
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

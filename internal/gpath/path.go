// Package gpath defines the path command set consumed by the rest of the
// rasterization pipeline (spec §3, §6) and the exact-analytic bounding-box
// engine (spec §4.2, component C2).
//
// Where agg_go represents a path as an open-ended vertex_source interface
// (Rewind/Vertex, tagged path commands dispatched through a uint32 bitmask —
// see internal/path/path_storage.go and internal/basics/path.go in the
// teacher tree) this engine uses a closed five-variant tagged union per
// spec's design notes §9: no interface dispatch, the rasterizer hot loop
// switches on Kind directly.
package gpath

// Kind discriminates the five path command variants of spec §3/§6.
type Kind uint8

const (
	Move Kind = iota
	Line
	Quad
	Cubic
	Close
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case Quad:
		return "Quad"
	case Cubic:
		return "Cubic"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// Command is one element of a Path. Only the fields relevant to Kind are
// meaningful: Move/Line use (X,Y); Quad additionally uses (CX1,CY1); Cubic
// additionally uses (CX2,CY2); Close uses none.
type Command struct {
	Kind           Kind
	CX1, CY1       float64
	CX2, CY2       float64
	X, Y           float64
}

// Box is an axis-aligned bounding box in design units, or absent for an
// empty path (spec §3 BoundingBox).
type Box struct {
	XMin, YMin, XMax, YMax float64
}

// Path is an ordered sequence of commands. The first command of each
// subpath must be Move; a Close ends the current subpath; consecutive
// Moves implicitly close-without-join (spec §3 invariant).
type Path struct {
	Commands []Command
	// Bounds caches a precomputed bounding box; nil means "not computed",
	// distinct from an empty-path absent box (spec §3: "or absent").
	Bounds *Box
}

// New returns an empty path ready for building.
func New() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Commands = append(p.Commands, Command{Kind: Move, X: x, Y: y})
	p.Bounds = nil
	return p
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.Commands = append(p.Commands, Command{Kind: Line, X: x, Y: y})
	p.Bounds = nil
	return p
}

// QuadTo appends a quadratic Bezier through control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.Commands = append(p.Commands, Command{Kind: Quad, CX1: cx, CY1: cy, X: x, Y: y})
	p.Bounds = nil
	return p
}

// CubicTo appends a cubic Bezier through control points (cx1,cy1),(cx2,cy2) to (x,y).
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float64) *Path {
	p.Commands = append(p.Commands, Command{Kind: Cubic, CX1: cx1, CY1: cy1, CX2: cx2, CY2: cy2, X: x, Y: y})
	p.Bounds = nil
	return p
}

// ClosePath ends the current subpath.
func (p *Path) ClosePath() *Path {
	p.Commands = append(p.Commands, Command{Kind: Close})
	p.Bounds = nil
	return p
}

// Empty reports whether the path has no commands at all.
func (p *Path) Empty() bool {
	return len(p.Commands) == 0
}

// Subpath is a maximal run of commands starting at a Move, up to (but not
// including) the next Move or the end of the command list, plus whether it
// was terminated by an explicit Close.
type Subpath struct {
	Commands []Command
	Closed   bool
}

// Subpaths splits a path into its constituent subpaths. A Close command
// terminates the subpath it appears in without itself starting a new one;
// a Move always starts a new subpath (spec §3: "consecutive Moves
// implicitly close-without-join").
func (p *Path) Subpaths() []Subpath {
	var subs []Subpath
	var cur []Command
	closed := false
	flush := func() {
		if len(cur) > 0 {
			subs = append(subs, Subpath{Commands: cur, Closed: closed})
		}
		cur = nil
		closed = false
	}
	for _, c := range p.Commands {
		switch c.Kind {
		case Move:
			flush()
			cur = append(cur, c)
		case Close:
			cur = append(cur, c)
			closed = true
			flush()
		default:
			cur = append(cur, c)
		}
	}
	flush()
	return subs
}

package stroker

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
)

// mathStroke computes the per-vertex cap/join geometry for one side of a
// stroked contour. It is an adaptation of agg_go's MathStroke, generalized
// from that type's VertexConsumer-interface output to plain point slices
// (gpath's tagged-union design avoids virtual dispatch; the stroker follows
// suit) and updated to spec §4.6's closed-form miter and round-segment-count
// formulas in place of the teacher's approximation-scale-driven ones.
type mathStroke struct {
	width, widthAbs float64
	widthSign       int
	miterLimit      float64
	innerMiterLimit float64
	cap             Cap
	join            Join
	innerJoin       InnerJoin
}

func newMathStroke(opts Options) *mathStroke {
	w := opts.Width * 0.5
	sign := 1
	abs := w
	if w < 0 {
		sign = -1
		abs = -w
	}
	ml := opts.MiterLimit
	if ml <= 0 {
		ml = 4.0
	}
	iml := opts.InnerMiterLimit
	if iml <= 0 {
		iml = 1.01
	}
	return &mathStroke{
		width: w, widthAbs: abs, widthSign: sign,
		miterLimit: ml, innerMiterLimit: iml,
		cap: opts.Cap, join: opts.Join, innerJoin: opts.InnerJoin,
	}
}

// calcCap produces the points of the cap at v0, facing away from v1 (spec
// §4.6: butt = perpendicular line; square = extended by w/2; round = two
// quadratic Béziers, control offset ≈0.5523·r).
func (ms *mathStroke) calcCap(v0, v1 fixedmath.Point, eps float64) []fixedmath.Point {
	length := calcDistance(v0.X, v0.Y, v1.X, v1.Y)
	if length < 1e-12 {
		return []fixedmath.Point{v0}
	}
	dx1 := (v1.Y - v0.Y) / length * ms.width
	dy1 := (v1.X - v0.X) / length * ms.width

	from := fixedmath.Point{X: v0.X + dx1, Y: v0.Y - dy1}
	to := fixedmath.Point{X: v0.X - dx1, Y: v0.Y + dy1}

	switch ms.cap {
	case CapSquare:
		dx2 := dy1 * float64(ms.widthSign)
		dy2 := dx1 * float64(ms.widthSign)
		return []fixedmath.Point{
			{X: v0.X + dx1 - dx2, Y: v0.Y - dy1 - dy2},
			{X: v0.X - dx1 - dx2, Y: v0.Y + dy1 - dy2},
		}
	case CapRound:
		const kappa = 0.5523
		ux, uy := (v0.X-v1.X)/length, (v0.Y-v1.Y)/length
		radiusVec := fixedmath.Point{X: dx1, Y: -dy1}
		apex := fixedmath.Point{X: v0.X + ux*ms.widthAbs, Y: v0.Y + uy*ms.widthAbs}
		c1 := fixedmath.Point{X: from.X + ux*kappa*ms.widthAbs, Y: from.Y + uy*kappa*ms.widthAbs}
		c2 := fixedmath.Point{X: apex.X - radiusVec.X*kappa, Y: apex.Y - radiusVec.Y*kappa}
		pts := []fixedmath.Point{from}
		pts = append(pts, fixedmath.FlattenQuad(from, c1, apex, eps)...)
		pts = append(pts, fixedmath.FlattenQuad(apex, c2, to, eps)...)
		return pts
	default: // CapButt
		return []fixedmath.Point{from, to}
	}
}

// calcJoin dispatches to the inner- or outer-join geometry at v1 depending
// on the signed turn angle between the incoming and outgoing edges, and
// elides the join entirely when that angle is negligible (spec §4.6).
func (ms *mathStroke) calcJoin(v0, v1, v2 fixedmath.Point, eps float64) []fixedmath.Point {
	len1 := calcDistance(v0.X, v0.Y, v1.X, v1.Y)
	len2 := calcDistance(v1.X, v1.Y, v2.X, v2.Y)
	if len1 < 1e-12 || len2 < 1e-12 {
		return []fixedmath.Point{v1}
	}

	dx1 := ms.width * (v1.Y - v0.Y) / len1
	dy1 := ms.width * (v1.X - v0.X) / len1
	dx2 := ms.width * (v2.Y - v1.Y) / len2
	dy2 := ms.width * (v2.X - v1.X) / len2

	d1x, d1y := (v1.X-v0.X)/len1, (v1.Y-v0.Y)/len1
	d2x, d2y := (v2.X-v1.X)/len2, (v2.Y-v1.Y)/len2
	theta := math.Atan2(d1x*d2y-d1y*d2x, d1x*d2x+d1y*d2y)
	if math.Abs(theta) < angleElisionThreshold {
		return []fixedmath.Point{{X: v1.X + (dx1+dx2)/2, Y: v1.Y - (dy1+dy2)/2}}
	}

	cp := crossProduct(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if cp != 0 && (cp > 0) == (ms.width > 0) {
		return ms.calcInnerJoin(v1, dx1, dy1, dx2, dy2)
	}
	return ms.calcOuterJoin(v1, dx1, dy1, dx2, dy2, theta)
}

func (ms *mathStroke) calcOuterJoin(v1 fixedmath.Point, dx1, dy1, dx2, dy2, theta float64) []fixedmath.Point {
	switch ms.join {
	case JoinRound:
		return ms.calcArc(v1, dx1, -dy1, dx2, -dy2, theta)
	case JoinBevel:
		return []fixedmath.Point{{X: v1.X + dx1, Y: v1.Y - dy1}, {X: v1.X + dx2, Y: v1.Y - dy2}}
	default: // JoinMiter
		return ms.calcMiter(v1, dx1, dy1, dx2, dy2, theta, ms.miterLimit, true)
	}
}

func (ms *mathStroke) calcInnerJoin(v1 fixedmath.Point, dx1, dy1, dx2, dy2 float64) []fixedmath.Point {
	bevel := []fixedmath.Point{{X: v1.X + dx1, Y: v1.Y - dy1}, {X: v1.X + dx2, Y: v1.Y - dy2}}
	switch ms.innerJoin {
	case InnerJag:
		return []fixedmath.Point{bevel[0], v1, bevel[1]}
	case InnerMiter:
		theta := math.Atan2(dy1*dx2-dx1*dy2, dx1*dx2+dy1*dy2)
		return ms.calcMiter(v1, dx1, dy1, dx2, dy2, theta, ms.innerMiterLimit, false)
	case InnerRound:
		theta := math.Atan2(dy1*dx2-dx1*dy2, dx1*dx2+dy1*dy2)
		return ms.calcArc(v1, dx1, -dy1, dx2, -dy2, -theta)
	default: // InnerBevel: always a straight line (spec §4.6).
		return bevel
	}
}

// calcMiter extends along the bisector of the two offset directions by
// r/cos(θ/2); when 1/sin(θ/2) exceeds the limit, it falls back to a bevel
// (spec §4.6). limited controls whether the limit test is applied at all
// (the default inner-join policy never calls this with limited=false
// needing a hard cutoff, since self-intersection there is permitted).
func (ms *mathStroke) calcMiter(v1 fixedmath.Point, dx1, dy1, dx2, dy2, theta, limit float64, limited bool) []fixedmath.Point {
	nx1, ny1 := dx1, -dy1
	nx2, ny2 := dx2, -dy2
	bisX, bisY := nx1+nx2, ny1+ny2
	blen := math.Hypot(bisX, bisY)
	bevel := []fixedmath.Point{{X: v1.X + dx1, Y: v1.Y - dy1}, {X: v1.X + dx2, Y: v1.Y - dy2}}
	if blen < 1e-9 {
		return bevel
	}
	bisX, bisY = bisX/blen, bisY/blen
	halfAngle := theta / 2
	cosH := math.Cos(halfAngle)
	sinH := math.Abs(math.Sin(halfAngle))
	if cosH < 1e-9 {
		return bevel
	}
	if limited && (sinH < 1e-9 || 1/sinH > limit) {
		return bevel
	}
	miterLen := ms.widthAbs / cosH
	return []fixedmath.Point{{X: v1.X + bisX*miterLen, Y: v1.Y + bisY*miterLen}}
}

// calcArc emits a polyline arc from center+(dx1,dy1) to center+(dx2,dy2)
// sweeping the signed angle theta, with segment count
// max(2, ceil(|θ|/(π/4))) (spec §4.6).
func (ms *mathStroke) calcArc(center fixedmath.Point, dx1, dy1, dx2, dy2, theta float64) []fixedmath.Point {
	r := ms.widthAbs
	a1 := math.Atan2(dy1, dx1)
	n := int(math.Ceil(math.Abs(theta) / (math.Pi / 4)))
	if n < 2 {
		n = 2
	}
	step := theta / float64(n)

	pts := make([]fixedmath.Point, 0, n+1)
	pts = append(pts, fixedmath.Point{X: center.X + dx1, Y: center.Y + dy1})
	a := a1
	for i := 1; i < n; i++ {
		a += step
		pts = append(pts, fixedmath.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	pts = append(pts, fixedmath.Point{X: center.X + dx2, Y: center.Y + dy2})
	return pts
}

package knot

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVerts keeps vertex indices addressable with uint16.
const maxBatchVerts = math.MaxUint16 - 1

// discSegments is the number of triangles in a control point marker.
const discSegments = 12

var whitePixelImage *ebiten.Image

// whitePixel returns a lazily-initialized 1x1 white image used as the
// texture for untextured triangles. Color comes from the vertices.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// strokeBatch accumulates colored triangles and submits them with as few
// DrawTriangles calls as the uint16 index range allows.
type strokeBatch struct {
	verts []ebiten.Vertex
	inds  []uint16
	opts  ebiten.DrawTrianglesOptions
}

func (b *strokeBatch) vertex(x, y float64, r, g, bl, a float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
	}
}

// flush draws the pending triangles onto dst and empties the batch.
func (b *strokeBatch) flush(dst *ebiten.Image) {
	if len(b.inds) > 0 {
		b.opts.AntiAlias = true
		dst.DrawTriangles(b.verts, b.inds, whitePixel(), &b.opts)
	}
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// closedStroke adds a ribbon of the given width along the closed polyline
// through points. Joins are mitered, with the miter length limited to twice
// the half width.
func (b *strokeBatch) closedStroke(dst *ebiten.Image, points []Vec2, width float64, clr Color) {
	n := len(points)
	if n < 2 {
		return
	}
	r, g, bl, a := clr.premultiplied()
	halfW := width / 2

	for j := 0; j <= n; j++ {
		i := j % n
		p := points[i]
		nx, ny := miterNormal(points[wrap(i-1, n)], p, points[wrap(i+1, n)])

		if len(b.verts)+2 > maxBatchVerts {
			if j == 0 {
				b.flush(dst)
			} else {
				last := [2]ebiten.Vertex{b.verts[len(b.verts)-2], b.verts[len(b.verts)-1]}
				b.flush(dst)
				b.verts = append(b.verts, last[0], last[1])
			}
		}

		v := uint16(len(b.verts))
		b.verts = append(b.verts,
			b.vertex(p.X+nx*halfW, p.Y+ny*halfW, r, g, bl, a),
			b.vertex(p.X-nx*halfW, p.Y-ny*halfW, r, g, bl, a),
		)
		if j > 0 {
			b.inds = append(b.inds, v-2, v-1, v, v-1, v+1, v)
		}
	}
}

// disc adds a filled circle marker.
func (b *strokeBatch) disc(dst *ebiten.Image, c Vec2, radius float64, clr Color) {
	if len(b.verts)+discSegments+1 > maxBatchVerts {
		b.flush(dst)
	}
	r, g, bl, a := clr.premultiplied()
	base := uint16(len(b.verts))
	b.verts = append(b.verts, b.vertex(c.X, c.Y, r, g, bl, a))
	for k := range discSegments {
		ang := 2 * math.Pi * float64(k) / discSegments
		b.verts = append(b.verts, b.vertex(c.X+math.Cos(ang)*radius, c.Y+math.Sin(ang)*radius, r, g, bl, a))
	}
	for k := range uint16(discSegments) {
		b.inds = append(b.inds, base, base+1+k, base+1+(k+1)%discSegments)
	}
}

// miterNormal returns the join normal at cur: the normalized average of the
// normals of the two adjacent segments, lengthened to keep the ribbon width
// at the corner but never more than 2x.
func miterNormal(prev, cur, next Vec2) (float64, float64) {
	nx0, ny0 := perpendicular(prev, cur)
	nx1, ny1 := perpendicular(cur, next)
	nx, ny := nx0+nx1, ny0+ny1
	ln := math.Sqrt(nx*nx + ny*ny)
	if ln < 1e-10 {
		return nx0, ny0
	}
	nx /= ln
	ny /= ln
	if dot := nx0*nx + ny0*ny; dot > 0.1 {
		scale := min(1/dot, 2)
		nx *= scale
		ny *= scale
	}
	return nx, ny
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// inactiveDim darkens curves other than the active one.
const inactiveDim = 0.45

// drawCurves draws every created curve: a marker per control point, the
// smoothed samples as a closed ribbon and, when enabled, the control polygon.
func (s *Saver) drawCurves(screen *ebiten.Image) {
	active := s.curves.Index()
	lineColor := s.hue.Color()
	s.curves.Each(func(i int, c *Curve) {
		lc, pc := lineColor, ColorWhite
		if i != active {
			lc, pc = lc.Scale(inactiveDim), pc.Scale(inactiveDim)
		}
		for _, p := range c.Points() {
			x, y := p.IntPair()
			s.batch.disc(screen, V(float64(x), float64(y)), s.cfg.PointRadius, pc)
		}
		if s.showPolygon {
			s.batch.closedStroke(screen, c.Points(), 1, pc)
		}
		s.batch.closedStroke(screen, c.Smoothed(), s.cfg.LineWidth, lc)
	})
	s.batch.flush(screen)
}

package layout

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg/text"
)

// probe is a leaf with a fixed preferred size that paints its bounds.
type probe struct {
	Leaf
	size Size
}

func fixedLeaf(w, h float64) probe { return probe{size: Sz(w, h)} }

func (p probe) Measure(ProposedSize) Size { return p.size }

func (p probe) Render(s Surface, size Size) {
	s.DrawRectangle(0, 0, size.Width, size.Height)
	s.Fill()
}

// bounded is a rectangle that accepts widths between lo and hi.
func bounded(lo, hi float64) FlexibleFrame {
	return FlexibleFrame{MinWidth: Some(lo), MaxWidth: Some(hi), Content: NewRectangle()}
}

// rect is a painted rectangle in surface root coordinates.
type rect struct {
	X, Y, W, H float64
	Op         string
	Color      color.Color
	LineWidth  float64
}

type placedString struct {
	Text string
	X, Y float64
}

type traceState struct {
	origin, scale Point
	color         color.Color
	lineWidth     float64
}

// traceSurface is a Surface that records painted rectangles in root
// coordinates. It supports translation and axis-aligned scaling.
type traceSurface struct {
	state    traceState
	stack    []traceState
	pending  []rect
	rects    []rect
	strings  []placedString
	maxDepth int
	badPops  int
	face     text.Face
}

func newTraceSurface() *traceSurface {
	return &traceSurface{state: traceState{scale: Pt(1, 1), color: color.Black, lineWidth: 1}}
}

func (s *traceSurface) Push() {
	s.stack = append(s.stack, s.state)
	s.maxDepth = max(s.maxDepth, len(s.stack))
}

func (s *traceSurface) Pop() {
	if len(s.stack) == 0 {
		s.badPops++
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *traceSurface) Translate(x, y float64) {
	s.state.origin = s.state.origin.Add(Pt(x*s.state.scale.X, y*s.state.scale.Y))
}

func (s *traceSurface) Scale(x, y float64) {
	s.state.scale = Pt(s.state.scale.X*x, s.state.scale.Y*y)
}

func (s *traceSurface) SetColor(c color.Color) { s.state.color = c }
func (s *traceSurface) SetLineWidth(w float64) { s.state.lineWidth = w }
func (s *traceSurface) SetFont(face text.Face) { s.face = face }
func (s *traceSurface) DrawEllipse(x, y, rx, ry float64) {
	s.DrawRectangle(x-rx, y-ry, 2*rx, 2*ry)
}

func (s *traceSurface) DrawRectangle(x, y, w, h float64) {
	x0, y0 := s.point(x, y)
	x1, y1 := s.point(x+w, y+h)
	s.pending = append(s.pending, rect{
		X: math.Min(x0, x1), Y: math.Min(y0, y1),
		W: math.Abs(x1 - x0), H: math.Abs(y1 - y0),
	})
}

func (s *traceSurface) Fill()   { s.flush("fill") }
func (s *traceSurface) Stroke() { s.flush("stroke") }

func (s *traceSurface) DrawString(str string, x, y float64) {
	px, py := s.point(x, y)
	s.strings = append(s.strings, placedString{Text: str, X: px, Y: py})
}

func (s *traceSurface) point(x, y float64) (float64, float64) {
	return s.state.origin.X + x*s.state.scale.X, s.state.origin.Y + y*s.state.scale.Y
}

func (s *traceSurface) flush(op string) {
	for _, r := range s.pending {
		r.Op = op
		r.Color = s.state.color
		r.LineWidth = s.state.lineWidth
		s.rects = append(s.rects, r)
	}
	s.pending = nil
}

// assertBalanced fails the test if any Push was left open or any Pop was
// unmatched.
func (s *traceSurface) assertBalanced(t *testing.T) {
	t.Helper()
	if len(s.stack) != 0 {
		t.Errorf("%d Push calls left open", len(s.stack))
	}
	if s.badPops != 0 {
		t.Errorf("%d unmatched Pop calls", s.badPops)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sizesEqual(a, b Size) bool {
	return approxEqual(a.Width, b.Width) && approxEqual(a.Height, b.Height)
}

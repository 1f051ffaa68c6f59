package layout

import "testing"

func TestVGridMeasure(t *testing.T) {
	g := VGrid{
		Columns:  []float64{100, 200},
		Children: []View{fixedLeaf(50, 30), fixedLeaf(50, 50), fixedLeaf(50, 20)},
	}
	tests := []struct {
		p    ProposedSize
		want Size
	}{
		{Unconstrained, Sz(300, 70)},
		{ProposeWH(500, 10), Sz(500, 70)},
		{ProposeWH(100, 10), Sz(300, 70)},
	}
	for _, tt := range tests {
		if got := g.Measure(tt.p); got != tt.want {
			t.Errorf("Measure(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestVGridNoColumns(t *testing.T) {
	g := VGrid{Children: []View{fixedLeaf(10, 10)}}
	if got := g.Measure(ProposeWH(100, 100)); !got.IsZero() {
		t.Errorf("Measure = %v, want zero", got)
	}
	s := newTraceSurface()
	g.Render(s, Sz(100, 100))
	if len(s.rects) != 0 {
		t.Errorf("painted %d rects, want 0", len(s.rects))
	}
}

func TestVGridRenderRowMajorTopDown(t *testing.T) {
	g := VGrid{
		Columns:  []float64{100, 200},
		Children: []View{NewRectangle(), fixedLeaf(50, 50), fixedLeaf(60, 20)},
	}
	size := g.Measure(Unconstrained)
	if size != Sz(300, 70) {
		t.Fatalf("Measure = %v, want (300, 70)", size)
	}

	s := newTraceSurface()
	g.Render(s, size)
	s.assertBalanced(t)

	want := []rect{
		// first row is 50 tall; the rectangle stretches to the row height
		{X: 0, Y: 20, W: 100, H: 50},
		{X: 100, Y: 20, W: 50, H: 50},
		{X: 0, Y: 0, W: 60, H: 20},
	}
	if len(s.rects) != len(want) {
		t.Fatalf("painted %d rects, want %d", len(s.rects), len(want))
	}
	for i, w := range want {
		got := s.rects[i]
		if got.X != w.X || got.Y != w.Y || got.W != w.W || got.H != w.H {
			t.Errorf("child %d painted %+v, want %+v", i, got, w)
		}
	}
}

func TestVGridHasNoGuides(t *testing.T) {
	mark := NewHorizontalAlignment(NewAlignmentID("mark", nil))
	g := VGrid{
		Columns:  []float64{10},
		Children: []View{WithGuide(fixedLeaf(10, 10), mark, nil)},
	}
	if _, ok := g.CustomAlignment(mark, Sz(10, 10)); ok {
		t.Error("grid propagated a child's guide")
	}
}

func TestVGridRowFitsWrappedText(t *testing.T) {
	face := DefaultFace()
	lh := face.Metrics().LineHeight()
	width := max(face.Advance("hello"), face.Advance("world")) + 2

	g := VGrid{
		Columns:  []float64{width, 40},
		Children: []View{NewText("hello world"), fixedLeaf(40, 10)},
	}
	got := g.Measure(Unconstrained)
	if !approxEqual(got.Height, 2*lh) {
		t.Errorf("height = %v, want two text lines %v", got.Height, 2*lh)
	}
}

func TestVGridNegativeColumns(t *testing.T) {
	g := VGrid{
		Columns:  []float64{-50, 30},
		Children: []View{fixedLeaf(10, 10), fixedLeaf(20, 10)},
	}
	got := g.Measure(Unconstrained)
	if got != Sz(30, 10) {
		t.Errorf("Measure = %v, want (30, 10)", got)
	}

	s := newTraceSurface()
	g.Render(s, got)
	s.assertBalanced(t)
	for i, r := range s.rects {
		if r.X < 0 || r.W < 0 {
			t.Errorf("child %d painted %+v outside the grid", i, r)
		}
	}
}

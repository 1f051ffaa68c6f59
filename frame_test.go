package layout

import "testing"

func TestFixedFrameMeasure(t *testing.T) {
	tests := []struct {
		name string
		f    FixedFrame
		p    ProposedSize
		want Size
	}{
		{"both fixed", Frame(fixedLeaf(5, 5), Some(100), Some(40)), Unconstrained, Sz(100, 40)},
		{"width only", Frame(NewRectangle(), Some(50), None), ProposeWH(10, 30), Sz(50, 30)},
		{"height from content", Frame(fixedLeaf(20, 10), Some(100), None), Unconstrained, Sz(100, 10)},
		{"neither", Frame(NewRectangle(), None, None), ProposeWH(7, 8), Sz(7, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.Measure(tt.p)
			if got != tt.want {
				t.Errorf("Measure(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if again := tt.f.Measure(tt.p); again != got {
				t.Errorf("second Measure(%v) = %v, first was %v", tt.p, again, got)
			}
		})
	}
}

func TestFixedFrameRenderPlacesContent(t *testing.T) {
	tests := []struct {
		a    Alignment
		want rect
	}{
		{AlignCenter, rect{X: 40, Y: 15, W: 20, H: 10}},
		{AlignTopLeading, rect{X: 0, Y: 30, W: 20, H: 10}},
		{AlignBottomTrailing, rect{X: 80, Y: 0, W: 20, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			f := Frame(fixedLeaf(20, 10), Some(100), Some(40))
			f.Alignment = tt.a

			s := newTraceSurface()
			f.Render(s, Sz(100, 40))
			s.assertBalanced(t)
			if len(s.rects) != 1 {
				t.Fatalf("painted %d rects, want 1", len(s.rects))
			}
			got := s.rects[0]
			if got.X != tt.want.X || got.Y != tt.want.Y || got.W != tt.want.W || got.H != tt.want.H {
				t.Errorf("painted %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFrameGuideMatchesRender(t *testing.T) {
	edge := NewHorizontalAlignment(NewAlignmentID("edge", nil))
	child := WithGuide(fixedLeaf(20, 10), edge, func(s Size) float64 { return s.Width })
	f := Frame(child, Some(100), Some(40))
	f.Alignment = Alignment{Horizontal: edge}

	// Aligning on the guide puts it at the frame's own anchor for it.
	v, ok := f.CustomAlignment(edge, Sz(100, 40))
	if !ok || v != 0 {
		t.Fatalf("CustomAlignment = %v, %v; want 0, true", v, ok)
	}

	s := newTraceSurface()
	f.Render(s, Sz(100, 40))
	if got := s.rects[0].X + s.rects[0].W; got != v {
		t.Errorf("rendered guide at x=%v, CustomAlignment reported %v", got, v)
	}

	if _, ok := f.CustomAlignment(Leading, Sz(100, 40)); ok {
		t.Error("frame reported a guide its content does not define")
	}
}

func TestFlexibleFrameMeasure(t *testing.T) {
	tests := []struct {
		name string
		f    FlexibleFrame
		p    ProposedSize
		want Size
	}{
		{"min probe", bounded(20, 100), ProposeWH(0, 10), Sz(20, 10)},
		{"max probe", bounded(20, 100), ProposeWH(probeWidth, 10), Sz(100, 10)},
		{"within range", bounded(20, 100), ProposeWH(50, 10), Sz(50, 10)},
		{"unconstrained uses default then min", bounded(20, 100), Unconstrained, Sz(20, 10)},
		{
			name: "unconstrained uses ideal",
			f:    FlexibleFrame{IdealWidth: Some(60), IdealHeight: Some(30), Content: NewRectangle()},
			p:    Unconstrained,
			want: Sz(60, 30),
		},
		{
			name: "proposal wins over ideal",
			f:    FlexibleFrame{IdealWidth: Some(60), Content: NewRectangle()},
			p:    ProposeWH(25, 5),
			want: Sz(25, 5),
		},
		{
			name: "rigid content capped at max",
			f:    FlexibleFrame{MaxWidth: Some(50), Content: fixedLeaf(80, 10)},
			p:    ProposeWH(30, 10),
			want: Sz(50, 10),
		},
		{
			name: "small content raised to min",
			f:    FlexibleFrame{MinWidth: Some(40), Content: fixedLeaf(10, 10)},
			p:    ProposeWH(100, 10),
			want: Sz(40, 10),
		},
		{
			name: "max grows to proposal",
			f:    FlexibleFrame{MaxWidth: Some(200), Content: fixedLeaf(10, 10)},
			p:    ProposeWH(100, 10),
			want: Sz(100, 10),
		},
		{
			name: "max below min",
			f:    FlexibleFrame{MinWidth: Some(60), MaxWidth: Some(40), Content: NewRectangle()},
			p:    ProposeWH(100, 10),
			want: Sz(40, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.f.Measure(tt.p)
			if got != tt.want {
				t.Errorf("Measure(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if again := tt.f.Measure(tt.p); again != got {
				t.Errorf("second Measure(%v) = %v, first = %v", tt.p, again, got)
			}
		})
	}
}

func TestFlexibleFrameRenderPlacesContent(t *testing.T) {
	f := FlexibleFrame{
		MaxWidth:  Some(200),
		MinHeight: Some(30),
		Alignment: AlignTopLeading,
		Content:   fixedLeaf(10, 10),
	}
	size := f.Measure(ProposeWH(100, 30))
	if size != Sz(100, 30) {
		t.Fatalf("Measure = %v, want (100, 30)", size)
	}

	s := newTraceSurface()
	f.Render(s, size)
	s.assertBalanced(t)
	if got := s.rects[0]; got.X != 0 || got.Y != 20 {
		t.Errorf("content painted at (%v, %v), want (0, 20)", got.X, got.Y)
	}
}

func TestFixedSize(t *testing.T) {
	p := ProposeWH(50, 30)
	tests := []struct {
		name string
		f    FixedSize
		want Size
	}{
		{"none", FixedSize{Content: NewRectangle()}, Sz(50, 30)},
		{"horizontal", FixedSize{Horizontal: true, Content: NewRectangle()}, Sz(DefaultDimension, 30)},
		{"vertical", FixedSize{Vertical: true, Content: NewRectangle()}, Sz(50, DefaultDimension)},
		{"both", FixedSize{Horizontal: true, Vertical: true, Content: NewRectangle()}, Sz(DefaultDimension, DefaultDimension)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Measure(p); got != tt.want {
				t.Errorf("Measure(%v) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

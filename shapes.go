package layout

import "image/color"

// Shape is an outline that fills whatever size it is given.
type Shape interface {
	// Path adds the outline of a shape of the given size to the surface's
	// current path, with the origin at the shape's bottom-left corner.
	Path(s Surface, size Size)
}

// StrokedShape is a Shape painted by stroking its outline instead of
// filling it.
type StrokedShape interface {
	Shape
	LineWidth() float64
}

// Rectangle is a rectangle filling its bounds.
type Rectangle struct{}

func (Rectangle) Path(s Surface, size Size) {
	s.DrawRectangle(0, 0, size.Width, size.Height)
}

// Ellipse is an ellipse inscribed in its bounds.
type Ellipse struct{}

func (Ellipse) Path(s Surface, size Size) {
	rx, ry := size.Width/2, size.Height/2
	s.DrawEllipse(rx, ry, rx, ry)
}

// BorderShape is a rectangle outline whose stroke lies just inside its bounds.
type BorderShape struct {
	Width float64
}

func (b BorderShape) Path(s Surface, size Size) {
	inset := b.Width / 2
	s.DrawRectangle(inset, inset, max(0, size.Width-b.Width), max(0, size.Height-b.Width))
}

// LineWidth implements StrokedShape.
func (b BorderShape) LineWidth() float64 { return b.Width }

// ShapeView renders a Shape in the current color. It accepts any proposed
// size, resolving open axes to DefaultDimension.
type ShapeView struct {
	Leaf
	Shape Shape
}

// NewShape returns a view drawing sh.
func NewShape(sh Shape) ShapeView {
	return ShapeView{Shape: sh}
}

// NewRectangle returns a view filling a rectangle.
func NewRectangle() ShapeView { return NewShape(Rectangle{}) }

// NewEllipse returns a view filling an ellipse.
func NewEllipse() ShapeView { return NewShape(Ellipse{}) }

func (v ShapeView) Measure(p ProposedSize) Size {
	return p.OrDefault()
}

func (v ShapeView) Render(s Surface, size Size) {
	s.Push()
	defer s.Pop()
	if st, ok := v.Shape.(StrokedShape); ok {
		s.SetLineWidth(st.LineWidth())
		st.Path(s, size)
		s.Stroke()
		return
	}
	v.Shape.Path(s, size)
	s.Fill()
}

// Color returns a view that fills its bounds with c.
func Color(c color.Color) Foreground {
	return WithForeground(NewRectangle(), c)
}

// Border returns v with a border of the given width drawn inside its edges.
func Border(v View, c color.Color, width float64) Overlay {
	return WithOverlay(v, WithForeground(NewShape(BorderShape{Width: width}), c))
}

package layout

import "image/color"

// Priority sets the layout priority of its content.
type Priority struct {
	Content  View
	Priority float64
}

// WithPriority returns v with layout priority p.
func WithPriority(v View, p float64) Priority {
	return Priority{Content: v, Priority: p}
}

func (p Priority) Measure(proposed ProposedSize) Size { return p.Content.Measure(proposed) }

func (p Priority) Render(s Surface, size Size) { p.Content.Render(s, size) }

func (p Priority) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return p.Content.CustomAlignment(h, size)
}

func (p Priority) LayoutPriority() float64 { return p.Priority }

// Foreground sets the drawing color for its content.
type Foreground struct {
	Content View
	Color   color.Color
}

// WithForeground returns v drawn in c.
func WithForeground(v View, c color.Color) Foreground {
	return Foreground{Content: v, Color: c}
}

func (f Foreground) Measure(p ProposedSize) Size { return f.Content.Measure(p) }

func (f Foreground) Render(s Surface, size Size) {
	s.Push()
	defer s.Pop()
	if f.Color != nil {
		s.SetColor(f.Color)
	}
	f.Content.Render(s, size)
}

func (f Foreground) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return f.Content.CustomAlignment(h, size)
}

func (f Foreground) LayoutPriority() float64 { return f.Content.LayoutPriority() }

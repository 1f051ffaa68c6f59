package layout

// Overlay draws Overlay on top of Content. The overlay is sized against the
// content's size and aligned to it, but never changes the content's footprint.
type Overlay struct {
	Content   View
	Overlay   View
	Alignment Alignment
}

// WithOverlay returns v with o drawn on top of it, centered.
func WithOverlay(v, o View) Overlay {
	return Overlay{Content: v, Overlay: o}
}

func (o Overlay) Measure(p ProposedSize) Size { return o.Content.Measure(p) }

func (o Overlay) Render(s Surface, size Size) {
	o.Content.Render(s, size)

	overlaySize := o.Overlay.Measure(Propose(size))
	t := siblingTranslation(o.Content, o.Overlay, size, overlaySize, o.Alignment)
	s.Push()
	defer s.Pop()
	s.Translate(t.X, t.Y)
	o.Overlay.Render(s, overlaySize)
}

func (o Overlay) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return o.Content.CustomAlignment(h, size)
}

func (o Overlay) LayoutPriority() float64 { return o.Content.LayoutPriority() }

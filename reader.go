package layout

import "strconv"

// GeometryReader is a view whose content depends on the size it is given.
// It accepts any proposal, resolving open axes to DefaultDimension, and
// places the content built for that size at its top-leading corner.
type GeometryReader struct {
	Content func(Size) View
}

func (g GeometryReader) Measure(p ProposedSize) Size {
	return p.OrDefault()
}

func (g GeometryReader) Render(s Surface, size Size) {
	if g.Content == nil {
		return
	}
	renderAligned(s, g.Content(size), size, AlignTopLeading)
}

func (GeometryReader) CustomAlignment(HorizontalAlignment, Size) (float64, bool) { return 0, false }

func (GeometryReader) LayoutPriority() float64 { return 0 }

// Measured overlays v with its rendered width, truncated to an integer.
func Measured(v View) Overlay {
	return WithOverlay(v, GeometryReader{Content: func(size Size) View {
		return NewText(strconv.Itoa(int(size.Width)))
	}})
}

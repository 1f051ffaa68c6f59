package layout

// View is a node of the layout tree.
//
// Measure and CustomAlignment must be free of side effects and return the same
// result for the same arguments. Render may be called with a size other than
// the one last passed to Measure.
type View interface {
	// Measure returns the size the view occupies when offered p.
	Measure(p ProposedSize) Size

	// Render paints the view into s, assuming it occupies exactly size with
	// the surface origin at the view's bottom-left corner. Views that move
	// the origin must Push before and Pop after.
	Render(s Surface, size Size)

	// CustomAlignment returns the offset of the guide for h from the view's
	// origin, if the subtree defines one.
	CustomAlignment(h HorizontalAlignment, size Size) (float64, bool)

	// LayoutPriority orders siblings in a stack; higher is sized first.
	LayoutPriority() float64
}

// Leaf supplies the defaults of a primitive view without alignment guides or
// priority. Embed it and implement Measure and Render.
type Leaf struct{}

// CustomAlignment implements View; leaves never define a guide.
func (Leaf) CustomAlignment(HorizontalAlignment, Size) (float64, bool) { return 0, false }

// LayoutPriority implements View.
func (Leaf) LayoutPriority() float64 { return 0 }

// Composite is embedded by views that are defined entirely by another view,
// their body. Every View method is forwarded to the body.
//
//	type Badge struct{ layout.Composite }
//
//	func NewBadge(label string) Badge {
//		return Badge{layout.Compose(layout.Border(layout.NewText(label), colornames.Red, 1))}
//	}
//
// A Composite without a body is a programming error: its methods panic.
type Composite struct {
	body View
}

// Compose returns a Composite forwarding to body.
func Compose(body View) Composite {
	return Composite{body: body}
}

// Body returns the view this composite forwards to.
func (c Composite) Body() View {
	if c.body == nil {
		panic("layout: composite view has no body")
	}
	return c.body
}

// Measure implements View.
func (c Composite) Measure(p ProposedSize) Size { return c.Body().Measure(p) }

// Render implements View.
func (c Composite) Render(s Surface, size Size) { c.Body().Render(s, size) }

// CustomAlignment implements View.
func (c Composite) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return c.Body().CustomAlignment(h, size)
}

// LayoutPriority implements View.
func (c Composite) LayoutPriority() float64 { return c.Body().LayoutPriority() }

// Empty is a view that occupies no space and draws nothing.
type Empty struct{ Leaf }

func (Empty) Measure(ProposedSize) Size { return Size{} }

func (Empty) Render(Surface, Size) {}

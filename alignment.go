package layout

// AlignmentID identifies an alignment and supplies its anchor when no view in
// the subtree overrides it. IDs are compared by identity.
type AlignmentID struct {
	name         string
	defaultValue func(Size) float64
}

// NewAlignmentID returns a new identity for a custom alignment. defaultValue
// maps a view's size to the anchor offset used when the view defines no guide.
func NewAlignmentID(name string, defaultValue func(Size) float64) *AlignmentID {
	if defaultValue == nil {
		defaultValue = func(Size) float64 { return 0 }
	}
	return &AlignmentID{name: name, defaultValue: defaultValue}
}

// Name returns the name the ID was created with.
func (id *AlignmentID) Name() string { return id.name }

// DefaultValue returns the anchor offset for a view of size s.
func (id *AlignmentID) DefaultValue(s Size) float64 { return id.defaultValue(s) }

var (
	leadingID          = NewAlignmentID("leading", func(Size) float64 { return 0 })
	horizontalCenterID = NewAlignmentID("center", func(s Size) float64 { return s.Width / 2 })
	trailingID         = NewAlignmentID("trailing", func(s Size) float64 { return s.Width })

	// The vertical axis points up: top is the view's height, bottom is 0.
	topID            = NewAlignmentID("top", func(s Size) float64 { return s.Height })
	verticalCenterID = NewAlignmentID("center", func(s Size) float64 { return s.Height / 2 })
	bottomID         = NewAlignmentID("bottom", func(Size) float64 { return 0 })
)

// HorizontalAlignment is an alignment along the x axis.
// The zero value is HorizontalCenter.
type HorizontalAlignment struct {
	id     *AlignmentID
	custom bool
}

// VerticalAlignment is an alignment along the y axis.
// The zero value is VerticalCenter.
type VerticalAlignment struct {
	id     *AlignmentID
	custom bool
}

// Built-in alignments.
var (
	Leading          = HorizontalAlignment{id: leadingID}
	HorizontalCenter = HorizontalAlignment{id: horizontalCenterID}
	Trailing         = HorizontalAlignment{id: trailingID}

	Top            = VerticalAlignment{id: topID}
	VerticalCenter = VerticalAlignment{id: verticalCenterID}
	Bottom         = VerticalAlignment{id: bottomID}
)

// NewHorizontalAlignment returns a custom horizontal alignment for id.
// Custom alignments are the only ones stacks aggregate from their children.
func NewHorizontalAlignment(id *AlignmentID) HorizontalAlignment {
	return HorizontalAlignment{id: id, custom: true}
}

// NewVerticalAlignment returns a custom vertical alignment for id.
//
// Vertical alignments only ever resolve to their default value: no view
// propagates vertical guides.
func NewVerticalAlignment(id *AlignmentID) VerticalAlignment {
	return VerticalAlignment{id: id, custom: true}
}

// ID returns the alignment's identity.
func (h HorizontalAlignment) ID() *AlignmentID {
	if h.id == nil {
		return horizontalCenterID
	}
	return h.id
}

// DefaultValue returns the anchor x offset for a view of size s.
func (h HorizontalAlignment) DefaultValue(s Size) float64 {
	return h.ID().DefaultValue(s)
}

// IsCustom reports whether h was created with NewHorizontalAlignment.
func (h HorizontalAlignment) IsCustom() bool { return h.custom }

// Is reports whether h and other share the same identity.
func (h HorizontalAlignment) Is(other HorizontalAlignment) bool {
	return h.ID() == other.ID()
}

func (h HorizontalAlignment) String() string { return h.ID().Name() }

// ID returns the alignment's identity.
func (v VerticalAlignment) ID() *AlignmentID {
	if v.id == nil {
		return verticalCenterID
	}
	return v.id
}

// DefaultValue returns the anchor y offset for a view of size s.
func (v VerticalAlignment) DefaultValue(s Size) float64 {
	return v.ID().DefaultValue(s)
}

// IsCustom reports whether v was created with NewVerticalAlignment.
func (v VerticalAlignment) IsCustom() bool { return v.custom }

func (v VerticalAlignment) String() string { return v.ID().Name() }

// Alignment pairs a horizontal and a vertical alignment.
// The zero value is AlignCenter.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Named alignments.
var (
	AlignCenter         = Alignment{Horizontal: HorizontalCenter, Vertical: VerticalCenter}
	AlignLeading        = Alignment{Horizontal: Leading, Vertical: VerticalCenter}
	AlignTrailing       = Alignment{Horizontal: Trailing, Vertical: VerticalCenter}
	AlignTop            = Alignment{Horizontal: HorizontalCenter, Vertical: Top}
	AlignBottom         = Alignment{Horizontal: HorizontalCenter, Vertical: Bottom}
	AlignTopLeading     = Alignment{Horizontal: Leading, Vertical: Top}
	AlignTopTrailing    = Alignment{Horizontal: Trailing, Vertical: Top}
	AlignBottomLeading  = Alignment{Horizontal: Leading, Vertical: Bottom}
	AlignBottomTrailing = Alignment{Horizontal: Trailing, Vertical: Bottom}
)

// Point resolves both anchors for a view of size s.
func (a Alignment) Point(s Size) Point {
	return Point{X: a.Horizontal.DefaultValue(s), Y: a.Vertical.DefaultValue(s)}
}

func (a Alignment) String() string {
	return a.Horizontal.String() + "/" + a.Vertical.String()
}

// translation returns the offset that places child, measured at childSize,
// inside a parent of parentSize so their alignment points coincide.
// The child's custom guide for a.Horizontal replaces its default x anchor.
// Vertical guides are not consulted.
func translation(child View, parentSize, childSize Size, a Alignment) Point {
	parent := a.Point(parentSize)
	anchor := a.Point(childSize)
	if x, ok := child.CustomAlignment(a.Horizontal, childSize); ok {
		anchor.X = x
	}
	return parent.Sub(anchor)
}

// siblingTranslation is translation for two views sharing an origin, as in
// an overlay: both sides may replace their x anchor with a custom guide.
// Each side's guide is queried at its own size, so the base's guide sees
// size rather than siblingSize.
func siblingTranslation(base, sibling View, size, siblingSize Size, a Alignment) Point {
	point := a.Point(size)
	if x, ok := base.CustomAlignment(a.Horizontal, size); ok {
		point.X = x
	}
	anchor := a.Point(siblingSize)
	if x, ok := sibling.CustomAlignment(a.Horizontal, siblingSize); ok {
		anchor.X = x
	}
	return point.Sub(anchor)
}

// AlignmentGuide overrides a horizontal alignment for its content.
// Queries for any other alignment are forwarded to the content.
type AlignmentGuide struct {
	Content View
	Guide   HorizontalAlignment
	// Value computes the guide's x offset from the content's size.
	// A nil Value uses the guide's default value.
	Value func(Size) float64
}

// WithGuide returns v with a guide for h computed by value.
func WithGuide(v View, h HorizontalAlignment, value func(Size) float64) AlignmentGuide {
	return AlignmentGuide{Content: v, Guide: h, Value: value}
}

func (g AlignmentGuide) Measure(p ProposedSize) Size { return g.Content.Measure(p) }

func (g AlignmentGuide) Render(s Surface, size Size) { g.Content.Render(s, size) }

func (g AlignmentGuide) LayoutPriority() float64 { return g.Content.LayoutPriority() }

func (g AlignmentGuide) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	if !h.Is(g.Guide) {
		return g.Content.CustomAlignment(h, size)
	}
	if g.Value == nil {
		return g.Guide.DefaultValue(size), true
	}
	return g.Value(size), true
}

package layout

import (
	"cmp"
	"math"
	"slices"
)

// HStack places its children side by side, left to right, aligning them
// vertically.
//
// Width is distributed in layout-priority order. Within one priority, the
// least flexible child is sized first, so rigid children take exactly what
// they need and flexible ones share what is left.
type HStack struct {
	Children  []View
	Alignment VerticalAlignment
	// Spacing is inserted between children when rendering. It does not take
	// part in width distribution, so n children paint (n-1)*Spacing past
	// the measured width.
	Spacing float64
}

// NewHStack returns a center-aligned stack of children.
func NewHStack(children ...View) HStack {
	return HStack{Children: children}
}

// StackLayout is the result of one HStack sizing pass.
type StackLayout struct {
	// Sizes holds each child's size in declared order.
	Sizes []Size
	// Size is the stack's own size: summed widths by the tallest child.
	Size Size
}

// layoutInfo is a child's flexibility at the proposed height.
type layoutInfo struct {
	minWidth, maxWidth float64
	index              int
	priority           float64
}

func (l layoutInfo) flexibility() float64 { return l.maxWidth - l.minWidth }

// compareLayoutInfo orders by priority, highest first, then by flexibility,
// least first.
func compareLayoutInfo(a, b layoutInfo) int {
	if c := cmp.Compare(b.priority, a.priority); c != 0 {
		return c
	}
	return cmp.Compare(a.flexibility(), b.flexibility())
}

// groupByPriority splits infos, which must be sorted by priority, into runs of
// equal priority.
func groupByPriority(infos []layoutInfo) [][]layoutInfo {
	var groups [][]layoutInfo
	start := 0
	for i := 1; i <= len(infos); i++ {
		if i == len(infos) || infos[i].priority != infos[start].priority {
			groups = append(groups, infos[start:i])
			start = i
		}
	}
	return groups
}

// Layout computes the size of every child for proposal p.
func (h HStack) Layout(p ProposedSize) StackLayout {
	if len(h.Children) == 0 {
		return StackLayout{}
	}

	infos := make([]layoutInfo, len(h.Children))
	var allMinWidths float64
	for i, child := range h.Children {
		lower := child.Measure(ProposedSize{Width: Some(0), Height: p.Height})
		upper := child.Measure(ProposedSize{Width: Some(probeWidth), Height: p.Height})
		infos[i] = layoutInfo{
			minWidth: lower.Width,
			maxWidth: upper.Width,
			index:    i,
			priority: child.LayoutPriority(),
		}
		allMinWidths += lower.Width
	}
	slices.SortStableFunc(infos, compareLayoutInfo)

	sizes := make([]Size, len(h.Children))
	remaining := p.OrMax().Width - allMinWidths
	for _, group := range groupByPriority(infos) {
		// The group's minimums were reserved up front; release them now
		// that the group is sized for real.
		for _, info := range group {
			remaining += info.minWidth
		}
		for i, info := range group {
			share := remaining / float64(len(group)-i)
			size := h.Children[info.index].Measure(ProposedSize{Width: Some(share), Height: p.Height})
			sizes[info.index] = size
			remaining = math.Max(0, remaining-size.Width)
		}
	}

	var total Size
	for _, size := range sizes {
		total.Width += size.Width
		total.Height = math.Max(total.Height, size.Height)
	}
	if debugEnabled() {
		widths := make([]float64, len(sizes))
		for i, size := range sizes {
			widths[i] = size.Width
		}
		Logger().Debug("layout: hstack", "proposed", p, "widths", widths, "size", total)
	}
	return StackLayout{Sizes: sizes, Size: total}
}

func (h HStack) Measure(p ProposedSize) Size {
	return h.Layout(p).Size
}

func (h HStack) Render(s Surface, size Size) {
	h.RenderLayout(s, size, h.Layout(Propose(size)))
}

// RenderLayout renders the stack at size using a layout computed earlier by
// Layout. A layout that does not match the children is recomputed.
func (h HStack) RenderLayout(s Surface, size Size, l StackLayout) {
	if len(l.Sizes) != len(h.Children) {
		l = h.Layout(Propose(size))
	}
	stackY := h.Alignment.DefaultValue(size)
	xs := h.offsets(l)
	for i, child := range h.Children {
		childSize := l.Sizes[i]
		childY := h.Alignment.DefaultValue(childSize)
		s.Push()
		s.Translate(xs[i], stackY-childY)
		child.Render(s, childSize)
		s.Pop()
	}
}

// offsets returns the x position of every child.
func (h HStack) offsets(l StackLayout) []float64 {
	xs := make([]float64, len(l.Sizes))
	var x float64
	for i, size := range l.Sizes {
		xs[i] = x
		x += size.Width + h.Spacing
	}
	return xs
}

// CustomAlignment averages the guides its children define for a custom
// alignment. Built-in alignments are never aggregated.
func (h HStack) CustomAlignment(a HorizontalAlignment, size Size) (float64, bool) {
	if !a.IsCustom() {
		return 0, false
	}
	l := h.Layout(Propose(size))
	xs := h.offsets(l)
	var sum float64
	var n int
	for i, child := range h.Children {
		if v, ok := child.CustomAlignment(a, l.Sizes[i]); ok {
			sum += v + xs[i]
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// LayoutPriority is always 0; a stack does not take on its children's
// priorities.
func (HStack) LayoutPriority() float64 { return 0 }

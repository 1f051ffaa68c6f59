package layout

import "math"

// FixedFrame gives its content a fixed width, height, or both. An unset
// dimension takes the content's measured value.
type FixedFrame struct {
	Width, Height Optional
	Alignment     Alignment
	Content       View
}

// Frame returns v in a fixed frame of w by h, centered.
func Frame(v View, w, h Optional) FixedFrame {
	return FixedFrame{Width: w, Height: h, Content: v}
}

func (f FixedFrame) Measure(p ProposedSize) Size {
	w, wok := f.Width.Get()
	h, hok := f.Height.Get()
	if wok && hok {
		return Size{Width: w, Height: h}
	}
	child := f.Content.Measure(ProposedSize{
		Width:  f.Width.OrElse(p.Width),
		Height: f.Height.OrElse(p.Height),
	})
	return Size{
		Width:  f.Width.Or(child.Width),
		Height: f.Height.Or(child.Height),
	}
}

func (f FixedFrame) Render(s Surface, size Size) {
	renderAligned(s, f.Content, size, f.Alignment)
}

func (f FixedFrame) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return alignedGuide(f.Content, h, size, f.Alignment)
}

func (f FixedFrame) LayoutPriority() float64 { return f.Content.LayoutPriority() }

// FlexibleFrame constrains its content between optional minimum and maximum
// sizes, proposing the ideal size when its parent leaves an axis open.
type FlexibleFrame struct {
	MinWidth, IdealWidth, MaxWidth    Optional
	MinHeight, IdealHeight, MaxHeight Optional
	Alignment                         Alignment
	Content                           View
}

func (f FlexibleFrame) Measure(p ProposedSize) Size {
	proposal := ProposedSize{
		Width:  p.Width.OrElse(f.IdealWidth),
		Height: p.Height.OrElse(f.IdealHeight),
	}.OrDefault()
	proposal.Width = clampProposal(proposal.Width, f.MinWidth, f.MaxWidth)
	proposal.Height = clampProposal(proposal.Height, f.MinHeight, f.MaxHeight)

	result := f.Content.Measure(Propose(proposal))
	result.Width = clampResult(result.Width, proposal.Width, f.MinWidth, f.MaxWidth)
	result.Height = clampResult(result.Height, proposal.Height, f.MinHeight, f.MaxHeight)
	return result
}

// clampProposal raises v to lo, then lowers it to hi. When lo > hi, hi wins.
func clampProposal(v float64, lo, hi Optional) float64 {
	if m, ok := lo.Get(); ok && m > v {
		v = m
	}
	if m, ok := hi.Get(); ok && m < v {
		v = m
	}
	return v
}

// clampResult bounds the content's answer r. With a minimum set, the frame is
// at least lo but shrinks to the proposal when the content overflows it; with
// a maximum set, it is at most hi but grows to the proposal when the content
// underfills it.
func clampResult(r, proposal float64, lo, hi Optional) float64 {
	if m, ok := lo.Get(); ok {
		r = math.Max(m, math.Min(r, proposal))
	}
	if m, ok := hi.Get(); ok {
		r = math.Min(m, math.Max(r, proposal))
	}
	return r
}

func (f FlexibleFrame) Render(s Surface, size Size) {
	renderAligned(s, f.Content, size, f.Alignment)
}

func (f FlexibleFrame) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return alignedGuide(f.Content, h, size, f.Alignment)
}

func (f FlexibleFrame) LayoutPriority() float64 { return f.Content.LayoutPriority() }

// renderAligned measures content against size and renders it at its own
// size, placed by alignment.
func renderAligned(s Surface, content View, size Size, a Alignment) {
	childSize := content.Measure(Propose(size))
	t := translation(content, size, childSize, a)
	s.Push()
	defer s.Pop()
	s.Translate(t.X, t.Y)
	content.Render(s, childSize)
}

// alignedGuide lifts content's guide for h into the frame's coordinates using
// the same placement renderAligned applies.
func alignedGuide(content View, h HorizontalAlignment, size Size, a Alignment) (float64, bool) {
	childSize := content.Measure(Propose(size))
	x, ok := content.CustomAlignment(h, childSize)
	if !ok {
		return 0, false
	}
	t := translation(content, size, childSize, a)
	return t.X + x, true
}

// FixedSize proposes an unconstrained size to its content along the chosen
// axes, so the content takes its ideal size there.
type FixedSize struct {
	Horizontal, Vertical bool
	Content              View
}

func (f FixedSize) Measure(p ProposedSize) Size {
	if f.Horizontal {
		p.Width = None
	}
	if f.Vertical {
		p.Height = None
	}
	return f.Content.Measure(p)
}

func (f FixedSize) Render(s Surface, size Size) { f.Content.Render(s, size) }

func (f FixedSize) CustomAlignment(h HorizontalAlignment, size Size) (float64, bool) {
	return f.Content.CustomAlignment(h, size)
}

func (f FixedSize) LayoutPriority() float64 { return f.Content.LayoutPriority() }

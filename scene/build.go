package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/layout"
	"golang.org/x/image/colornames"
)

// Node kinds.
const (
	KindRectangle = "rectangle"
	KindEllipse   = "ellipse"
	KindColor     = "color"
	KindText      = "text"
	KindHStack    = "hstack"
	KindVGrid     = "vgrid"
	KindFrame     = "frame"
	KindFlexFrame = "flexframe"
	KindFixedSize = "fixedsize"
	KindOverlay   = "overlay"
	KindBorder    = "border"
	KindPriority  = "priority"
	KindGuide     = "guide"
	KindMeasured  = "measured"
)

var alignments = map[string]layout.Alignment{
	"center":          layout.AlignCenter,
	"leading":         layout.AlignLeading,
	"trailing":        layout.AlignTrailing,
	"top":             layout.AlignTop,
	"bottom":          layout.AlignBottom,
	"top_leading":     layout.AlignTopLeading,
	"top_trailing":    layout.AlignTopTrailing,
	"bottom_leading":  layout.AlignBottomLeading,
	"bottom_trailing": layout.AlignBottomTrailing,
}

var stackAlignments = map[string]layout.VerticalAlignment{
	"top":    layout.Top,
	"center": layout.VerticalCenter,
	"bottom": layout.Bottom,
}

var guideDefaults = map[string]func(layout.Size) float64{
	"leading":  layout.Leading.DefaultValue,
	"center":   layout.HorizontalCenter.DefaultValue,
	"trailing": layout.Trailing.DefaultValue,
}

// Build turns the document into a view tree. Every node is validated;
// the first problem found is returned as a *DecodeError.
func (d *Document) Build() (layout.View, error) {
	if d.Root == nil {
		return nil, ErrEmptyDocument
	}
	b := builder{guides: make(map[string]layout.HorizontalAlignment, len(d.Guides))}
	for i, g := range d.Guides {
		path := fmt.Sprintf("guides[%d]", i)
		if g.Name == "" {
			return nil, nodeError(path, "", ErrMissingField, "name")
		}
		if _, ok := b.guides[g.Name]; ok {
			return nil, nodeError(path, "", ErrDuplicateGuide, "%q", g.Name)
		}
		def := g.Default
		if def == "" {
			def = "leading"
		}
		fn, ok := guideDefaults[def]
		if !ok {
			return nil, nodeError(path, "", ErrBadAlignment, "default %q", g.Default)
		}
		b.guides[g.Name] = layout.NewHorizontalAlignment(layout.NewAlignmentID(g.Name, fn))
	}
	return b.build(*d.Root, "root")
}

type builder struct {
	guides map[string]layout.HorizontalAlignment
}

func (b *builder) build(n Node, path string) (layout.View, error) {
	switch n.Kind {
	case KindRectangle, KindEllipse:
		if err := b.expectChildren(n, path, 0); err != nil {
			return nil, err
		}
		var v layout.View = layout.NewRectangle()
		if n.Kind == KindEllipse {
			v = layout.NewEllipse()
		}
		return b.tint(v, n, path)

	case KindColor:
		if err := b.expectChildren(n, path, 0); err != nil {
			return nil, err
		}
		if n.Color == "" {
			return nil, nodeError(path, n.Kind, ErrMissingField, "color")
		}
		c, err := ParseColor(n.Color)
		if err != nil {
			return nil, &DecodeError{Path: path, Kind: n.Kind, Err: err}
		}
		return layout.Color(c), nil

	case KindText:
		if err := b.expectChildren(n, path, 0); err != nil {
			return nil, err
		}
		t := layout.NewText(n.Text)
		if n.FontSize > 0 {
			if face := layout.DefaultFace(); face != nil {
				t = t.WithFace(face.Source().Face(n.FontSize))
			}
		}
		return b.tint(t, n, path)

	case KindHStack:
		children, err := b.children(n, path)
		if err != nil {
			return nil, err
		}
		h := layout.HStack{Children: children, Spacing: n.Spacing}
		if n.Alignment != "" {
			a, ok := stackAlignments[n.Alignment]
			if !ok {
				return nil, nodeError(path, n.Kind, ErrBadAlignment, "%q", n.Alignment)
			}
			h.Alignment = a
		}
		return h, nil

	case KindVGrid:
		if len(n.Columns) == 0 {
			return nil, nodeError(path, n.Kind, ErrMissingField, "columns")
		}
		for i, c := range n.Columns {
			if c < 0 {
				return nil, nodeError(path, n.Kind, ErrNegativeLength, "columns[%d] = %g", i, c)
			}
		}
		children, err := b.children(n, path)
		if err != nil {
			return nil, err
		}
		return layout.VGrid{Columns: n.Columns, Children: children}, nil

	case KindFrame:
		content, a, err := b.aligned(n, path)
		if err != nil {
			return nil, err
		}
		return layout.FixedFrame{
			Width:     optional(n.Width),
			Height:    optional(n.Height),
			Alignment: a,
			Content:   content,
		}, nil

	case KindFlexFrame:
		content, a, err := b.aligned(n, path)
		if err != nil {
			return nil, err
		}
		return layout.FlexibleFrame{
			MinWidth:    optional(n.MinWidth),
			IdealWidth:  optional(n.IdealWidth),
			MaxWidth:    optional(n.MaxWidth),
			MinHeight:   optional(n.MinHeight),
			IdealHeight: optional(n.IdealHeight),
			MaxHeight:   optional(n.MaxHeight),
			Alignment:   a,
			Content:     content,
		}, nil

	case KindFixedSize:
		content, err := b.single(n, path)
		if err != nil {
			return nil, err
		}
		horizontal, vertical := n.Horizontal, n.Vertical
		if !horizontal && !vertical {
			horizontal, vertical = true, true
		}
		return layout.FixedSize{Horizontal: horizontal, Vertical: vertical, Content: content}, nil

	case KindOverlay:
		if err := b.expectChildren(n, path, 2); err != nil {
			return nil, err
		}
		a, err := b.alignment(n, path)
		if err != nil {
			return nil, err
		}
		children, err := b.children(n, path)
		if err != nil {
			return nil, err
		}
		return layout.Overlay{Content: children[0], Overlay: children[1], Alignment: a}, nil

	case KindBorder:
		content, err := b.single(n, path)
		if err != nil {
			return nil, err
		}
		var c color.Color = color.Black
		if n.Color != "" {
			if c, err = ParseColor(n.Color); err != nil {
				return nil, &DecodeError{Path: path, Kind: n.Kind, Err: err}
			}
		}
		width := n.LineWidth
		if width <= 0 {
			width = 1
		}
		return layout.Border(content, c, width), nil

	case KindPriority:
		content, err := b.single(n, path)
		if err != nil {
			return nil, err
		}
		return layout.WithPriority(content, n.Priority), nil

	case KindGuide:
		content, err := b.single(n, path)
		if err != nil {
			return nil, err
		}
		if n.Guide == "" {
			return nil, nodeError(path, n.Kind, ErrMissingField, "guide")
		}
		g, ok := b.guides[n.Guide]
		if !ok {
			return nil, nodeError(path, n.Kind, ErrUnknownGuide, "%q", n.Guide)
		}
		return layout.WithGuide(content, g, guideValue(n)), nil

	case KindMeasured:
		content, err := b.single(n, path)
		if err != nil {
			return nil, err
		}
		return layout.Measured(content), nil

	case "":
		return nil, nodeError(path, "", ErrMissingField, "kind")
	}
	return nil, nodeError(path, n.Kind, ErrUnknownKind, "")
}

func (b *builder) expectChildren(n Node, path string, want int) error {
	if len(n.Children) != want {
		return nodeError(path, n.Kind, ErrChildren, "have %d, want %d", len(n.Children), want)
	}
	return nil
}

func (b *builder) children(n Node, path string) ([]layout.View, error) {
	views := make([]layout.View, len(n.Children))
	for i, child := range n.Children {
		v, err := b.build(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		views[i] = v
	}
	return views, nil
}

func (b *builder) single(n Node, path string) (layout.View, error) {
	if err := b.expectChildren(n, path, 1); err != nil {
		return nil, err
	}
	return b.build(n.Children[0], path+".children[0]")
}

func (b *builder) aligned(n Node, path string) (layout.View, layout.Alignment, error) {
	a, err := b.alignment(n, path)
	if err != nil {
		return nil, a, err
	}
	content, err := b.single(n, path)
	return content, a, err
}

func (b *builder) alignment(n Node, path string) (layout.Alignment, error) {
	a := layout.AlignCenter
	if n.Alignment != "" {
		var ok bool
		if a, ok = alignments[n.Alignment]; !ok {
			return a, nodeError(path, n.Kind, ErrBadAlignment, "%q", n.Alignment)
		}
	}
	if n.AlignGuide != "" {
		g, ok := b.guides[n.AlignGuide]
		if !ok {
			return a, nodeError(path, n.Kind, ErrUnknownGuide, "%q", n.AlignGuide)
		}
		a.Horizontal = g
	}
	return a, nil
}

// tint wraps v in a foreground color if the node names one.
func (b *builder) tint(v layout.View, n Node, path string) (layout.View, error) {
	if n.Color == "" {
		return v, nil
	}
	c, err := ParseColor(n.Color)
	if err != nil {
		return nil, &DecodeError{Path: path, Kind: n.Kind, Err: err}
	}
	return layout.WithForeground(v, c), nil
}

func guideValue(n Node) func(layout.Size) float64 {
	switch {
	case n.Value != nil:
		v := *n.Value
		return func(layout.Size) float64 { return v }
	case n.Fraction != nil:
		f := *n.Fraction
		return func(s layout.Size) float64 { return s.Width * f }
	}
	return nil
}

func optional(p *float64) layout.Optional {
	if p == nil {
		return layout.None
	}
	return layout.Some(*p)
}

// ParseColor accepts a CSS color name ("tomato") or a hex color in one of
// the forms #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
		}
		return gg.Hex(hex).Color(), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
}

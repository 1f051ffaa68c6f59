package layout

import "math"

// VGrid lays its children out in rows of fixed-width columns, filling each
// row left to right before starting the next one below it.
type VGrid struct {
	Columns  []float64
	Children []View
}

// column returns the width of column i, floored at 0.
func (g VGrid) column(i int) float64 {
	return math.Max(0, g.Columns[i])
}

// rows splits the children into row-major chunks of len(Columns).
func (g VGrid) rows() [][]View {
	n := len(g.Columns)
	if n == 0 {
		return nil
	}
	rows := make([][]View, 0, (len(g.Children)+n-1)/n)
	for start := 0; start < len(g.Children); start += n {
		rows = append(rows, g.Children[start:min(start+n, len(g.Children))])
	}
	return rows
}

// rowHeight is the tallest ideal height of the row's children at their
// column widths.
func (g VGrid) rowHeight(row []View) float64 {
	var height float64
	for i, child := range row {
		size := child.Measure(ProposedSize{Width: Some(g.column(i))})
		height = math.Max(height, size.Height)
	}
	return height
}

func (g VGrid) Measure(p ProposedSize) Size {
	if len(g.Columns) == 0 {
		return Size{}
	}
	var width, height float64
	for i := range g.Columns {
		width += g.column(i)
	}
	for _, row := range g.rows() {
		height += g.rowHeight(row)
	}
	return Size{Width: math.Max(p.OrDefault().Width, width), Height: height}
}

// Render re-measures each child at its column width and final row height.
// Children may therefore be rendered taller than their ideal height.
func (g VGrid) Render(s Surface, size Size) {
	var offsetY float64
	for r, row := range g.rows() {
		height := g.rowHeight(row)
		if debugEnabled() {
			Logger().Debug("layout: vgrid row", "row", r, "height", height)
		}
		top := size.Height - offsetY
		var offsetX float64
		for i, child := range row {
			childSize := child.Measure(ProposedSize{Width: Some(g.column(i)), Height: Some(height)})
			s.Push()
			s.Translate(offsetX, top-childSize.Height)
			child.Render(s, childSize)
			s.Pop()
			offsetX += childSize.Width
		}
		offsetY += height
	}
}

// CustomAlignment implements View; grids do not propagate guides.
func (VGrid) CustomAlignment(HorizontalAlignment, Size) (float64, bool) { return 0, false }

func (VGrid) LayoutPriority() float64 { return 0 }

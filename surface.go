package layout

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing target of a render pass.
//
// Surfaces use a y-up coordinate space: the origin handed to a view is its
// bottom-left corner. NewImage and Record set this up for gg's y-down devices.
//
// Push and Pop save and restore the transform and drawing state; every Push
// made by a view is matched by a Pop before it returns.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)

	SetColor(c color.Color)
	SetLineWidth(w float64)

	DrawRectangle(x, y, w, h float64)
	DrawEllipse(x, y, rx, ry float64)
	Fill()
	Stroke()

	SetFont(face text.Face)
	// DrawString draws s with its baseline starting at (x, y).
	DrawString(s string, x, y float64)
}

// ContextSurface draws into a gg raster context.
//
// gg.Context.Push saves only the transform, clip and mask, so the surface
// keeps its own stack for color, line width and font.
type ContextSurface struct {
	dc    *gg.Context
	state paintState
	stack []paintState
}

type paintState struct {
	color     color.Color
	lineWidth float64
	face      text.Face
}

// NewContextSurface returns a Surface drawing into dc. The initial color is
// black and the initial line width 1.
func NewContextSurface(dc *gg.Context) *ContextSurface {
	c := &ContextSurface{dc: dc, state: paintState{color: color.Black, lineWidth: 1}}
	dc.SetColor(c.state.color)
	dc.SetLineWidth(c.state.lineWidth)
	return c
}

// Context returns the underlying gg context.
func (c *ContextSurface) Context() *gg.Context { return c.dc }

func (c *ContextSurface) Push() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

func (c *ContextSurface) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.SetColor(c.state.color)
	c.dc.SetLineWidth(c.state.lineWidth)
	if c.state.face != nil {
		c.dc.SetFont(c.state.face)
	}
}

func (c *ContextSurface) SetColor(col color.Color) {
	c.state.color = col
	c.dc.SetColor(col)
}

func (c *ContextSurface) SetLineWidth(w float64) {
	c.state.lineWidth = w
	c.dc.SetLineWidth(w)
}

func (c *ContextSurface) SetFont(face text.Face) {
	c.state.face = face
	c.dc.SetFont(face)
}

func (c *ContextSurface) Translate(x, y float64)           { c.dc.Translate(x, y) }
func (c *ContextSurface) Scale(x, y float64)               { c.dc.Scale(x, y) }
func (c *ContextSurface) DrawRectangle(x, y, w, h float64) { c.dc.DrawRectangle(x, y, w, h) }
func (c *ContextSurface) DrawEllipse(x, y, rx, ry float64) { c.dc.DrawEllipse(x, y, rx, ry) }
func (c *ContextSurface) DrawString(s string, x, y float64) {
	c.dc.DrawString(s, x, y)
}

// Fill fills the current path. Rasterizer errors are logged, not returned:
// a render pass has no error channel.
func (c *ContextSurface) Fill() {
	if err := c.dc.Fill(); err != nil {
		Logger().Warn("layout: fill failed", "err", err)
	}
}

// Stroke strokes the current path. Errors are logged like Fill's.
func (c *ContextSurface) Stroke() {
	if err := c.dc.Stroke(); err != nil {
		Logger().Warn("layout: stroke failed", "err", err)
	}
}

// RecorderSurface captures drawing as gg recording commands, which can be
// played back to any registered recording backend.
type RecorderSurface struct {
	rec *recording.Recorder
}

// NewRecorderSurface returns a Surface recording into rec.
func NewRecorderSurface(rec *recording.Recorder) *RecorderSurface {
	return &RecorderSurface{rec: rec}
}

// Recorder returns the underlying recorder.
func (r *RecorderSurface) Recorder() *recording.Recorder { return r.rec }

func (r *RecorderSurface) Push()                            { r.rec.Push() }
func (r *RecorderSurface) Pop()                             { r.rec.Pop() }
func (r *RecorderSurface) Translate(x, y float64)           { r.rec.Translate(x, y) }
func (r *RecorderSurface) Scale(x, y float64)               { r.rec.Scale(x, y) }
func (r *RecorderSurface) SetColor(col color.Color)         { r.rec.SetColor(gg.FromColor(col)) }
func (r *RecorderSurface) SetLineWidth(w float64)           { r.rec.SetLineWidth(w) }
func (r *RecorderSurface) DrawRectangle(x, y, w, h float64) { r.rec.DrawRectangle(x, y, w, h) }
func (r *RecorderSurface) DrawEllipse(x, y, rx, ry float64) { r.rec.DrawEllipse(x, y, rx, ry) }
func (r *RecorderSurface) Fill()                            { r.rec.Fill() }
func (r *RecorderSurface) Stroke()                          { r.rec.Stroke() }
func (r *RecorderSurface) SetFont(face text.Face)           { r.rec.SetFont(face) }
func (r *RecorderSurface) DrawString(s string, x, y float64) {
	r.rec.DrawString(s, x, y)
}

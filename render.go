package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// ErrUnwritableBackend is returned by Export when the named recording
// backend cannot write its output to an io.Writer.
var ErrUnwritableBackend = errors.New("layout: backend does not support writing to an io.Writer")

// ErrEmptyCanvas is returned by Export for a canvas without area.
var ErrEmptyCanvas = errors.New("layout: canvas width and height must be positive")

// Render draws root into s as if it occupied exactly size. The root is
// wrapped in a fixed frame of that size, so it always sees a concrete
// proposal.
func Render(s Surface, root View, size Size) {
	if debugEnabled() {
		Logger().Debug("layout: render", "size", size)
	}
	Frame(root, Some(size.Width), Some(size.Height)).Render(s, size)
}

// NewImage renders v on a new gg context of w×h pixels. The caller owns the
// returned context and should Close it.
func NewImage(v View, w, h int, opts ...RenderOption) *gg.Context {
	o := applyRenderOptions(opts)
	dc := gg.NewContext(w, h, o.contextOptions...)
	if o.background != nil {
		dc.ClearWithColor(gg.FromColor(o.background))
	}

	s := NewContextSurface(dc)
	s.Push()
	flipY(s, h)
	Render(s, v, Sz(float64(w), float64(h)))
	s.Pop()
	return dc
}

// Record renders v into a resolution-independent recording of w×h.
func Record(v View, w, h int, opts ...RenderOption) *recording.Recording {
	o := applyRenderOptions(opts)
	rec := recording.NewRecorder(w, h)
	if o.background != nil {
		rec.SetColor(gg.FromColor(o.background))
		rec.FillRectangle(0, 0, float64(w), float64(h))
	}

	s := NewRecorderSurface(rec)
	s.Push()
	flipY(s, h)
	Render(s, v, Sz(float64(w), float64(h)))
	s.Pop()
	return rec.FinishRecording()
}

// Export records v and plays it back to the named recording backend, writing
// the backend's output to out. The backend must be registered, usually by a
// blank import such as github.com/gogpu/gg/recording/backends/raster.
func Export(v View, w, h int, backend string, out io.Writer, opts ...RenderOption) error {
	if w <= 0 || h <= 0 {
		return ErrEmptyCanvas
	}
	b, err := recording.NewBackend(backend)
	if err != nil {
		return fmt.Errorf("layout: export: %w", err)
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("layout: export to %q: %w", backend, ErrUnwritableBackend)
	}
	if err := Record(v, w, h, opts...).Playback(wb); err != nil {
		return fmt.Errorf("layout: export to %q: %w", backend, err)
	}
	if _, err := wb.WriteTo(out); err != nil {
		return fmt.Errorf("layout: export to %q: %w", backend, err)
	}
	return nil
}

// flipY turns a y-down device space into the y-up space views draw in.
func flipY(s Surface, h int) {
	s.Translate(0, float64(h))
	s.Scale(1, -1)
}

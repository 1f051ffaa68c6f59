package layout

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
)

var red = color.RGBA{R: 255, A: 255}

func TestRenderWrapsRootInFrame(t *testing.T) {
	s := newTraceSurface()
	// A rigid root larger than the canvas is centered on it.
	Render(s, fixedLeaf(60, 20), Sz(40, 40))
	s.assertBalanced(t)
	if got := s.rects[0]; got.X != -10 || got.Y != 10 {
		t.Errorf("root painted at (%v, %v), want (-10, 10)", got.X, got.Y)
	}

	s = newTraceSurface()
	Render(s, NewRectangle(), Sz(50, 30))
	if got := s.rects[0]; got.W != 50 || got.H != 30 {
		t.Errorf("flexible root painted %+v, want the full canvas", got)
	}
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xc000 && g < 0x4000 && b < 0x4000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xc000 && g > 0xc000 && b > 0xc000
}

func pixel(img image.Image, x, y int) color.Color {
	b := img.Bounds()
	return img.At(b.Min.X+x, b.Min.Y+y)
}

func TestNewImageIsYUp(t *testing.T) {
	// A red band across the top half of the view.
	root := FixedFrame{
		Width:     Some(20),
		Height:    Some(10),
		Alignment: AlignTop,
		Content:   Frame(Color(red), None, Some(5)),
	}
	dc := NewImage(root, 20, 10, WithBackground(color.White))
	t.Cleanup(func() { dc.Close() })

	img := dc.Image()
	if c := pixel(img, 10, 2); !isRed(c) {
		t.Errorf("pixel near the top = %v, want red", c)
	}
	if c := pixel(img, 10, 8); !isWhite(c) {
		t.Errorf("pixel near the bottom = %v, want white background", c)
	}
}

func TestRecordBalancesState(t *testing.T) {
	root := NewHStack(Color(red), Border(NewEllipse(), red, 2), Measured(NewRectangle()))
	rec := Record(root, 90, 30, WithBackground(color.White))

	var saves, restores, fills, strokes int
	var transforms []recording.SetTransformCommand
	for _, cmd := range rec.Commands() {
		switch c := cmd.(type) {
		case recording.SaveCommand:
			saves++
		case recording.RestoreCommand:
			restores++
		case recording.SetTransformCommand:
			transforms = append(transforms, c)
		case recording.FillPathCommand:
			fills++
		case recording.StrokePathCommand:
			strokes++
		}
	}
	if saves == 0 || saves != restores {
		t.Errorf("saves = %d, restores = %d; want equal and non-zero", saves, restores)
	}
	if fills != 3 || strokes != 1 {
		t.Errorf("fills = %d, strokes = %d; want 3 and 1", fills, strokes)
	}
	if len(transforms) == 0 || transforms[0].Matrix.F != 30 {
		t.Errorf("first transform should move the origin to the bottom edge, got %+v", transforms)
	}
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(Color(red), 20, 10, "raster", &buf); err != nil {
		t.Fatalf("Export() = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("raster export did not produce a PNG (%d bytes)", buf.Len())
	}
}

func TestExportErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(Color(red), 0, 10, "raster", &buf); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Export(0×10) = %v, want ErrEmptyCanvas", err)
	}
	if err := Export(Color(red), 10, 10, "no-such-backend", &buf); err == nil {
		t.Error("Export to an unknown backend succeeded")
	}
	if buf.Len() != 0 {
		t.Errorf("failed exports wrote %d bytes", buf.Len())
	}
}

func TestRenderOptions(t *testing.T) {
	o := applyRenderOptions(nil)
	if o.background != nil || len(o.contextOptions) != 0 {
		t.Errorf("default options = %+v, want zero", o)
	}
	o = applyRenderOptions([]RenderOption{WithBackground(red), WithContextOptions(nil, nil)})
	if o.background != red {
		t.Errorf("background = %v, want red", o.background)
	}
	if len(o.contextOptions) != 2 {
		t.Errorf("context options = %d, want 2", len(o.contextOptions))
	}
}

package layout

import (
	"strings"
	"sync"
	"unicode"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
)

// DefaultFontSize is the size in points of the face used by Text when none
// is set.
const DefaultFontSize = 16

const renderSlack = 0.5

var defaultFace = sync.OnceValue(func() text.Face {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		Logger().Error("layout: loading default font", "err", err)
		return nil
	}
	return source.Face(DefaultFontSize)
})

// DefaultFace returns the Go Regular face at DefaultFontSize. It returns nil
// if the embedded font could not be parsed.
func DefaultFace() text.Face {
	return defaultFace()
}

// Text is a leaf that draws a string, wrapping it at word boundaries to the
// proposed width. Its measured width is the widest wrapped line, and its
// height covers as many lines as fit in the proposed height, never fewer
// than one.
type Text struct {
	Leaf
	Content string
	// Face is the font used to shape Content. A nil Face uses DefaultFace.
	Face text.Face
}

// NewText returns a Text drawing s in the default face. s is normalized to
// NFC so that composed and decomposed input measure the same.
func NewText(s string) Text {
	return Text{Content: norm.NFC.String(s)}
}

// WithFace returns a copy of t drawn in face.
func (t Text) WithFace(face text.Face) Text {
	t.Face = face
	return t
}

func (t Text) face() text.Face {
	if t.Face != nil {
		return t.Face
	}
	return DefaultFace()
}

// lines wraps the content to width and returns the lines that fit in height
// along with the widest advance among them.
func (t Text) lines(face text.Face, width, height float64) ([]string, float64) {
	if width <= 0 {
		// zero width still breaks between every character
		width = 1
	}
	wrapped := text.WrapText(t.Content, face, width, text.WrapWordChar)
	lineHeight := face.Metrics().LineHeight()
	n := len(wrapped)
	// compare in float space: an unconstrained height overflows int
	if lineHeight > 0 && height < float64(n)*lineHeight {
		n = max(1, int(height/lineHeight))
	}

	lines := make([]string, 0, n)
	var widest float64
	for _, w := range wrapped[:n] {
		line := strings.TrimRightFunc(w.Text, unicode.IsSpace)
		lines = append(lines, line)
		widest = max(widest, face.Advance(line))
	}
	return lines, widest
}

func (t Text) Measure(p ProposedSize) Size {
	face := t.face()
	if face == nil || t.Content == "" {
		return Size{}
	}
	limit := p.OrMax()
	lines, widest := t.lines(face, limit.Width, limit.Height)
	return Size{
		Width:  widest,
		Height: float64(len(lines)) * face.Metrics().LineHeight(),
	}
}

func (t Text) Render(s Surface, size Size) {
	face := t.face()
	if face == nil || t.Content == "" {
		return
	}
	// a little slack keeps shaping differences from adding a line at the
	// exact measured size
	lines, _ := t.lines(face, size.Width+renderSlack, size.Height+renderSlack)
	m := face.Metrics()

	s.Push()
	defer s.Pop()
	// glyphs are drawn in the device's y-down orientation
	s.Translate(0, size.Height)
	s.Scale(1, -1)
	s.SetFont(face)
	for i, line := range lines {
		s.DrawString(line, 0, m.Ascent+float64(i)*m.LineHeight())
	}
}

package layout

import (
	"image/color"

	"github.com/gogpu/gg"
)

// RenderOption configures NewImage, Record and Export.
//
// Example:
//
//	dc := layout.NewImage(root, 400, 300, layout.WithBackground(color.White))
type RenderOption func(*renderOptions)

type renderOptions struct {
	background     color.Color
	contextOptions []gg.ContextOption
}

// defaultRenderOptions returns the options used when none are given: a
// transparent background and gg's default software renderer.
func defaultRenderOptions() renderOptions {
	return renderOptions{}
}

// WithBackground fills the canvas with c before the view is drawn.
func WithBackground(c color.Color) RenderOption {
	return func(o *renderOptions) {
		o.background = c
	}
}

// WithContextOptions passes opts through to gg.NewContext, for example to
// inject a custom renderer. Record and Export ignore it.
func WithContextOptions(opts ...gg.ContextOption) RenderOption {
	return func(o *renderOptions) {
		o.contextOptions = append(o.contextOptions, opts...)
	}
}

func applyRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

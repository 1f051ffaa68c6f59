// Package layout provides a declarative two-pass layout engine for 2D views.
//
// # Overview
//
// A user interface is a tree of values implementing View. Layout happens in
// two recursive passes over that tree:
//
//   - Measure: a parent proposes a size, in which either axis may be left
//     open, and the child answers with the size it wants.
//   - Render: the parent places each child at the size the child reported,
//     translating the drawing surface to the child's origin.
//
// Leaves such as shapes and Text decide their own size. Containers
// (HStack, VGrid, FixedFrame, FlexibleFrame, Overlay) distribute the space
// they are offered among their children, and alignment guides let
// unrelated parts of the tree line up along a shared custom axis.
//
// # Quick Start
//
//	import "github.com/gogpu/layout"
//
//	root := layout.NewHStack(
//	    layout.Color(color.RGBA{R: 255, A: 255}),
//	    layout.Measured(layout.NewText("Hello")),
//	)
//	dc := layout.NewImage(root, 400, 100, layout.WithBackground(color.White))
//	defer dc.Close()
//	dc.SavePNG("hello.png")
//
// # Composite Views
//
// New views are usually built from existing ones by embedding Composite:
//
//	type Badge struct{ layout.Composite }
//
//	func NewBadge(label string) Badge {
//	    return Badge{layout.Compose(layout.Border(layout.NewText(label), color.Black, 1))}
//	}
//
// # Coordinate System
//
// Views draw in a y-up space: the origin is the bottom-left corner of the
// view, x increases right and y increases up. Built-in vertical alignments
// follow from this, so Top is at the view's height and Bottom at 0.
// NewImage and Record flip gg's y-down device space once at the root.
//
// # Output
//
// Render draws into any Surface. ContextSurface adapts a gg.Context for
// raster output and RecorderSurface adapts a recording.Recorder, whose
// recordings can be played back to any registered backend with Export.
package layout

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

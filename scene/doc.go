// Package scene describes layout view trees in TOML, YAML or JSON files.
//
// A document has a root node and an optional list of named guides. Each node
// has a kind and the attributes that kind uses:
//
//	width = 400
//	height = 120
//	background = "white"
//
//	[[guides]]
//	name = "label"
//
//	[root]
//	kind = "hstack"
//	alignment = "bottom"
//
//	[[root.children]]
//	kind = "color"
//	color = "tomato"
//
//	[[root.children]]
//	kind = "border"
//	color = "#333"
//	line_width = 2
//
//	[[root.children.children]]
//	kind = "text"
//	text = "Hello"
//
// Build validates the whole tree and reports the first problem as a
// *DecodeError naming the offending node's path.
package scene

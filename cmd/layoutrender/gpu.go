//go:build gpu

package main

// Registers gg's GPU accelerator. Without a usable adapter gg falls back to
// the CPU rasterizer.
import _ "github.com/gogpu/gg/gpu"

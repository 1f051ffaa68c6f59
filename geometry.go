package layout

import (
	"fmt"
	"math"
)

// DefaultDimension is the fallback length used by OrDefault for an
// unconstrained axis.
const DefaultDimension = 10

// probeWidth is the "effectively infinite" width stacks use to find how wide
// a child is willing to grow.
const probeWidth = 1e15

// Optional is a length that may be absent. The zero value is absent.
type Optional struct {
	value float64
	valid bool
}

// Some returns a present Optional holding v. Negative values are floored at 0.
func Some(v float64) Optional {
	return Optional{value: math.Max(0, v), valid: true}
}

// None is the absent Optional.
var None Optional

// Get returns the value and whether it is present.
func (o Optional) Get() (float64, bool) {
	return o.value, o.valid
}

// IsSet reports whether o holds a value.
func (o Optional) IsSet() bool {
	return o.valid
}

// Or returns the value if present, otherwise def.
func (o Optional) Or(def float64) float64 {
	if o.valid {
		return o.value
	}
	return def
}

// OrElse returns o if present, otherwise other.
func (o Optional) OrElse(other Optional) Optional {
	if o.valid {
		return o
	}
	return other
}

func (o Optional) String() string {
	if !o.valid {
		return "nil"
	}
	return fmt.Sprintf("%g", o.value)
}

// ProposedSize is the size a parent offers a child. Each axis may be absent,
// meaning the child is unconstrained along it.
type ProposedSize struct {
	Width, Height Optional
}

// Propose returns a fully constrained proposal matching s.
func Propose(s Size) ProposedSize {
	return ProposedSize{Width: Some(s.Width), Height: Some(s.Height)}
}

// ProposeWH returns a fully constrained proposal of w by h.
func ProposeWH(w, h float64) ProposedSize {
	return ProposedSize{Width: Some(w), Height: Some(h)}
}

// Unconstrained is the proposal with both axes absent.
var Unconstrained ProposedSize

// OrMax resolves absent axes to the largest finite float64.
func (p ProposedSize) OrMax() Size {
	return Size{
		Width:  p.Width.Or(math.MaxFloat64),
		Height: p.Height.Or(math.MaxFloat64),
	}
}

// OrDefault resolves absent axes to DefaultDimension.
func (p ProposedSize) OrDefault() Size {
	return Size{
		Width:  p.Width.Or(DefaultDimension),
		Height: p.Height.Or(DefaultDimension),
	}
}

func (p ProposedSize) String() string {
	return fmt.Sprintf("(%v × %v)", p.Width, p.Height)
}

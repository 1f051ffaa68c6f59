package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors. Validation failures are reported as *DecodeError values
// wrapping one of these.
var (
	ErrUnknownFormat  = errors.New("scene: unknown format")
	ErrEmptyDocument  = errors.New("scene: document has no root node")
	ErrUnknownField   = errors.New("scene: unknown field")
	ErrUnknownKind    = errors.New("scene: unknown node kind")
	ErrChildren       = errors.New("scene: wrong number of children")
	ErrMissingField   = errors.New("scene: missing required field")
	ErrBadColor       = errors.New("scene: invalid color")
	ErrBadAlignment   = errors.New("scene: invalid alignment")
	ErrUnknownGuide   = errors.New("scene: unknown guide")
	ErrDuplicateGuide = errors.New("scene: duplicate guide")
	ErrNegativeLength = errors.New("scene: negative length")
)

// DecodeError reports an invalid node. Path locates the node from the
// document root, for example "root.children[2].overlay".
type DecodeError struct {
	Path string // node path
	Kind string // node kind, empty if the kind itself is missing
	Err  error  // one of the sentinel errors, possibly wrapped
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func nodeError(path, kind string, err error, format string, args ...any) *DecodeError {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	return &DecodeError{Path: path, Kind: kind, Err: err}
}

package render

import (
	"errors"
	"fmt"
)

// SurfaceErrorKind classifies renderer failures.
type SurfaceErrorKind int

const (
	// SurfaceLost means the surface became unusable (for example a
	// degenerate size mid-resize). Recoverable: reconfigure and retry.
	SurfaceLost SurfaceErrorKind = iota
	// SurfaceOutOfMemory means the surface cannot be allocated. Fatal.
	SurfaceOutOfMemory
	// SurfaceOther covers everything else. The frame is dropped and the
	// simulation continues unaffected.
	SurfaceOther
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceLost:
		return "lost"
	case SurfaceOutOfMemory:
		return "out of memory"
	default:
		return "other"
	}
}

// SurfaceError is the renderer's only error surface.
type SurfaceError struct {
	Kind   SurfaceErrorKind
	Reason string
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("render surface %s: %s", e.Kind, e.Reason)
}

// SurfaceKind extracts the failure kind from an error returned by Render.
// The second return is false when err is not a SurfaceError.
func SurfaceKind(err error) (SurfaceErrorKind, bool) {
	var se *SurfaceError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return SurfaceOther, false
}

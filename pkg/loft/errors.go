package loft

import "errors"

// Generation errors. Every failure aborts the current call without partial output.
var (
	ErrUnsupportedShape       = errors.New("unsupported path shape")
	ErrInvalidProfile         = errors.New("invalid profile")
	ErrBucketOutOfRange       = errors.New("profile x bucket out of range")
	ErrSideCapOutOfRange      = errors.New("side cap index out of range")
	ErrInvalidSteps           = errors.New("invalid step count")
	ErrParamLength            = errors.New("per-offset parameter length mismatch")
	ErrDegenerateIntersection = errors.New("degenerate path intersection")
	ErrStationCountMismatch   = errors.New("station count mismatch between offsets")
	ErrMissingUserPath        = errors.New("user defined path has no provider")
	ErrMeshMisaligned         = errors.New("mesh arrays are not aligned")
)

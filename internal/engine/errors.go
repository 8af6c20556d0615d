package engine

import "github.com/pkg/errors"

var (
	// ErrInvalidDelimiterSet is returned when a transform is requested with
	// no type changer configured at all.
	ErrInvalidDelimiterSet = errors.New("delimiter set has no comment or string markers")
	// ErrUnreachableState signals a scanner defect: a delimiter match that
	// cannot be attributed to any configured changer.
	ErrUnreachableState = errors.New("scanner reached an unreachable state")
)

package convert

import "errors"

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrMissingEvaluation  = errors.New("missing evaluation")
	ErrMissingAnnotation  = errors.New("missing annotation")
	ErrBadPosition        = errors.New("bad starting position")
	ErrOutput             = errors.New("output failed")
	errConversionLimitHit = errors.New("conversion limit reached")
)

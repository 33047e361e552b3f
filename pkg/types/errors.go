package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind returned by plant constructors.
// Every construction error wraps it.
var ErrInvalidArgument = errors.New("invalid argument")

// Construction errors, checked in this order by NewPlantRecord.
var (
	ErrHeightNotPositive = fmt.Errorf("%w: height cannot be below zero", ErrInvalidArgument)
	ErrStemRequired      = fmt.Errorf("%w: cannot have leaves or petals without a stem", ErrInvalidArgument)
	ErrNotAPlant         = fmt.Errorf("%w: this is not a plant", ErrInvalidArgument)
)

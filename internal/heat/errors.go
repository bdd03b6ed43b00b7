package heat

import (
	"errors"
	"fmt"
)

// ErrUnstable indicates the requested steps violate the FTCS stability limit.
var ErrUnstable = errors.New("heat: explicit scheme unstable (r > 0.5)")

// StabilityError reports the offending timestep and the largest stable one.
type StabilityError struct {
	Dt    float64
	DtMax float64
	R     float64
}

func (e *StabilityError) Error() string {
	return fmt.Sprintf("heat: dt=%g exceeds stability limit %g (r=%g > %g)", e.Dt, e.DtMax, e.R, MaxStability)
}

func (e *StabilityError) Unwrap() error {
	return ErrUnstable
}

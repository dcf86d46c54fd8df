package estimating

import (
	"errors"

	"github.com/brushline/estimator-backend/internal/types"
)

var (
	ErrNoOutput          = errors.New("output is required")
	ErrNonPositiveOutput = errors.New("output value must be positive")
)

// ComputeDerivedQuantity converts an entered size into elapsed days using the
// scenario's production rate: days = size / rate. No rounding happens here;
// two-decimal display is a presentation concern. The output unit is carried
// onto the estimate item unchanged by the caller.
func ComputeDerivedQuantity(size float64, output *types.Output) (float64, error) {
	if output == nil {
		return 0, ErrNoOutput
	}
	if output.OutputValue <= 0 {
		return 0, ErrNonPositiveOutput
	}
	return size / output.OutputValue, nil
}

package kernel

import (
	"fmt"
	"math"

	"recycling/internal/pkg/errs"
)

// WeightTolerance is the maximum difference in kilograms below which two
// weights are considered equal. Category breakdowns must agree with the
// order's declared weight within this tolerance.
const WeightTolerance = 0.01

// ErrWeightIsNotConstructed indicates a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("Weight must be created via NewWeight")

// Weight is a value object representing a quantity of material in kilograms.
// Weights are strictly positive; the zero value is invalid.
type Weight struct {
	kg float64
}

// NewWeight creates a Weight from a kilogram amount.
// The amount must be greater than zero and finite.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not a positive finite number of kilograms", kg))
	}
	return Weight{kg: kg}, nil
}

// Kilograms returns the weight as a float64 kilogram amount.
func (w Weight) Kilograms() float64 {
	return w.kg
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg + other.kg}
}

// AlmostEqual reports whether two weights agree within WeightTolerance.
func (w Weight) AlmostEqual(other Weight) bool {
	return math.Abs(w.kg-other.kg) <= WeightTolerance
}

// String formats the weight with two decimal places, e.g. "50.00 kg".
func (w Weight) String() string {
	return fmt.Sprintf("%.2f kg", w.kg)
}

// Validate returns ErrWeightIsNotConstructed for the zero value.
func (w Weight) Validate() error {
	if w.kg <= 0 {
		return ErrWeightIsNotConstructed
	}
	return nil
}

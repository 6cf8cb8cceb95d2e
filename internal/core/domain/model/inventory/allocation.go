package inventory

import (
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CategoryWeight is one category/weight pair from a completed appointment's
// itemized breakdown.
type CategoryWeight struct {
	Category string
	Weight   kernel.Weight
}

// AllocatePrice distributes an order's total price across its categories
// proportionally to weight, rounded to two decimal places. The last category
// absorbs the rounding remainder, so the allocated amounts always sum to
// exactly the total.
//
// Returns one price per input item, in input order. Fails when the breakdown
// is empty, which is how an appointment without category data is reported.
func AllocatePrice(total decimal.Decimal, items []CategoryWeight) ([]decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, errs.NewIntegrityViolationError("appointment has no category data")
	}
	if total.IsNegative() {
		return nil, errs.NewValueIsInvalidError("total price must not be negative")
	}

	totalWeight := decimal.Zero
	for _, item := range items {
		if err := item.Weight.Validate(); err != nil {
			return nil, err
		}
		totalWeight = totalWeight.Add(decimal.NewFromFloat(item.Weight.Kilograms()))
	}

	prices := make([]decimal.Decimal, len(items))
	allocated := decimal.Zero
	for i, item := range items {
		if i == len(items)-1 {
			prices[i] = total.Sub(allocated)
			break
		}
		w := decimal.NewFromFloat(item.Weight.Kilograms())
		prices[i] = total.Mul(w).Div(totalWeight).Round(2)
		allocated = allocated.Add(prices[i])
	}

	return prices, nil
}

package transportorder

import (
	"errors"
	"fmt"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCategoryDetailIsNotConstructed is returned when a CategoryDetail was not
// created through NewCategoryDetail or RestoreCategoryDetail.
var ErrCategoryDetailIsNotConstructed = errors.New(
	"CategoryDetail must be created via NewCategoryDetail or RestoreCategoryDetail")

// CategoryDetail is one line of a transport order's itemized breakdown:
// a material category, its weight, the agreed price per kilogram, and the
// resulting amount. These rows are the source of truth for category-level
// reporting; the order's ItemCategories field is only a denormalized cache.
type CategoryDetail struct {
	id               kernel.UUID
	transportOrderID kernel.UUID
	categoryKey      string
	categoryName     string
	weight           kernel.Weight
	pricePerKg       decimal.Decimal
	amount           decimal.Decimal
	createdAt        time.Time

	isConstructed bool
}

// NewCategoryDetail creates an itemized category line. The amount is computed
// as weight * pricePerKg rounded to two decimal places.
func NewCategoryDetail(
	id kernel.UUID,
	transportOrderID kernel.UUID,
	categoryKey string,
	categoryName string,
	weight kernel.Weight,
	pricePerKg decimal.Decimal,
) (*CategoryDetail, error) {
	if err := errors.Join(id.Validate(), transportOrderID.Validate(), weight.Validate()); err != nil {
		return nil, err
	}
	if categoryKey == "" {
		return nil, errs.NewValueIsRequiredError("category key")
	}
	if pricePerKg.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price per kg must not be negative")
	}

	amount := pricePerKg.Mul(decimal.NewFromFloat(weight.Kilograms())).Round(2)

	return &CategoryDetail{
		id:               id,
		transportOrderID: transportOrderID,
		categoryKey:      categoryKey,
		categoryName:     categoryName,
		weight:           weight,
		pricePerKg:       pricePerKg,
		amount:           amount,
		createdAt:        time.Now().UTC(),
		isConstructed:    true,
	}, nil
}

// RestoreCategoryDetail reconstructs a category line from persistence,
// keeping the stored amount rather than recomputing it.
func RestoreCategoryDetail(
	id kernel.UUID,
	transportOrderID kernel.UUID,
	categoryKey string,
	categoryName string,
	weight kernel.Weight,
	pricePerKg decimal.Decimal,
	amount decimal.Decimal,
	createdAt time.Time,
) (*CategoryDetail, error) {
	if err := errors.Join(id.Validate(), transportOrderID.Validate(), weight.Validate()); err != nil {
		return nil, err
	}
	if categoryKey == "" {
		return nil, errs.NewValueIsRequiredError("category key")
	}

	return &CategoryDetail{
		id:               id,
		transportOrderID: transportOrderID,
		categoryKey:      categoryKey,
		categoryName:     categoryName,
		weight:           weight,
		pricePerKg:       pricePerKg,
		amount:           amount,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the CategoryDetail was built through a constructor.
func (d *CategoryDetail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrCategoryDetailIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (d *CategoryDetail) ID() kernel.UUID { return d.id }

// TransportOrderID returns the owning transport order.
func (d *CategoryDetail) TransportOrderID() kernel.UUID { return d.transportOrderID }

// CategoryKey returns the machine-readable category key.
func (d *CategoryDetail) CategoryKey() string { return d.categoryKey }

// CategoryName returns the display name of the category.
func (d *CategoryDetail) CategoryName() string { return d.categoryName }

// Weight returns the category's weight.
func (d *CategoryDetail) Weight() kernel.Weight { return d.weight }

// PricePerKg returns the agreed price per kilogram.
func (d *CategoryDetail) PricePerKg() decimal.Decimal { return d.pricePerKg }

// Amount returns the line total (weight * price per kg).
func (d *CategoryDetail) Amount() decimal.Decimal { return d.amount }

// CreatedAt returns the insertion time; read paths order lines by it.
func (d *CategoryDetail) CreatedAt() time.Time { return d.createdAt }

// ValidateCategoryWeights checks the weight-conservation invariant: the
// breakdown must be non-empty and its weights must sum to the order's
// declared weight within kernel.WeightTolerance. A violation rejects the
// whole write; nothing is persisted.
func ValidateCategoryWeights(details []*CategoryDetail, declared kernel.Weight) error {
	if len(details) == 0 {
		return errs.NewIntegrityViolationError("category details must not be empty")
	}

	sum := details[0].Weight()
	for _, d := range details[1:] {
		sum = sum.Add(d.Weight())
	}

	if !sum.AlmostEqual(declared) {
		return errs.NewIntegrityViolationErrorWithCause(
			"category weights do not sum to order weight",
			fmt.Errorf("breakdown sums to %s, order declares %s", sum.String(), declared.String()),
		)
	}
	return nil
}

package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var (
	ErrRateTransportOrderCommandIsNotConstructed = errors.New(
		"RateTransportOrderCommand must be created via NewRateTransportOrderCommand constructor",
	)
	ErrRatingIsOutOfRange = errors.New("rating must be between 1 and 5")
)

// RateTransportOrderCommand represents the recycler's post-hoc rating of a
// completed transport.
type RateTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rating  int
	review  string

	guard guard.ConstructorGuard
}

// NewRateTransportOrderCommand creates a command to rate a completed order.
// The review text is optional.
func NewRateTransportOrderCommand(orderID kernel.UUID, rating int, review string) (RateTransportOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RateTransportOrderCommand{}, err
	}
	if rating < 1 || rating > 5 {
		return RateTransportOrderCommand{}, ErrRatingIsOutOfRange
	}

	return RateTransportOrderCommand{
		orderID: orderID,
		rating:  rating,
		review:  review,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateTransportOrderCommandIsNotConstructed)
}

// OrderID returns the rated order.
func (c RateTransportOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Rating returns the 1 to 5 score.
func (c RateTransportOrderCommand) Rating() int { return c.rating }

// Review returns the optional review text.
func (c RateTransportOrderCommand) Review() string { return c.review }

package transportorder

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewTransportOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewTransportOrder or RestoreOrder")

	// ErrOrderAlreadyRated is returned when a rating is submitted for an
	// order that already carries one.
	ErrOrderAlreadyRated = errors.New("order already has a rating")
)

// Contacts carries the contact persons and phone numbers for both ends of a
// transport assignment: the recycler at the storage point and the worker at
// the base warehouse.
type Contacts struct {
	RecyclerName  string
	RecyclerPhone string
	BaseName      string
	BasePhone     string
}

// Order is the aggregate root for one transporter's pickup-to-delivery
// assignment. It tracks the custody workflow stage, the per-stage timestamps,
// and the weight and price figures that the inventory ledger and warehouse
// receipt are reconciled against.
//
// Invariants:
//   - the stage advances only through the transitions defined on Stage
//   - each stage timestamp is set exactly once, at the transition into that
//     stage, so the non-nil timestamps are monotonically non-decreasing
//   - actual weight is recorded only at completion
type Order struct {
	id     kernel.UUID
	number string

	recyclerID    kernel.UUID
	transporterID *kernel.UUID

	pickupAddress      string
	destinationAddress string
	contacts           Contacts

	estimatedWeight kernel.Weight
	actualWeight    *kernel.Weight
	totalPrice      decimal.Decimal

	// itemCategories is a denormalized, display-only summary of the itemized
	// category breakdown. The transport_order_categories rows are the source
	// of truth.
	itemCategories string

	stage Stage

	createdAt           time.Time
	acceptedAt          *time.Time
	pickupConfirmedAt   *time.Time
	arrivedAtPickupAt   *time.Time
	loadingCompletedAt  *time.Time
	deliveryConfirmedAt *time.Time
	arrivedAtDeliveryAt *time.Time
	deliveredAt         *time.Time
	completedAt         *time.Time
	cancelledAt         *time.Time

	cancelReason *string
	rating       *int
	review       *string

	isConstructed bool
}

// NewTransportOrder creates a new Order in the Pending stage.
//
// The number is the human-readable, day-scoped document number (for example
// "TO202501010042") allocated by the number sequence; it is display-only and
// never used for joins.
func NewTransportOrder(
	id kernel.UUID,
	number string,
	recyclerID kernel.UUID,
	pickupAddress string,
	destinationAddress string,
	contacts Contacts,
	estimatedWeight kernel.Weight,
	totalPrice decimal.Decimal,
) (*Order, error) {
	o := &Order{
		stage:         StagePending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setRecyclerID(recyclerID),
		o.setAddresses(pickupAddress, destinationAddress),
		o.setEstimatedWeight(estimatedWeight),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	o.contacts = contacts
	return o, nil
}

// Snapshot carries every persisted attribute of an Order. It exists for the
// persistence adapter: RestoreOrder rebuilds an aggregate from a snapshot,
// and Snapshot() produces one for storage.
type Snapshot struct {
	ID                  kernel.UUID
	Number              string
	RecyclerID          kernel.UUID
	TransporterID       *kernel.UUID
	PickupAddress       string
	DestinationAddress  string
	Contacts            Contacts
	EstimatedWeight     kernel.Weight
	ActualWeight        *kernel.Weight
	TotalPrice          decimal.Decimal
	ItemCategories      string
	Stage               Stage
	CreatedAt           time.Time
	AcceptedAt          *time.Time
	PickupConfirmedAt   *time.Time
	ArrivedAtPickupAt   *time.Time
	LoadingCompletedAt  *time.Time
	DeliveryConfirmedAt *time.Time
	ArrivedAtDeliveryAt *time.Time
	DeliveredAt         *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	CancelReason        *string
	Rating              *int
	Review              *string
}

// RestoreOrder reconstructs an Order from persistence. The stage must be a
// valid workflow stage; identity and weight fields are revalidated so a
// corrupted row cannot produce a usable aggregate.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		contacts:            s.Contacts,
		actualWeight:        s.ActualWeight,
		itemCategories:      s.ItemCategories,
		createdAt:           s.CreatedAt,
		acceptedAt:          s.AcceptedAt,
		pickupConfirmedAt:   s.PickupConfirmedAt,
		arrivedAtPickupAt:   s.ArrivedAtPickupAt,
		loadingCompletedAt:  s.LoadingCompletedAt,
		deliveryConfirmedAt: s.DeliveryConfirmedAt,
		arrivedAtDeliveryAt: s.ArrivedAtDeliveryAt,
		deliveredAt:         s.DeliveredAt,
		completedAt:         s.CompletedAt,
		cancelledAt:         s.CancelledAt,
		cancelReason:        s.CancelReason,
		rating:              s.Rating,
		review:              s.Review,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setRecyclerID(s.RecyclerID),
		o.setAddresses(s.PickupAddress, s.DestinationAddress),
		o.setEstimatedWeight(s.EstimatedWeight),
		o.setTotalPrice(s.TotalPrice),
		s.Stage.Validate(),
	); err != nil {
		return nil, err
	}

	if s.TransporterID != nil {
		if err := s.TransporterID.Validate(); err != nil {
			return nil, err
		}
		o.transporterID = s.TransporterID
	}

	o.stage = s.Stage
	return o, nil
}

// Snapshot returns the full persisted state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                  o.id,
		Number:              o.number,
		RecyclerID:          o.recyclerID,
		TransporterID:       o.transporterID,
		PickupAddress:       o.pickupAddress,
		DestinationAddress:  o.destinationAddress,
		Contacts:            o.contacts,
		EstimatedWeight:     o.estimatedWeight,
		ActualWeight:        o.actualWeight,
		TotalPrice:          o.totalPrice,
		ItemCategories:      o.itemCategories,
		Stage:               o.stage,
		CreatedAt:           o.createdAt,
		AcceptedAt:          o.acceptedAt,
		PickupConfirmedAt:   o.pickupConfirmedAt,
		ArrivedAtPickupAt:   o.arrivedAtPickupAt,
		LoadingCompletedAt:  o.loadingCompletedAt,
		DeliveryConfirmedAt: o.deliveryConfirmedAt,
		ArrivedAtDeliveryAt: o.arrivedAtDeliveryAt,
		DeliveredAt:         o.deliveredAt,
		CompletedAt:         o.completedAt,
		CancelledAt:         o.cancelledAt,
		CancelReason:        o.cancelReason,
		Rating:              o.rating,
		Review:              o.review,
	}
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the display-only document number.
func (o *Order) Number() string { return o.number }

// RecyclerID returns the recycler whose storage point the order collects from.
func (o *Order) RecyclerID() kernel.UUID { return o.recyclerID }

// TransporterID returns the accepting transporter, or nil before acceptance.
func (o *Order) TransporterID() *kernel.UUID { return o.transporterID }

// Stage returns the current workflow stage.
func (o *Order) Stage() Stage { return o.stage }

// Status returns the coarse status derived from the stage.
func (o *Order) Status() Status { return o.stage.Status() }

// EstimatedWeight returns the declared weight at creation.
func (o *Order) EstimatedWeight() kernel.Weight { return o.estimatedWeight }

// ActualWeight returns the weight measured at completion, or nil.
func (o *Order) ActualWeight() *kernel.Weight { return o.actualWeight }

// TotalPrice returns the monetary total of the order.
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }

// ItemCategories returns the denormalized category summary.
func (o *Order) ItemCategories() string { return o.itemCategories }

// PickupAddress returns the storage-point address.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// DestinationAddress returns the base-warehouse address.
func (o *Order) DestinationAddress() string { return o.destinationAddress }

// Contacts returns the contact persons for both ends of the assignment.
func (o *Order) Contacts() Contacts { return o.contacts }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Rating returns the post-completion rating, or nil.
func (o *Order) Rating() *int { return o.rating }

// Review returns the post-completion review text, or nil.
func (o *Order) Review() *string { return o.review }

// Accept assigns the order to a transporter and moves it to Accepted.
// Valid only from Pending; any other stage is a state conflict.
func (o *Order) Accept(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	newStage, err := o.stage.Accept()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.transporterID = &transporterID
	o.acceptedAt = stamp()
	return nil
}

// ConfirmPickupLocation moves the order into the in-transit sub-flow.
func (o *Order) ConfirmPickupLocation() error {
	newStage, err := o.stage.ConfirmPickup()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.pickupConfirmedAt = stamp()
	return nil
}

// ArriveAtPickup records arrival at the recycler's storage point.
func (o *Order) ArriveAtPickup() error {
	newStage, err := o.stage.ArriveAtPickup()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.arrivedAtPickupAt = stamp()
	return nil
}

// CompleteLoading records that the material is on the vehicle. The caller
// must move the recycler's storage-point inventory to in-transit in the same
// transaction; the two writes are one unit of work.
func (o *Order) CompleteLoading() error {
	newStage, err := o.stage.CompleteLoading()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.loadingCompletedAt = stamp()
	return nil
}

// ConfirmDeliveryLocation records confirmation of the destination.
func (o *Order) ConfirmDeliveryLocation() error {
	newStage, err := o.stage.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.deliveryConfirmedAt = stamp()
	return nil
}

// ArriveAtDelivery records arrival at the base warehouse.
func (o *Order) ArriveAtDelivery() error {
	newStage, err := o.stage.ArriveAtDelivery()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.arrivedAtDeliveryAt = stamp()
	return nil
}

// Complete finishes the forward workflow. The optional actual weight is the
// figure measured at the base; it may legitimately differ from the estimate.
func (o *Order) Complete(actualWeight *kernel.Weight) error {
	if actualWeight != nil {
		if err := actualWeight.Validate(); err != nil {
			return err
		}
	}

	newStage, err := o.stage.Complete()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.actualWeight = actualWeight
	o.deliveredAt = stamp()
	o.completedAt = o.deliveredAt
	return nil
}

// Rate records the recycler's post-hoc rating and review.
// Valid only on a Completed order, and only once.
func (o *Order) Rate(rating int, review string) error {
	if o.stage != StageCompleted {
		return errs.NewStateConflictError("Rate",
			"order is "+o.stage.String()+", expected Completed")
	}
	if o.rating != nil {
		return ErrOrderAlreadyRated
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	o.rating = &rating
	if review != "" {
		o.review = &review
	}
	return nil
}

// SetItemCategories refreshes the denormalized category summary. Called when
// the itemized breakdown is recorded; never a substitute for the itemized
// rows.
func (o *Order) SetItemCategories(summary string) {
	o.itemCategories = summary
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setRecyclerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.recyclerID = id
	return nil
}

func (o *Order) setAddresses(pickup, destination string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination address")
	}
	o.pickupAddress = pickup
	o.destinationAddress = destination
	return nil
}

func (o *Order) setEstimatedWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	o.estimatedWeight = w
	return nil
}

func (o *Order) setTotalPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return errs.NewValueIsInvalidError("total price must not be negative")
	}
	o.totalPrice = p
	return nil
}

func stamp() *time.Time {
	t := time.Now().UTC()
	return &t
}

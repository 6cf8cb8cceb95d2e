package transportorder

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Status is the coarse lifecycle state of a transport order, as exposed to
// dashboards and the surrounding application. It is fully determined by the
// fine-grained Stage and never updated independently.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the recycler has requested
	// transport and no transporter has accepted yet.
	StatusPending

	// StatusAccepted indicates a transporter has taken the order but has not
	// started the pickup flow.
	StatusAccepted

	// StatusInTransit covers the whole pickup/loading/delivery sub-flow.
	StatusInTransit

	// StatusCompleted indicates the material arrived at the base warehouse.
	StatusCompleted

	// StatusCancelled is terminal; cancellation is driven by an external
	// flow, never by the forward state machine.
	StatusCancelled
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusInTransit:
		return "InTransit"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Stage is the single source of truth for a transport order's position in
// the custody workflow. It replaces the historical pair of overlapping
// status/sub-stage columns with one sum type; the coarse Status is a total
// function of the Stage.
//
// Stage transitions:
//
//	Pending → Accepted → PickupConfirmed → ArrivedAtPickup →
//	LoadingCompleted → DeliveryConfirmed → ArrivedAtDelivery → Completed
//
// Cancelled is terminal and reachable only through the external
// cancellation flow.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StagePending awaits transporter acceptance.
	StagePending

	// StageAccepted means a transporter owns the order.
	StageAccepted

	// StagePickupConfirmed means the transporter confirmed the pickup
	// location and is en route to the storage point.
	StagePickupConfirmed

	// StageArrivedAtPickup means the transporter is at the storage point.
	StageArrivedAtPickup

	// StageLoadingCompleted means the material is on the vehicle; custody of
	// the recycler's storage-point inventory has moved to in-transit.
	StageLoadingCompleted

	// StageDeliveryConfirmed means the transporter confirmed the destination.
	StageDeliveryConfirmed

	// StageArrivedAtDelivery means the vehicle is at the base warehouse.
	StageArrivedAtDelivery

	// StageCompleted is the terminal forward state.
	StageCompleted

	// StageCancelled is the terminal state of the external cancellation flow.
	StageCancelled
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:           "Unknown",
		StagePending:           "Pending",
		StageAccepted:          "Accepted",
		StagePickupConfirmed:   "PickupConfirmed",
		StageArrivedAtPickup:   "ArrivedAtPickup",
		StageLoadingCompleted:  "LoadingCompleted",
		StageDeliveryConfirmed: "DeliveryConfirmed",
		StageArrivedAtDelivery: "ArrivedAtDelivery",
		StageCompleted:         "Completed",
		StageCancelled:         "Cancelled",
	}
}

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the stage is one of the defined workflow stages.
// StageUnknown and out-of-range values are invalid.
func (s Stage) Validate() error {
	if s <= StageUnknown || s > StageCancelled {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// Status maps the stage onto the coarse status. The mapping is total: every
// valid stage has exactly one status.
func (s Stage) Status() Status {
	switch s {
	case StagePending:
		return StatusPending
	case StageAccepted:
		return StatusAccepted
	case StagePickupConfirmed, StageArrivedAtPickup, StageLoadingCompleted,
		StageDeliveryConfirmed, StageArrivedAtDelivery:
		return StatusInTransit
	case StageCompleted:
		return StatusCompleted
	case StageCancelled:
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// IsTerminal reports whether no forward transition can leave this stage.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageCancelled
}

// advance performs a guarded transition: the current stage must equal from.
// Any mismatch is a state conflict, not a validation error, because the
// caller observed a stage that is no longer (or never was) current.
func (s Stage) advance(operation string, from, to Stage) (Stage, error) {
	if s != from {
		return StageUnknown, errs.NewStateConflictError(
			operation,
			fmt.Sprintf("stage is %s, expected %s", s.String(), from.String()),
		)
	}
	return to, nil
}

// Accept transitions Pending → Accepted.
func (s Stage) Accept() (Stage, error) {
	return s.advance("Accept", StagePending, StageAccepted)
}

// ConfirmPickup transitions Accepted → PickupConfirmed.
func (s Stage) ConfirmPickup() (Stage, error) {
	return s.advance("ConfirmPickupLocation", StageAccepted, StagePickupConfirmed)
}

// ArriveAtPickup transitions PickupConfirmed → ArrivedAtPickup.
func (s Stage) ArriveAtPickup() (Stage, error) {
	return s.advance("ArriveAtPickup", StagePickupConfirmed, StageArrivedAtPickup)
}

// CompleteLoading transitions ArrivedAtPickup → LoadingCompleted.
func (s Stage) CompleteLoading() (Stage, error) {
	return s.advance("CompleteLoading", StageArrivedAtPickup, StageLoadingCompleted)
}

// ConfirmDelivery transitions LoadingCompleted → DeliveryConfirmed.
func (s Stage) ConfirmDelivery() (Stage, error) {
	return s.advance("ConfirmDeliveryLocation", StageLoadingCompleted, StageDeliveryConfirmed)
}

// ArriveAtDelivery transitions DeliveryConfirmed → ArrivedAtDelivery.
func (s Stage) ArriveAtDelivery() (Stage, error) {
	return s.advance("ArriveAtDelivery", StageDeliveryConfirmed, StageArrivedAtDelivery)
}

// Complete transitions ArrivedAtDelivery → Completed.
func (s Stage) Complete() (Stage, error) {
	return s.advance("Complete", StageArrivedAtDelivery, StageCompleted)
}

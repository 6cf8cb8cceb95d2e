package inventory

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// CustodyType classifies where a measured quantity of material currently
// physically resides. It is the sole discriminator of custody: a record is
// at the storage point, on a vehicle, or in the warehouse, never more than
// one at a time.
type CustodyType int

const (
	// CustodyUnknown represents an invalid or undefined custody type.
	CustodyUnknown CustodyType = iota

	// CustodyStoragePoint is the recycler's temporary holding location for
	// collected material awaiting transport.
	CustodyStoragePoint

	// CustodyInTransit means the material is loaded on a transporter's
	// vehicle.
	CustodyInTransit

	// CustodyWarehouse means the material has been received at the sorting
	// center.
	CustodyWarehouse
)

// String returns the human-readable name of the custody type.
func (c CustodyType) String() string {
	switch c {
	case CustodyStoragePoint:
		return "StoragePoint"
	case CustodyInTransit:
		return "InTransit"
	case CustodyWarehouse:
		return "Warehouse"
	default:
		return "Unknown"
	}
}

// Validate checks that the custody type is one of the defined values.
func (c CustodyType) Validate() error {
	if c < CustodyStoragePoint || c > CustodyWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("custody type",
			fmt.Errorf("%d is not a valid custody type", c))
	}
	return nil
}

// CustodyTypeFromString parses a custody type from its string name, used by
// the read-side query parameters.
func CustodyTypeFromString(s string) (CustodyType, error) {
	switch s {
	case "StoragePoint":
		return CustodyStoragePoint, nil
	case "InTransit":
		return CustodyInTransit, nil
	case "Warehouse":
		return CustodyWarehouse, nil
	default:
		return CustodyUnknown, errs.NewValueIsInvalidErrorWithCause("custody type",
			fmt.Errorf("%q is not a valid custody type", s))
	}
}

package ports

import (
	"context"
	"time"
)

// Document number prefixes handed to NumberSequence.Next.
const (
	TransportOrderNumberPrefix   = "TO"
	WarehouseReceiptNumberPrefix = "WR"
)

// NumberSequence issues day-scoped human-readable document numbers of the
// form <prefix><YYYYMMDD><seq4>, for example "TO202501010042". Sequences
// restart at 0001 each day and are independent per prefix. Implementations
// must be safe under concurrent allocation: two calls never return the same
// number. When a day's sequence passes 9999 Next returns
// errs.SequenceExhaustedError.
type NumberSequence interface {
	Next(ctx context.Context, prefix string, day time.Time) (string, error)
}

// Package sequence issues day-scoped document numbers from a counter table.
// One row per prefix and day; allocation is a single atomic upsert, so
// concurrent allocators serialize on the row lock and never observe the same
// value. A failed transaction rolls its increment back, which may leave gaps
// after retries but never duplicates.
package sequence

import (
	"context"
	"fmt"
	"time"

	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
)

// maxPerDay is the largest sequence value the four-digit suffix can carry.
const maxPerDay = 9999

// CounterDTO represents one prefix's counter for one day.
type CounterDTO struct {
	Prefix string `gorm:"primaryKey;size:8"`
	Day    string `gorm:"primaryKey;size:8"`
	Value  int
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "number_counters"
}

// GormNumberSequence implements ports.NumberSequence on the counter table.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a number allocator on the given connection.
// Pass a transaction-bound connection to make allocation roll back together
// with the document it numbers.
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next allocates the next number for the prefix on the given day and formats
// it as <prefix><YYYYMMDD><seq4>. Returns errs.SequenceExhaustedError once
// the day's 9999 numbers are used up.
func (s *GormNumberSequence) Next(ctx context.Context, prefix string, day time.Time) (string, error) {
	if prefix == "" {
		return "", errs.NewValueIsRequiredError("number prefix")
	}

	dayKey := day.UTC().Format("20060102")

	var value int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO number_counters (prefix, day, value)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, day)
		DO UPDATE SET value = number_counters.value + 1
		RETURNING value
	`, prefix, dayKey).Scan(&value).Error
	if err != nil {
		return "", err
	}

	if value > maxPerDay {
		return "", errs.NewSequenceExhaustedError(prefix, dayKey)
	}

	return fmt.Sprintf("%s%s%04d", prefix, dayKey, value), nil
}

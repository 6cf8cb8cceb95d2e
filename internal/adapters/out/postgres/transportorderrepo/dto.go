// Package transportorderrepo provides data transfer objects and mapping
// functions for transport order persistence. Implements the repository
// pattern for the order aggregate, handling conversion between domain
// entities and database rows.
package transportorderrepo

import (
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting transport order
// aggregates. Stage is the workflow position the guarded update keys on;
// Status is the coarse value derived from it, denormalized for listing
// queries and always written in the same statement as Stage.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"uniqueIndex"`
	RecyclerID    uuid.UUID  `gorm:"type:uuid;index"`
	TransporterID *uuid.UUID `gorm:"type:uuid;index"`

	PickupAddress      string
	DestinationAddress string
	Contacts           ContactsDTO `gorm:"embedded;embeddedPrefix:contact_"`

	EstimatedWeight float64
	ActualWeight    *float64
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	ItemCategories  string

	Stage  int `gorm:"index"`
	Status int `gorm:"index"`

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

	CancelReason *string
	Rating       *int
	Review       *string
}

// TableName specifies the database table name for transport orders.
func (OrderDTO) TableName() string {
	return "transport_orders"
}

// ContactsDTO represents the embedded contact columns within the order table.
type ContactsDTO struct {
	RecyclerName  string
	RecyclerPhone string
	BaseName      string
	BasePhone     string
}

// fromDomain converts a transport order aggregate to its database
// representation.
func fromDomain(aggregate *transportorder.Order) OrderDTO {
	s := aggregate.Snapshot()

	var transporterID *uuid.UUID
	if s.TransporterID != nil {
		raw := s.TransporterID.Bytes()
		transporterID = &raw
	}

	var actualWeight *float64
	if s.ActualWeight != nil {
		kg := s.ActualWeight.Kilograms()
		actualWeight = &kg
	}

	return OrderDTO{
		ID:                 s.ID.Bytes(),
		Number:             s.Number,
		RecyclerID:         s.RecyclerID.Bytes(),
		TransporterID:      transporterID,
		PickupAddress:      s.PickupAddress,
		DestinationAddress: s.DestinationAddress,
		Contacts: ContactsDTO{
			RecyclerName:  s.Contacts.RecyclerName,
			RecyclerPhone: s.Contacts.RecyclerPhone,
			BaseName:      s.Contacts.BaseName,
			BasePhone:     s.Contacts.BasePhone,
		},
		EstimatedWeight:     s.EstimatedWeight.Kilograms(),
		ActualWeight:        actualWeight,
		TotalPrice:          s.TotalPrice,
		ItemCategories:      s.ItemCategories,
		Stage:               int(s.Stage),
		Status:              int(s.Stage.Status()),
		CreatedAt:           s.CreatedAt,
		AcceptedAt:          s.AcceptedAt,
		PickupConfirmedAt:   s.PickupConfirmedAt,
		ArrivedAtPickupAt:   s.ArrivedAtPickupAt,
		LoadingCompletedAt:  s.LoadingCompletedAt,
		DeliveryConfirmedAt: s.DeliveryConfirmedAt,
		ArrivedAtDeliveryAt: s.ArrivedAtDeliveryAt,
		DeliveredAt:         s.DeliveredAt,
		CompletedAt:         s.CompletedAt,
		CancelledAt:         s.CancelledAt,
		CancelReason:        s.CancelReason,
		Rating:              s.Rating,
		Review:              s.Review,
	}
}

// toDomain converts a database row to a transport order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*transportorder.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recyclerID, err := kernel.UUIDFromBytes(dto.RecyclerID[:])
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if tErr != nil {
			return nil, tErr
		}
		transporterID = &tID
	}

	estimatedWeight, err := kernel.NewWeight(dto.EstimatedWeight)
	if err != nil {
		return nil, err
	}

	var actualWeight *kernel.Weight
	if dto.ActualWeight != nil {
		w, wErr := kernel.NewWeight(*dto.ActualWeight)
		if wErr != nil {
			return nil, wErr
		}
		actualWeight = &w
	}

	return transportorder.RestoreOrder(transportorder.Snapshot{
		ID:                 id,
		Number:             dto.Number,
		RecyclerID:         recyclerID,
		TransporterID:      transporterID,
		PickupAddress:      dto.PickupAddress,
		DestinationAddress: dto.DestinationAddress,
		Contacts: transportorder.Contacts{
			RecyclerName:  dto.Contacts.RecyclerName,
			RecyclerPhone: dto.Contacts.RecyclerPhone,
			BaseName:      dto.Contacts.BaseName,
			BasePhone:     dto.Contacts.BasePhone,
		},
		EstimatedWeight:     estimatedWeight,
		ActualWeight:        actualWeight,
		TotalPrice:          dto.TotalPrice,
		ItemCategories:      dto.ItemCategories,
		Stage:               transportorder.Stage(dto.Stage),
		CreatedAt:           dto.CreatedAt,
		AcceptedAt:          dto.AcceptedAt,
		PickupConfirmedAt:   dto.PickupConfirmedAt,
		ArrivedAtPickupAt:   dto.ArrivedAtPickupAt,
		LoadingCompletedAt:  dto.LoadingCompletedAt,
		DeliveryConfirmedAt: dto.DeliveryConfirmedAt,
		ArrivedAtDeliveryAt: dto.ArrivedAtDeliveryAt,
		DeliveredAt:         dto.DeliveredAt,
		CompletedAt:         dto.CompletedAt,
		CancelledAt:         dto.CancelledAt,
		CancelReason:        dto.CancelReason,
		Rating:              dto.Rating,
		Review:              dto.Review,
	})
}

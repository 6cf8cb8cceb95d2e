package commands

import (
	"context"
	"strings"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
)

// RecordCategoryDetailsCommandHandler writes the itemized category breakdown
// of a transport order and refreshes the order's denormalized summary. The
// breakdown rows are the source of truth; the summary is a display cache.
type RecordCategoryDetailsCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewRecordCategoryDetailsCommandHandler creates a handler for category recording.
func NewRecordCategoryDetailsCommandHandler(uowFactory CategoryUoWFactory) RecordCategoryDetailsCommandHandler {
	return RecordCategoryDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recording command. The submitted weights must sum to
// the order's declared weight within tolerance or nothing is written.
func (h RecordCategoryDetailsCommandHandler) Handle(ctx context.Context, cmd RecordCategoryDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.TransportOrderRepository().Get(ctx, cmd.TransportOrderID())
	if err != nil {
		return err
	}

	details := make([]*transportorder.CategoryDetail, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		w, err := kernel.NewWeight(item.WeightKg)
		if err != nil {
			return err
		}

		detail, err := transportorder.NewCategoryDetail(
			kernel.NewUUID(), order.ID(), item.Key, item.Name, w, item.PricePerKg)
		if err != nil {
			return err
		}
		details = append(details, detail)
	}

	declared := order.EstimatedWeight()
	if order.ActualWeight() != nil {
		declared = *order.ActualWeight()
	}
	if err = transportorder.ValidateCategoryWeights(details, declared); err != nil {
		return err
	}

	if err = uow.CategoryDetailRepository().AddAll(ctx, details); err != nil {
		return err
	}

	if err = uow.TransportOrderRepository().UpdateItemCategories(
		ctx, order.ID(), summarizeCategories(details)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// summarizeCategories renders the display-only summary, for example
// "paper 30.00 kg, plastic 19.50 kg".
func summarizeCategories(details []*transportorder.CategoryDetail) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		name := d.CategoryName()
		if name == "" {
			name = d.CategoryKey()
		}
		parts = append(parts, name+" "+d.Weight().String())
	}
	return strings.Join(parts, ", ")
}

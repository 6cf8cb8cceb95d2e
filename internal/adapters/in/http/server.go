// Package http exposes the transport and custody workflow over REST.
// Handlers translate JSON requests into commands and queries; all business
// rules live behind them.
package http

import (
	"errors"
	"net/http"
	"time"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/application/usecases/queries"
	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server routes HTTP requests to the application's command and query
// handlers.
type Server struct {
	createOrderHandler      commands.CreateTransportOrderCommandHandler
	acceptOrderHandler      commands.AcceptTransportOrderCommandHandler
	confirmPickupHandler    commands.ConfirmPickupLocationCommandHandler
	arriveAtPickupHandler   commands.ArriveAtPickupCommandHandler
	completeLoadingHandler  commands.CompleteLoadingCommandHandler
	confirmDeliveryHandler  commands.ConfirmDeliveryLocationCommandHandler
	arriveAtDeliveryHandler commands.ArriveAtDeliveryCommandHandler
	completeOrderHandler    commands.CompleteTransportOrderCommandHandler
	rateOrderHandler        commands.RateTransportOrderCommandHandler
	addInventoryHandler     commands.AddStorageInventoryCommandHandler
	recordCategoriesHandler commands.RecordCategoryDetailsCommandHandler
	createReceiptHandler    commands.CreateWarehouseReceiptCommandHandler

	inventorySummaryHandler queries.GetInventorySummaryQueryHandler
	inventoryDetailHandler  queries.GetInventoryDetailQueryHandler
	orderCategoriesHandler  queries.GetOrderCategoriesQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	createOrderHandler commands.CreateTransportOrderCommandHandler,
	acceptOrderHandler commands.AcceptTransportOrderCommandHandler,
	confirmPickupHandler commands.ConfirmPickupLocationCommandHandler,
	arriveAtPickupHandler commands.ArriveAtPickupCommandHandler,
	completeLoadingHandler commands.CompleteLoadingCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryLocationCommandHandler,
	arriveAtDeliveryHandler commands.ArriveAtDeliveryCommandHandler,
	completeOrderHandler commands.CompleteTransportOrderCommandHandler,
	rateOrderHandler commands.RateTransportOrderCommandHandler,
	addInventoryHandler commands.AddStorageInventoryCommandHandler,
	recordCategoriesHandler commands.RecordCategoryDetailsCommandHandler,
	createReceiptHandler commands.CreateWarehouseReceiptCommandHandler,
	inventorySummaryHandler queries.GetInventorySummaryQueryHandler,
	inventoryDetailHandler queries.GetInventoryDetailQueryHandler,
	orderCategoriesHandler queries.GetOrderCategoriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		confirmPickupHandler:    confirmPickupHandler,
		arriveAtPickupHandler:   arriveAtPickupHandler,
		completeLoadingHandler:  completeLoadingHandler,
		confirmDeliveryHandler:  confirmDeliveryHandler,
		arriveAtDeliveryHandler: arriveAtDeliveryHandler,
		completeOrderHandler:    completeOrderHandler,
		rateOrderHandler:        rateOrderHandler,
		addInventoryHandler:     addInventoryHandler,
		recordCategoriesHandler: recordCategoriesHandler,
		createReceiptHandler:    createReceiptHandler,
		inventorySummaryHandler: inventorySummaryHandler,
		inventoryDetailHandler:  inventoryDetailHandler,
		orderCategoriesHandler:  orderCategoriesHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/transport-orders", s.CreateTransportOrder)
	api.POST("/transport-orders/:id/accept", s.AcceptTransportOrder)
	api.POST("/transport-orders/:id/confirm-pickup", s.ConfirmPickupLocation)
	api.POST("/transport-orders/:id/arrive-at-pickup", s.ArriveAtPickup)
	api.POST("/transport-orders/:id/complete-loading", s.CompleteLoading)
	api.POST("/transport-orders/:id/confirm-delivery", s.ConfirmDeliveryLocation)
	api.POST("/transport-orders/:id/arrive-at-delivery", s.ArriveAtDelivery)
	api.POST("/transport-orders/:id/complete", s.CompleteTransportOrder)
	api.POST("/transport-orders/:id/rate", s.RateTransportOrder)
	api.POST("/transport-orders/:id/categories", s.RecordCategoryDetails)
	api.GET("/transport-orders/:id/categories", s.GetOrderCategories)

	api.POST("/inventory", s.AddStorageInventory)
	api.GET("/recyclers/:id/inventory/summary", s.GetInventorySummary)
	api.GET("/recyclers/:id/inventory", s.GetInventoryDetail)

	api.POST("/warehouse-receipts", s.CreateWarehouseReceipt)
}

// Error is the JSON error body returned on failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// mapCommandError translates application errors into HTTP status codes.
// Conflicts mean the caller raced another writer and should reload; integrity
// violations mean the request contradicts committed state and retrying
// unchanged will not help.
func mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStateConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrIntegrityViolation),
		errors.Is(err, errs.ErrSequenceExhausted):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// ContactsRequest carries the contact persons of a transport order.
type ContactsRequest struct {
	RecyclerName  string `json:"recyclerName"`
	RecyclerPhone string `json:"recyclerPhone"`
	BaseName      string `json:"baseName"`
	BasePhone     string `json:"basePhone"`
}

// CreateTransportOrderRequest is the body of POST /transport-orders.
type CreateTransportOrderRequest struct {
	RecyclerID         string          `json:"recyclerId"`
	PickupAddress      string          `json:"pickupAddress"`
	DestinationAddress string          `json:"destinationAddress"`
	Contacts           ContactsRequest `json:"contacts"`
	EstimatedWeightKg  float64         `json:"estimatedWeightKg"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

// CreateTransportOrderResponse returns the new order's identifier.
type CreateTransportOrderResponse struct {
	ID string `json:"id"`
}

// CreateTransportOrder handles POST /api/v1/transport-orders.
func (s *Server) CreateTransportOrder(ctx echo.Context) error {
	var req CreateTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	recyclerID, err := kernel.UUIDFromString(req.RecyclerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid recycler id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportOrderCommand(
		orderID, recyclerID,
		req.PickupAddress, req.DestinationAddress,
		transportorder.Contacts{
			RecyclerName:  req.Contacts.RecyclerName,
			RecyclerPhone: req.Contacts.RecyclerPhone,
			BaseName:      req.Contacts.BaseName,
			BasePhone:     req.Contacts.BasePhone,
		},
		req.EstimatedWeightKg, req.TotalPrice)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateTransportOrderResponse{ID: orderID.String()})
}

// AcceptTransportOrderRequest is the body of the accept endpoint.
type AcceptTransportOrderRequest struct {
	TransporterID string `json:"transporterId"`
}

// AcceptTransportOrder handles POST /api/v1/transport-orders/:id/accept.
func (s *Server) AcceptTransportOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req AcceptTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	transporterID, err := kernel.UUIDFromString(req.TransporterID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid transporter id")
	}

	cmd, err := commands.NewAcceptTransportOrderCommand(orderID, transporterID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickupLocation handles POST /api/v1/transport-orders/:id/confirm-pickup.
func (s *Server) ConfirmPickupLocation(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewConfirmPickupLocationCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ArriveAtPickup handles POST /api/v1/transport-orders/:id/arrive-at-pickup.
func (s *Server) ArriveAtPickup(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewArriveAtPickupCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.arriveAtPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteLoading handles POST /api/v1/transport-orders/:id/complete-loading.
// Moves the recycler's storage-point inventory to in-transit custody in the
// same transaction as the stage transition.
func (s *Server) CompleteLoading(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCompleteLoadingCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.completeLoadingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDeliveryLocation handles POST /api/v1/transport-orders/:id/confirm-delivery.
func (s *Server) ConfirmDeliveryLocation(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewConfirmDeliveryLocationCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ArriveAtDelivery handles POST /api/v1/transport-orders/:id/arrive-at-delivery.
func (s *Server) ArriveAtDelivery(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewArriveAtDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.arriveAtDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTransportOrderRequest is the body of the complete endpoint. The
// actual weight is optional; when absent the declared weight stands.
type CompleteTransportOrderRequest struct {
	ActualWeightKg *float64 `json:"actualWeightKg,omitempty"`
}

// CompleteTransportOrder handles POST /api/v1/transport-orders/:id/complete.
func (s *Server) CompleteTransportOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req CompleteTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCompleteTransportOrderCommand(orderID, req.ActualWeightKg)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RateTransportOrderRequest is the body of the rate endpoint.
type RateTransportOrderRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// RateTransportOrder handles POST /api/v1/transport-orders/:id/rate.
func (s *Server) RateTransportOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req RateTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRateTransportOrderCommand(orderID, req.Rating, req.Review)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CategoryDetailRequest is one line of an order's category breakdown.
type CategoryDetailRequest struct {
	Key        string          `json:"key"`
	Name       string          `json:"name"`
	WeightKg   float64         `json:"weightKg"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
}

// RecordCategoryDetailsRequest is the body of the categories endpoint.
type RecordCategoryDetailsRequest struct {
	Items []CategoryDetailRequest `json:"items"`
}

// RecordCategoryDetails handles POST /api/v1/transport-orders/:id/categories.
func (s *Server) RecordCategoryDetails(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req RecordCategoryDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	items := make([]commands.CategoryDetailItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CategoryDetailItem{
			Key:        item.Key,
			Name:       item.Name,
			WeightKg:   item.WeightKg,
			PricePerKg: item.PricePerKg,
		})
	}

	cmd, err := commands.NewRecordCategoryDetailsCommand(orderID, items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.recordCategoriesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// OrderCategoryResponse is one line of GET .../categories.
type OrderCategoryResponse struct {
	Key        string          `json:"key"`
	Name       string          `json:"name"`
	WeightKg   float64         `json:"weightKg"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  string          `json:"createdAt"`
}

// GetOrderCategories handles GET /api/v1/transport-orders/:id/categories.
func (s *Server) GetOrderCategories(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderCategoriesQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	categories, err := s.orderCategoriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	response := make([]OrderCategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, OrderCategoryResponse{
			Key:        category.CategoryKey,
			Name:       category.CategoryName,
			WeightKg:   category.WeightKg,
			PricePerKg: category.PricePerKg,
			Amount:     category.Amount,
			CreatedAt:  category.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CategoryWeightRequest is one category line of a completed appointment.
type CategoryWeightRequest struct {
	Category string  `json:"category"`
	WeightKg float64 `json:"weightKg"`
}

// AddStorageInventoryRequest is the body of POST /inventory.
type AddStorageInventoryRequest struct {
	AppointmentID string                  `json:"appointmentId"`
	RecyclerID    string                  `json:"recyclerId"`
	Items         []CategoryWeightRequest `json:"items"`
	TotalPrice    decimal.Decimal         `json:"totalPrice"`
}

// AddStorageInventory handles POST /api/v1/inventory. Records a completed
// appointment's material in storage-point custody.
func (s *Server) AddStorageInventory(ctx echo.Context) error {
	var req AddStorageInventoryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	appointmentID, err := kernel.UUIDFromString(req.AppointmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid appointment id")
	}
	recyclerID, err := kernel.UUIDFromString(req.RecyclerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid recycler id")
	}

	items := make([]commands.CategoryWeightItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CategoryWeightItem{
			Category: item.Category,
			WeightKg: item.WeightKg,
		})
	}

	cmd, err := commands.NewAddStorageInventoryCommand(appointmentID, recyclerID, items, req.TotalPrice)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

func parseCustodyQuery(ctx echo.Context) (inventory.CustodyType, error) {
	raw := ctx.QueryParam("custody")
	if raw == "" {
		return inventory.CustodyStoragePoint, nil
	}
	return inventory.CustodyTypeFromString(raw)
}

// InventorySummaryResponse is one aggregated category balance.
type InventorySummaryResponse struct {
	Category      string          `json:"category"`
	TotalWeightKg float64         `json:"totalWeightKg"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// GetInventorySummary handles GET /api/v1/recyclers/:id/inventory/summary.
// The custody query parameter defaults to StoragePoint.
func (s *Server) GetInventorySummary(ctx echo.Context) error {
	recyclerID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid recycler id")
	}
	custody, err := parseCustodyQuery(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid custody type")
	}

	query, err := queries.NewGetInventorySummaryQuery(recyclerID, custody)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	balances, err := s.inventorySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	response := make([]InventorySummaryResponse, 0, len(balances))
	for _, balance := range balances {
		response = append(response, InventorySummaryResponse{
			Category:      balance.Category,
			TotalWeightKg: balance.TotalWeightKg,
			TotalPrice:    balance.TotalPrice,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// InventoryDetailResponse is one itemized ledger row.
type InventoryDetailResponse struct {
	ID            string          `json:"id"`
	SourceOrderID string          `json:"sourceOrderId"`
	Category      string          `json:"category"`
	WeightKg      float64         `json:"weightKg"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     string          `json:"createdAt"`
}

// GetInventoryDetail handles GET /api/v1/recyclers/:id/inventory. Optional
// query parameters: custody (defaults to StoragePoint) and category.
func (s *Server) GetInventoryDetail(ctx echo.Context) error {
	recyclerID, err := parseIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid recycler id")
	}
	custody, err := parseCustodyQuery(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid custody type")
	}

	query, err := queries.NewGetInventoryDetailQuery(recyclerID, custody, ctx.QueryParam("category"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	records, err := s.inventoryDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	response := make([]InventoryDetailResponse, 0, len(records))
	for _, record := range records {
		response = append(response, InventoryDetailResponse{
			ID:            record.ID.String(),
			SourceOrderID: record.SourceOrderID.String(),
			Category:      record.Category,
			WeightKg:      record.WeightKg,
			Price:         record.Price,
			CreatedAt:     record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouseReceiptRequest is the body of POST /warehouse-receipts.
type CreateWarehouseReceiptRequest struct {
	TransportOrderID string  `json:"transportOrderId"`
	WorkerID         string  `json:"workerId"`
	TotalWeightKg    float64 `json:"totalWeightKg"`
	CategorySummary  string  `json:"categorySummary"`
	Notes            string  `json:"notes"`
}

// CreateWarehouseReceiptResponse returns the new receipt's identifier.
type CreateWarehouseReceiptResponse struct {
	ID string `json:"id"`
}

// CreateWarehouseReceipt handles POST /api/v1/warehouse-receipts. Issues the
// intake receipt for a completed transport order and retires the recycler's
// in-transit inventory.
func (s *Server) CreateWarehouseReceipt(ctx echo.Context) error {
	var req CreateWarehouseReceiptRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	transportOrderID, err := kernel.UUIDFromString(req.TransportOrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid transport order id")
	}
	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid worker id")
	}

	receiptID := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseReceiptCommand(
		receiptID, transportOrderID, workerID,
		req.TotalWeightKg, req.CategorySummary, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.createReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateWarehouseReceiptResponse{ID: receiptID.String()})
}

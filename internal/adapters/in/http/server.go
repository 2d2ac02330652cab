// Package http is the inbound HTTP boundary: echo routes, caller identity
// reconstruction, payment signature verification, and the mapping from core
// errors to HTTP statuses.
package http

import (
	"net/http"
	"strconv"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	assignOrderHandler    commands.AssignOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	markOrderPaidHandler  commands.MarkOrderPaidCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler

	// Shared secret for payment signature verification
	paymentSecret string
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	paymentSecret string,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignOrderHandler:      assignOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		setOrderStatusHandler:   setOrderStatusHandler,
		deleteOrderHandler:      deleteOrderHandler,
		markOrderPaidHandler:    markOrderPaidHandler,
		getOrdersHandler:        getOrdersHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		paymentSecret:           paymentSecret,
	}
}

// RegisterRoutes mounts every API route behind the identity middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", IdentityMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.PATCH("/orders/:id/status", s.SetOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/payments/verify", s.VerifyPayment)
}

// newOrderLine is one requested line of a new order. Price and name are not
// accepted from the caller; the workflow snapshots them from the catalog.
type newOrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// newOrderRequest is the body of POST /orders.
type newOrderRequest struct {
	Items []newOrderLine `json:"items"`
	Notes string         `json:"notes"`
}

// CreateOrder handles POST /api/v1/orders - places a new client order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, ok := requireRole(ctx, actor.Client)
	if !ok {
		return nil
	}

	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), caller, lines, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ports.NewOrderPayload(created))
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "missing caller identity",
		})
	}

	query, err := queries.NewGetOrdersQuery(caller, intParam(ctx, "page"), intParam(ctx, "limit"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ports.OrderPayload, 0, len(orders))
	for _, o := range orders {
		response = append(response, listedOrderPayload(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// pendingOrdersResponse is the body of GET /orders/pending.
type pendingOrdersResponse struct {
	Items []ports.OrderPayload `json:"items"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int64                `json:"total"`
}

// GetPendingOrders handles GET /api/v1/orders/pending - the admin assignment queue.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "missing caller identity",
		})
	}

	query, err := queries.NewGetPendingOrdersQuery(caller, intParam(ctx, "page"), intParam(ctx, "limit"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]ports.OrderPayload, 0, len(page.Items))
	for _, o := range page.Items {
		items = append(items, listedOrderPayload(o))
	}

	return ctx.JSON(http.StatusOK, pendingOrdersResponse{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	})
}

// assignOrderRequest is the body of POST /orders/:id/assign.
type assignOrderRequest struct {
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
}

// AssignOrder handles POST /api/v1/orders/:id/assign - hands a pending order to staff.
func (s *Server) AssignOrder(ctx echo.Context) error {
	if _, ok := requireRole(ctx, actor.Admin); !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req assignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("staffId", err))
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, staffID, req.StaffName)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ports.NewOrderPayload(assigned))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - the assignee takes the order on.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	caller, ok := requireRole(ctx, actor.Staff)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, caller.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ports.NewOrderPayload(accepted))
}

// setOrderStatusRequest is the body of PATCH /orders/:id/status.
type setOrderStatusRequest struct {
	Status string `json:"status"`
}

// SetOrderStatus handles PATCH /api/v1/orders/:id/status - completes or rejects an order.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	if _, ok := requireRole(ctx, actor.Admin); !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req setOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ports.NewOrderPayload(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - releases stock and hard-deletes.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	if _, ok := requireRole(ctx, actor.Admin); !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// intParam parses an integer query parameter, returning 0 when absent or
// malformed so the query constructors apply their defaults.
func intParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

// listedOrderPayload maps a listing row onto the shared order wire shape.
func listedOrderPayload(o queries.OrderResponse) ports.OrderPayload {
	items := make([]ports.OrderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ports.OrderItemPayload{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			BatchNumber: item.BatchNumber,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	var assignedTo *string
	if o.AssignedTo != nil {
		s := o.AssignedTo.String()
		assignedTo = &s
	}

	return ports.OrderPayload{
		ID:                o.ID.String(),
		Items:             items,
		TotalQuantity:     o.TotalQuantity,
		TotalPrice:        o.TotalPrice,
		Status:            o.Status,
		ClientID:          o.ClientID.String(),
		ClientName:        o.ClientName,
		ClientEmail:       o.ClientEmail,
		ClientContact:     o.ClientContact,
		AssignedTo:        assignedTo,
		AssignedStaffName: o.AssignedStaffName,
		AcceptedAt:        o.AcceptedAt,
		CompletedAt:       o.CompletedAt,
		PaymentStatus:     o.PaymentStatus,
		PaymentReference:  o.PaymentReference,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

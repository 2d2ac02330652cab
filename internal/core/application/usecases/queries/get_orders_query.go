package queries

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// Listing defaults applied when the caller does not paginate explicitly.
const (
	defaultPage  = 1
	defaultLimit = 50
)

// GetOrdersQuery retrieves the orders visible to the requesting caller.
// Visibility follows the caller's role: admins see every order, staff see
// the orders assigned to them, clients see the orders they placed.
//
// Example:
//
//	query, err := NewGetOrdersQuery(requester, 1, 50)
//	if err != nil {
//	    return fmt.Errorf("failed to create query: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct {
	requester actor.Actor
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a role-scoped order listing query.
// Page and limit values below 1 fall back to the defaults (1 and 50).
func NewGetOrdersQuery(requester actor.Actor, page, limit int) (GetOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return GetOrdersQuery{
		requester: requester,
		page:      page,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Requester returns the caller whose role scopes the listing.
func (q GetOrdersQuery) Requester() actor.Actor {
	return q.requester
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// OrderItemResponse represents one order line in a listing.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	BatchNumber string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// OrderResponse represents one order in a listing, flattened for display:
// statuses as their wire names, snapshots as plain strings.
type OrderResponse struct {
	ID                kernel.UUID
	ClientID          kernel.UUID
	ClientName        string
	ClientEmail       string
	ClientContact     string
	Items             []OrderItemResponse
	Notes             string
	TotalQuantity     int
	TotalPrice        float64
	Status            string
	AssignedTo        *kernel.UUID
	AssignedStaffName string
	AcceptedAt        *time.Time
	CompletedAt       *time.Time
	PaymentStatus     string
	PaymentReference  string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// scopeForRole returns the WHERE fragment and its argument for the caller's
// visibility scope. Admins are unscoped.
func scopeForRole(requester actor.Actor) (string, []any, error) {
	switch requester.Role() {
	case actor.Admin:
		return "", nil, nil
	case actor.Staff:
		return "WHERE assigned_to = ?", []any{requester.ID().Bytes()}, nil
	case actor.Client:
		return "WHERE client_id = ?", []any{requester.ID().Bytes()}, nil
	default:
		return "", nil, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q cannot be scoped to a listing", requester.Role()))
	}
}

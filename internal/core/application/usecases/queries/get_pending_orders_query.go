package queries

import (
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves the pending order queue for assignment.
// The queue is admin-only: it exposes every waiting order regardless of who
// placed it.
//
// Example:
//
//	query, err := NewGetPendingOrdersQuery(admin, 1, 50)
//	if err != nil {
//	    return fmt.Errorf("failed to create query: %w", err)
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list pending orders: %w", err)
//	}
//
//	fmt.Printf("%d of %d pending orders\n", len(page.Items), page.Total)
type GetPendingOrdersQuery struct {
	requester actor.Actor
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a pending queue query for an admin caller.
// Page and limit values below 1 fall back to the defaults (1 and 50).
// A non-admin requester gets errs.ForbiddenError.
func NewGetPendingOrdersQuery(requester actor.Actor, page, limit int) (GetPendingOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}
	if requester.Role() != actor.Admin {
		return GetPendingOrdersQuery{}, errs.NewForbiddenError(requester.Role().String(), "list pending orders")
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return GetPendingOrdersQuery{
		requester: requester,
		page:      page,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Requester returns the admin caller.
func (q GetPendingOrdersQuery) Requester() actor.Actor {
	return q.requester
}

// Page returns the 1-based page number.
func (q GetPendingOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetPendingOrdersQuery) Limit() int {
	return q.limit
}

// GetPendingOrdersQueryResponse is one page of the pending queue.
// Total counts every pending order, not just the returned page.
type GetPendingOrdersQueryResponse struct {
	Items []OrderResponse
	Page  int
	Limit int
	Total int64
}

package queries

import (
	"context"
	"fmt"

	"distribution/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves the paginated pending queue from the
// database for admin assignment screens and the digest job.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending queue queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the pending queue query. Results are sorted newest-first by
// creation time; the response carries the full pending count alongside the
// requested page.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE status = ?", int(order.Pending),
	).Scan(&total).Error
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, orderColumns), int(order.Pending), query.Limit(), offset).Rows()
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items, err := scanOrderRows(rows)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	if err = attachItems(ctx, h.db, items); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return GetPendingOrdersQueryResponse{
		Items: items,
		Page:  query.Page(),
		Limit: query.Limit(),
		Total: total,
	}, nil
}

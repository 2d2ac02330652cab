package queries

import (
	"context"
	"database/sql"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the projection shared by every order listing.
const orderColumns = `
	id,
	client_id,
	client_name,
	client_email,
	client_contact,
	notes,
	total_quantity,
	total_price,
	status,
	assigned_to,
	assigned_staff_name,
	accepted_at,
	completed_at,
	payment_status,
	payment_reference,
	created_at,
	updated_at
`

// GetOrdersQueryHandler retrieves orders from the database, scoped to the
// requesting caller's role.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(requester, 1, 50)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for role-scoped order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Admins see every order, staff see orders
// assigned to them, clients see orders they placed. Results are sorted
// newest-first by creation time.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args, err := scopeForRole(query.Requester())
	if err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.Limit()
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, orderColumns, scope), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRows maps the shared order projection onto response structs.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			clientID      uuid.UUID
			assignedTo    uuid.NullUUID
			acceptedAt    sql.NullTime
			completedAt   sql.NullTime
			status        int
			paymentStatus int
			resp          OrderResponse
		)

		err := rows.Scan(
			&id,
			&clientID,
			&resp.ClientName,
			&resp.ClientEmail,
			&resp.ClientContact,
			&resp.Notes,
			&resp.TotalQuantity,
			&resp.TotalPrice,
			&status,
			&assignedTo,
			&resp.AssignedStaffName,
			&acceptedAt,
			&completedAt,
			&paymentStatus,
			&resp.PaymentReference,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ClientID = ownerID

		if assignedTo.Valid {
			staffID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssignedTo = &staffID
		}
		if acceptedAt.Valid {
			t := acceptedAt.Time
			resp.AcceptedAt = &t
		}
		if completedAt.Valid {
			t := completedAt.Time
			resp.CompletedAt = &t
		}

		resp.Status = order.Status(status).String()
		resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
		resp.Items = make([]OrderItemResponse, 0)

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads line items for the listed orders in one query.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		byID[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			batch_number,
			quantity,
			unit_price,
			line_total
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			item      OrderItemResponse
		)

		err = rows.Scan(
			&orderID,
			&productID,
			&item.ProductName,
			&item.BatchNumber,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		refID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		item.ProductID = refID

		if i, ok := byID[parentID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

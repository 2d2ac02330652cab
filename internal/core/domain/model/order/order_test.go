package order_test

import (
	"testing"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient(t *testing.T) order.Client {
	t.Helper()
	client, err := order.NewClient(kernel.NewUUID(), "City Clinic", "orders@cityclinic.example", "+91-555-0101")
	require.NoError(t, err)
	return client
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	first, err := order.NewItem(kernel.NewUUID(), "MMR Vaccine", "VX-2024-031", 2, 100)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), "Polio Vaccine", "", 3, 50)
	require.NoError(t, err)
	return []order.Item{first, second}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create pending order with computed totals", func(t *testing.T) {
		o, err := order.NewOrder(validID, validClient(t), validItems(t), "deliver before noon")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 5, o.TotalQuantity())
		assert.InEpsilon(t, 350.0, o.TotalPrice(), 1e-9)
		assert.Equal(t, "deliver before noon", o.Notes())
		assert.Nil(t, o.AssignedTo())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.CompletedAt())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validClient(t), validItems(t), "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed client snapshot", func(t *testing.T) {
		var client order.Client

		_, err := order.NewOrder(validID, client, validItems(t), "")

		require.Error(t, err)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		_, err := order.NewOrder(validID, validClient(t), nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		_, err := order.NewOrder(validID, validClient(t), []order.Item{{}}, "")

		require.Error(t, err)
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		items := validItems(t)
		o, err := order.NewOrder(validID, validClient(t), items, "")
		require.NoError(t, err)

		got := o.Items()
		require.Len(t, got, 2)
		got[0] = order.Item{}
		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestNewItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("line total equals quantity times unit price", func(t *testing.T) {
		item, err := order.NewItem(productID, "MMR Vaccine", "VX-2024-031", 2, 100)

		require.NoError(t, err)
		assert.InEpsilon(t, 200.0, item.LineTotal(), 1e-9)
		assert.Equal(t, 2, item.Quantity())
		assert.InEpsilon(t, 100.0, item.UnitPrice(), 1e-9)
		assert.Equal(t, "MMR Vaccine", item.ProductName())
		assert.Equal(t, "VX-2024-031", item.BatchNumber())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(productID, "MMR Vaccine", "", 0, 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem(productID, "MMR Vaccine", "", 1, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem(productID, "", "", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore keeps the stored line total", func(t *testing.T) {
		item, err := order.RestoreItem(productID, "MMR Vaccine", "", 2, 100, 200)

		require.NoError(t, err)
		assert.InEpsilon(t, 200.0, item.LineTotal(), 1e-9)
	})
}

func TestNewClient(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("empty contact defaults to placeholder", func(t *testing.T) {
		client, err := order.NewClient(id, "City Clinic", "orders@cityclinic.example", "")

		require.NoError(t, err)
		assert.Equal(t, "—", client.Contact())
	})

	t.Run("should require name and email", func(t *testing.T) {
		_, err := order.NewClient(id, "", "orders@cityclinic.example", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewClient(id, "City Clinic", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Assign(t *testing.T) {
	staffID := kernel.NewUUID()

	t.Run("pending order can be assigned", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		err := o.Assign(staffID, "Ravi")

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.AssignedTo())
		assert.True(t, o.AssignedTo().IsEqual(staffID))
		assert.Equal(t, "Ravi", o.AssignedStaffName())
	})

	t.Run("should fail with invalid staff id", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")
		var invalidID kernel.UUID

		require.Error(t, o.Assign(invalidID, "Ravi"))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with empty staff name", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		require.ErrorIs(t, o.Assign(staffID, ""), errs.ErrValueIsRequired)
	})

	t.Run("assigned order cannot be reassigned", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")
		require.NoError(t, o.Assign(staffID, "Ravi"))

		require.Error(t, o.Assign(kernel.NewUUID(), "Meera"))
		assert.True(t, o.AssignedTo().IsEqual(staffID))
	})
}

func TestOrder_Accept(t *testing.T) {
	staffID := kernel.NewUUID()

	newAssigned := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")
		require.NoError(t, err)
		require.NoError(t, o.Assign(staffID, "Ravi"))
		return o
	}

	t.Run("assignee can accept", func(t *testing.T) {
		o := newAssigned(t)

		err := o.Accept(staffID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.AcceptedAt())
		assert.WithinDuration(t, time.Now().UTC(), *o.AcceptedAt(), time.Minute)
	})

	t.Run("other staff cannot accept", func(t *testing.T) {
		o := newAssigned(t)

		err := o.Accept(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Nil(t, o.AcceptedAt())
	})

	t.Run("pending order cannot be accepted", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		require.Error(t, o.Accept(staffID))
	})
}

func TestOrder_CompleteAndReject(t *testing.T) {
	t.Run("complete sets completedAt once", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())

		require.Error(t, o.Complete())
	})

	t.Run("reject is terminal and single-shot", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())

		require.Error(t, o.Reject())
		require.Error(t, o.Complete())
		require.Error(t, o.Assign(kernel.NewUUID(), "Ravi"))
	})

	t.Run("completed order refuses every transition", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")
		require.NoError(t, o.Complete())

		require.Error(t, o.Assign(kernel.NewUUID(), "Ravi"))
		require.Error(t, o.Accept(kernel.NewUUID()))
		require.Error(t, o.Reject())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("records payment reference in any status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")
		require.NoError(t, o.Complete())

		err := o.MarkPaid("pay_NXf29a")

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, "pay_NXf29a", o.PaymentReference())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("requires a reference", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), validClient(t), validItems(t), "")

		require.ErrorIs(t, o.MarkPaid(""), errs.ErrValueIsRequired)
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips full workflow state", func(t *testing.T) {
		id := kernel.NewUUID()
		staffID := kernel.NewUUID()
		acceptedAt := time.Now().UTC().Add(-time.Hour)
		createdAt := time.Now().UTC().Add(-2 * time.Hour)

		o, err := order.RestoreOrder(
			id, validClient(t), validItems(t), "notes",
			5, 350,
			order.Accepted,
			&staffID, "Ravi",
			&acceptedAt, nil,
			order.Paid, "pay_NXf29a",
			createdAt, createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, 5, o.TotalQuantity())
		assert.True(t, o.AssignedTo().IsEqual(staffID))
		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), validClient(t), validItems(t), "",
			5, 350,
			order.Status(42),
			nil, "", nil, nil,
			order.Unpaid, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

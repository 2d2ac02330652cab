package queries_test

import (
	"context"
	"testing"
	"time"

	"distribution/internal/adapters/out/postgres/orderrepo"
	"distribution/internal/adapters/out/postgres/productrepo"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding repositories in tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	admin := suite.createActor(actor.Admin)
	query, err := queries.NewGetOrdersQuery(admin, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AdminSeesAllOrders() {
	clientA := suite.createActor(actor.Client)
	clientB := suite.createActor(actor.Client)
	suite.seedOrder(clientA, nil)
	suite.seedOrder(clientB, nil)

	admin := suite.createActor(actor.Admin)
	query, err := queries.NewGetOrdersQuery(admin, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ClientSeesOnlyOwnOrders() {
	clientA := suite.createActor(actor.Client)
	clientB := suite.createActor(actor.Client)
	ownOrder := suite.seedOrder(clientA, nil)
	suite.seedOrder(clientB, nil)

	query, err := queries.NewGetOrdersQuery(clientA, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(ownOrder.ID(), result[0].ID)
	suite.Equal(clientA.ID(), result[0].ClientID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StaffSeesOnlyAssignedOrders() {
	client := suite.createActor(actor.Client)
	staff := suite.createActor(actor.Staff)

	assigned := suite.seedOrder(client, &staff)
	suite.seedOrder(client, nil)

	query, err := queries.NewGetOrdersQuery(staff, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assigned.ID(), result[0].ID)
	suite.Require().NotNil(result[0].AssignedTo)
	suite.Equal(staff.ID(), *result[0].AssignedTo)
	suite.Equal("assigned", result[0].Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersNewestFirst() {
	client := suite.createActor(actor.Client)

	oldest := suite.seedOrderCreatedAt(client, time.Now().UTC().Add(-2*time.Hour))
	middle := suite.seedOrderCreatedAt(client, time.Now().UTC().Add(-time.Hour))
	newest := suite.seedOrderCreatedAt(client, time.Now().UTC())

	query, err := queries.NewGetOrdersQuery(client, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AttachesLineItems() {
	client := suite.createActor(actor.Client)

	item1, err := order.NewItem(kernel.NewUUID(), "MMR Vaccine", "VX-2024-031", 2, 450)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "Influenza Vaccine", "VX-2024-112", 5, 120)
	suite.Require().NoError(err)

	snapshot, err := order.NewClient(client.ID(), client.Name(), client.Email(), "+1-202-555-0101")
	suite.Require().NoError(err)
	seeded, err := order.NewOrder(kernel.NewUUID(), snapshot, []order.Item{item1, item2}, "cold chain required")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))

	query, err := queries.NewGetOrdersQuery(client, 1, 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Items, 2)

	suite.Equal("MMR Vaccine", result[0].Items[0].ProductName)
	suite.Equal("VX-2024-031", result[0].Items[0].BatchNumber)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.InDelta(450.0, result[0].Items[0].UnitPrice, 0.001)
	suite.InDelta(900.0, result[0].Items[0].LineTotal, 0.001)

	suite.Equal("Influenza Vaccine", result[0].Items[1].ProductName)
	suite.Equal(7, result[0].TotalQuantity)
	suite.InDelta(1500.0, result[0].TotalPrice, 0.001)
	suite.Equal("cold chain required", result[0].Notes)
	suite.Equal("unpaid", result[0].PaymentStatus)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_PaginatesResults() {
	client := suite.createActor(actor.Client)
	for i := range 5 {
		suite.seedOrderCreatedAt(client, time.Now().UTC().Add(-time.Duration(i)*time.Minute))
	}

	firstPage, err := queries.NewGetOrdersQuery(client, 1, 2)
	suite.Require().NoError(err)
	secondPage, err := queries.NewGetOrdersQuery(client, 3, 2)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	suite.Len(first, 2)

	last, err := suite.handler.Handle(context.Background(), secondPage)
	suite.Require().NoError(err)
	suite.Len(last, 1)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func (suite *GetOrdersQueryHandlerTestSuite) createActor(role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), role, "Suite Caller", "caller@example.com")
	suite.Require().NoError(err)
	return a
}

// seedOrder persists an order for the given client, optionally assigned to
// the given staff member.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(client actor.Actor, staff *actor.Actor) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Tetanus Vaccine", "VX-2024-007", 3, 85)
	suite.Require().NoError(err)

	snapshot, err := order.NewClient(client.ID(), client.Name(), client.Email(), "")
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(kernel.NewUUID(), snapshot, []order.Item{item}, "")
	suite.Require().NoError(err)

	if staff != nil {
		suite.Require().NoError(seeded.Assign(staff.ID(), staff.Name()))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

// seedOrderCreatedAt persists an order with a fixed creation time so ordering
// assertions do not depend on clock resolution.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrderCreatedAt(client actor.Actor, createdAt time.Time) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Tetanus Vaccine", "VX-2024-007", 3, 85)
	suite.Require().NoError(err)

	snapshot, err := order.NewClient(client.ID(), client.Name(), client.Email(), "")
	suite.Require().NoError(err)

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), snapshot, []order.Item{item}, "",
		3, 255,
		order.Pending, nil, "", nil, nil,
		order.Unpaid, "",
		createdAt, createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}

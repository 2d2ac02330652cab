package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"distribution/internal/adapters/out/postgres/productrepo"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/product"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for the
// stock ledger, including the conditional-update reservation guarantees.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()
	seeded := suite.seedProduct(12)

	retrieved, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), retrieved.ID())
	suite.Equal("Varicella Vaccine", retrieved.Name())
	suite.Equal("VX-2024-066", retrieved.BatchNumber())
	suite.InDelta(210.0, retrieved.UnitPrice(), 0.001)
	suite.Equal(12, retrieved.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_SufficientStock_DeductsQuantity() {
	ctx := context.Background()
	seeded := suite.seedProduct(10)

	reserved, err := suite.repository.Reserve(ctx, seeded.ID(), 4)
	suite.Require().NoError(err)
	suite.Equal(6, reserved.Quantity())

	persisted, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(6, persisted.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_ExactStock_DrainsToZero() {
	ctx := context.Background()
	seeded := suite.seedProduct(5)

	reserved, err := suite.repository.Reserve(ctx, seeded.ID(), 5)
	suite.Require().NoError(err)
	suite.Equal(0, reserved.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_InsufficientStock_ReturnsErrorWithoutDeducting() {
	ctx := context.Background()
	seeded := suite.seedProduct(3)

	reserved, err := suite.repository.Reserve(ctx, seeded.ID(), 4)
	suite.Nil(reserved)
	suite.Require().Error(err)

	var stockErr *product.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)

	// Stock is untouched
	persisted, getErr := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(getErr)
	suite.Equal(3, persisted.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_MissingProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	reserved, err := suite.repository.Reserve(ctx, kernel.NewUUID(), 1)
	suite.Nil(reserved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_InvalidAmount_ReturnsError() {
	ctx := context.Background()
	seeded := suite.seedProduct(5)

	for _, amount := range []int{0, -2} {
		reserved, err := suite.repository.Reserve(ctx, seeded.ID(), amount)
		suite.Nil(reserved)
		suite.Require().Error(err)
	}
}

// TestReserve_ConcurrentReservations_NeverOversells drives two reservations at
// the same last unit: exactly one must win, and stock must end at zero.
func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_ConcurrentReservations_NeverOversells() {
	ctx := context.Background()
	seeded := suite.seedProduct(1)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repository.Reserve(ctx, seeded.ID(), 1)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		losses++
		var stockErr *product.InsufficientStockError
		suite.Require().ErrorAs(err, &stockErr)
	}

	suite.Equal(1, wins, "exactly one reservation should win the last unit")
	suite.Equal(1, losses)

	persisted, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(0, persisted.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRelease_ReturnsStock() {
	ctx := context.Background()
	seeded := suite.seedProduct(2)

	err := suite.repository.Release(ctx, seeded.ID(), 3)
	suite.Require().NoError(err)

	persisted, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(5, persisted.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRelease_MissingProduct_ReturnsOrphanedReleaseError() {
	ctx := context.Background()

	err := suite.repository.Release(ctx, kernel.NewUUID(), 2)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, product.ErrOrphanedRelease)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRelease_InvalidAmount_ReturnsError() {
	ctx := context.Background()
	seeded := suite.seedProduct(2)

	err := suite.repository.Release(ctx, seeded.ID(), 0)
	suite.Require().Error(err)
}

// seedProduct persists a stock record with the given quantity.
func (suite *ProductRepositoryIntegrationTestSuite) seedProduct(quantity int) *product.Product {
	seeded, err := product.NewProduct(kernel.NewUUID(), "Varicella Vaccine", "VX-2024-066", 210, quantity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), seeded))
	return seeded
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}

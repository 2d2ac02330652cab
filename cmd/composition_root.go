package cmd

import (
	"log/slog"

	httpin "distribution/internal/adapters/in/http"
	kafkaout "distribution/internal/adapters/out/kafka"
	"distribution/internal/adapters/out/postgres"
	"distribution/internal/adapters/out/postgres/clientrepo"
	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/ports"
	"distribution/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

// NewCompositionRoot wires the adapters every use case depends on. Events go
// to Kafka when brokers are configured and are discarded otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var publisher ports.EventPublisher = ports.NoOpEventPublisher{}
	if config.KafkaBrokers != "" {
		publisher = kafkaout.NewPublisher(config.KafkaBrokers, config.KafkaTopic)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, clientrepo.NewGormClientDirectory(c.gormDB), c.publisher)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateSetOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateMarkOrderPaidCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.config.PaymentSecret,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingOrdersQueryHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"okada/internal/adapters/in/http"
	"okada/internal/adapters/out/postgres"
	"okada/internal/adapters/out/postgres/historyrepo"
	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/application/usecases/queries"
	"okada/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkChangeOrderStatusCommandHandler() commands.BulkChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.EditUoWFactory = FuncEditUoWFactory(func() commands.EditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(historyrepo.NewGormStatusHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetEditHistoryQueryHandler() queries.GetEditHistoryQueryHandler {
	return queries.NewGetEditHistoryQueryHandler(historyrepo.NewGormEditHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusCountsQueryHandler() queries.GetOrderStatusCountsQueryHandler {
	return queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateBulkChangeOrderStatusCommandHandler(),
		c.CreateEditOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetStatusHistoryQueryHandler(),
		c.CreateGetEditHistoryQueryHandler(),
		c.CreateGetAvailableRidersQueryHandler(),
		c.logger.Named("http"),
	)
}

func (c *CompositionRoot) CreateTokenVerifier() (*http.TokenVerifier, error) {
	return http.NewTokenVerifier([]byte(c.config.JWTSecret))
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateGetOrderStatusCountsQueryHandler(), c.config.DigestCron, c.logger)
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncEditUoWFactory func() commands.EditUoW

func (f FuncEditUoWFactory) Create() commands.EditUoW {
	return f()
}

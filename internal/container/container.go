package container

import (
	"database/sql"

	"printagent/internal/agent"
	"printagent/internal/alerts"
	"printagent/internal/config"
	"printagent/internal/inventory"
	"printagent/internal/orders"
	"printagent/internal/repository"
	"printagent/internal/status"

	"go.uber.org/zap"
)

const Version = "1.0.0"

type Container struct {
	Repository      *repository.Repository
	OrderRepository *orders.OrderRepository
	Inventory       *inventory.InventoryRepository
	Engine          *inventory.DeductionEngine
	Alerts          *alerts.Checker
	Agent           *agent.Agent
	StatusHandler   *status.Handler
}

func NewAppContainer(db *sql.DB, cfg *config.Config, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	orderRepo := orders.NewRepository(repo)
	inventoryRepo := inventory.NewRepository(repo)
	engine := inventory.NewDeductionEngine(inventoryRepo, log)
	checker := alerts.NewChecker(inventoryRepo, log)
	reconciler := agent.New(orderRepo, engine, checker, cfg, log)
	statusHandler := status.NewHandler(checker, cfg.ShopID, Version)

	return &Container{
		Repository:      repo,
		OrderRepository: orderRepo,
		Inventory:       inventoryRepo,
		Engine:          engine,
		Alerts:          checker,
		Agent:           reconciler,
		StatusHandler:   statusHandler,
	}
}

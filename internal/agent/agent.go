package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"printagent/internal/config"
	"printagent/internal/consumption"
	"printagent/pkg/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderSource interface {
	GetUnprocessed(statuses []string, shopID string, limit int) ([]models.Order, error)
	MarkProcessed(orderID string) error
}

type Deductor interface {
	Deduct(entry models.ConsumptionEntry, shopID string, actor string) error
}

type AlertChecker interface {
	CheckLowStock(shopID string) ([]models.InventoryItem, error)
}

// Agent runs the two reconciliation loops: a fast order-processing tick and a
// slower low-stock alert tick. Ticks of the same loop never overlap; each
// tick body runs to completion before the next fires.
type Agent struct {
	orders OrderSource
	engine Deductor
	alerts AlertChecker
	cfg    *config.Config
	log    *zap.Logger
}

func New(orders OrderSource, engine Deductor, alerts AlertChecker, cfg *config.Config, log *zap.Logger) *Agent {
	return &Agent{
		orders: orders,
		engine: engine,
		alerts: alerts,
		cfg:    cfg,
		log:    log,
	}
}

// Run blocks until ctx is cancelled. Both loops run an immediate pass on
// startup so a restart does not wait a full interval to catch up.
func (a *Agent) Run(ctx context.Context) {
	a.log.Info("agent starting",
		zap.Duration("poll_interval", a.cfg.PollInterval),
		zap.Duration("alert_interval", a.cfg.AlertInterval),
		zap.Int("batch_size", a.cfg.BatchSize),
		zap.Strings("trigger_statuses", a.cfg.TriggerStatuses),
	)

	a.PollOnce()
	a.CheckAlerts()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		a.loop(ctx, a.cfg.PollInterval, a.PollOnce)
	}()
	go func() {
		defer wg.Done()
		a.loop(ctx, a.cfg.AlertInterval, a.CheckAlerts)
	}()

	wg.Wait()
	a.log.Info("agent stopped")
}

func (a *Agent) loop(ctx context.Context, interval time.Duration, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// PollOnce runs one order-processing tick: fetch a bounded batch of eligible
// orders oldest-first and reconcile each. A fetch error aborts the tick;
// affected orders stay unmarked and are retried next tick. An empty batch is
// a no-op.
func (a *Agent) PollOnce() {
	orders, err := a.orders.GetUnprocessed(a.cfg.TriggerStatuses, a.cfg.ShopID, a.cfg.BatchSize)
	if err != nil {
		a.log.Error("failed to fetch eligible orders", zap.Error(err))
		return
	}
	if len(orders) == 0 {
		return
	}

	runID := uuid.New().String()[:8]
	a.log.Info("processing order batch",
		zap.Int("count", len(orders)),
		zap.String("run", runID),
	)

	for _, order := range orders {
		if err := a.processOrder(order); err != nil {
			// Left unmarked so the next tick retries it.
			a.log.Error("order processing failed",
				zap.String("order_id", order.ID),
				zap.String("run", runID),
				zap.Error(err),
			)
			continue
		}
		a.log.Info("order processed",
			zap.String("order_id", order.ID),
			zap.String("run", runID),
		)
	}
}

// processOrder computes consumption per line item in listed order, merges per
// resource, deducts each merged entry sequentially and finally sets the
// idempotency flag. Any returned error means the flag was not set.
func (a *Agent) processOrder(order models.Order) error {
	var entries []models.ConsumptionEntry
	for _, item := range order.Items {
		entries = append(entries, consumption.Compute(item, order.ID, a.cfg.Consumption)...)
	}
	merged := consumption.Merge(entries)

	shopID := ""
	if order.ShopID != nil {
		shopID = *order.ShopID
	}
	actor := order.UserEmail
	if actor == "" {
		actor = "system"
	}

	for _, entry := range merged {
		if err := a.engine.Deduct(entry, shopID, actor); err != nil {
			return fmt.Errorf("entry %q: %w", entry.ResourceName, err)
		}
	}

	if err := a.orders.MarkProcessed(order.ID); err != nil {
		return err
	}

	return nil
}

// CheckAlerts runs one low-stock tick. Failures are logged and retried on the
// next tick.
func (a *Agent) CheckAlerts() {
	if _, err := a.alerts.CheckLowStock(a.cfg.ShopID); err != nil {
		a.log.Error("alert check failed", zap.Error(err))
	}
}

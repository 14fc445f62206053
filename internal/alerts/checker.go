package alerts

import (
	"fmt"

	"printagent/pkg/models"

	"go.uber.org/zap"
)

type LedgerReader interface {
	GetLowStock(shopID string) ([]models.InventoryItem, error)
}

type Checker struct {
	ledger LedgerReader
	log    *zap.Logger
}

func NewChecker(ledger LedgerReader, log *zap.Logger) *Checker {
	return &Checker{
		ledger: ledger,
		log:    log,
	}
}

// CheckLowStock reports every item at or below its threshold. It reports the
// same item on every run; deduplication belongs to whoever consumes the
// alerts.
func (c *Checker) CheckLowStock(shopID string) ([]models.InventoryItem, error) {
	items, err := c.ledger.GetLowStock(shopID)
	if err != nil {
		return nil, fmt.Errorf("low stock check: %w", err)
	}

	if len(items) > 0 {
		c.log.Warn("restock needed", zap.Int("count", len(items)))
		for _, item := range items {
			c.log.Warn("item at or below threshold",
				zap.String("name", item.Name),
				zap.Int("stock", item.Stock),
				zap.String("unit", item.Unit),
				zap.Int("threshold", item.Threshold),
			)
		}
	}

	return items, nil
}

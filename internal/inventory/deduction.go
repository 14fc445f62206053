package inventory

import (
	"fmt"

	"printagent/pkg/models"

	"go.uber.org/zap"
)

// Ledger is the slice of the inventory repository the deduction engine needs.
type Ledger interface {
	FindByName(name string, shopID string) (*models.InventoryItem, error)
	DeductStock(itemID string, amount int, note string, actor string) (int, error)
}

type DeductionEngine struct {
	ledger Ledger
	log    *zap.Logger
}

func NewDeductionEngine(ledger Ledger, log *zap.Logger) *DeductionEngine {
	return &DeductionEngine{
		ledger: ledger,
		log:    log,
	}
}

// Deduct applies one merged consumption entry to the ledger. An unresolvable
// resource name is a warning, not an error: the entry is skipped and sibling
// entries in the same order still run. A failed write is an error and the
// caller is expected to retry the whole order later.
func (e *DeductionEngine) Deduct(entry models.ConsumptionEntry, shopID string, actor string) error {
	item, err := e.ledger.FindByName(entry.ResourceName, shopID)
	if err != nil {
		return fmt.Errorf("resolve resource %q: %w", entry.ResourceName, err)
	}
	if item == nil {
		e.log.Warn("inventory item not found, skipping entry",
			zap.String("resource", entry.ResourceName),
			zap.String("shop_id", shopID),
		)
		return nil
	}

	newStock, err := e.ledger.DeductStock(item.ID, entry.Amount, entry.Note, actor)
	if err != nil {
		return fmt.Errorf("deduct %d from %q: %w", entry.Amount, item.Name, err)
	}

	// Negative stock is an unreconciled shortfall, never a reason to block
	// fulfillment.
	if newStock < 0 {
		e.log.Warn("stock went negative",
			zap.String("item", item.Name),
			zap.Int("deducted", entry.Amount),
			zap.Int("stock", newStock),
		)
	}

	e.log.Debug("deducted inventory",
		zap.String("item", item.Name),
		zap.Int("amount", entry.Amount),
		zap.Int("stock", newStock),
	)

	return nil
}

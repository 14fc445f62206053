package inventory

import (
	"fmt"

	"printagent/internal/repository"
	"printagent/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type InventoryRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *InventoryRepository {
	return &InventoryRepository{repository: r}
}

// FindByName resolves a resource name to a ledger row by case-insensitive
// substring match, first match wins. Returns nil without error when nothing
// matches; the caller decides whether that is fatal.
func (r *InventoryRepository) FindByName(name string, shopID string) (*models.InventoryItem, error) {
	query := r.repository.GoquDBWrapper.
		Select("id", "shop_id", "name", "unit", "stock", "threshold").
		From("inventory_items").
		Where(goqu.C("name").ILike("%" + name + "%")).
		Order(goqu.I("name").Asc()).
		Limit(1)
	if shopID != "" {
		query = query.Where(goqu.C("shop_id").Eq(shopID))
	}

	var item models.InventoryItem
	found, err := query.Executor().ScanStruct(&item)
	if err != nil {
		return nil, fmt.Errorf("failed to look up inventory item %q: %w", name, err)
	}
	if !found {
		return nil, nil
	}

	return &item, nil
}

// DeductStock decrements a ledger row and appends the matching stock log
// entry in one transaction, so a stock change can never go unaudited. The
// decrement is relative (stock = stock - amount), which also keeps two agents
// from losing updates to each other. Returns the stock value after deduction;
// negative values are allowed.
func (r *InventoryRepository) DeductStock(itemID string, amount int, note string, actor string) (int, error) {
	var newStock int

	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		update := tx.Update("inventory_items").
			Set(goqu.Record{
				"stock":      goqu.L("stock - ?", amount),
				"updated_at": goqu.L("now()"),
			}).
			Where(goqu.Ex{"id": itemID}).
			Returning("stock")

		found, err := update.Executor().ScanVal(&newStock)
		if err != nil {
			return fmt.Errorf("failed to update stock for item %s: %w", itemID, err)
		}
		if !found {
			return fmt.Errorf("inventory item %s disappeared during deduction", itemID)
		}

		insert := tx.Insert("stock_logs").
			Rows(goqu.Record{
				"item_id":    itemID,
				"amount":     -amount,
				"note":       note,
				"created_by": actor,
			})
		if _, err := insert.Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert stock log for item %s: %w", itemID, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newStock, nil
}

// GetLowStock returns every ledger row at or below its reorder threshold.
func (r *InventoryRepository) GetLowStock(shopID string) ([]models.InventoryItem, error) {
	query := r.repository.GoquDBWrapper.
		Select("id", "shop_id", "name", "unit", "stock", "threshold").
		From("inventory_items").
		Where(goqu.C("stock").Lte(goqu.I("threshold"))).
		Order(goqu.I("name").Asc())
	if shopID != "" {
		query = query.Where(goqu.C("shop_id").Eq(shopID))
	}

	var items []models.InventoryItem
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("failed to fetch low stock items: %w", err)
	}

	return items, nil
}

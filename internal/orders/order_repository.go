package orders

import (
	"fmt"

	"printagent/internal/repository"
	"printagent/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type OrderRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *OrderRepository {
	return &OrderRepository{repository: r}
}

// GetUnprocessed selects the oldest orders whose status is in the trigger set
// and whose idempotency flag has never been set. shopID narrows the scan when
// the agent is scoped to a single shop.
func (r *OrderRepository) GetUnprocessed(statuses []string, shopID string, limit int) ([]models.Order, error) {
	query := r.unprocessedQuery(statuses, shopID, limit)

	var flatOrders []models.FlatOrderRecord
	if err := query.Executor().ScanStructs(&flatOrders); err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed orders: %w", err)
	}

	orders := make([]models.Order, 0, len(flatOrders))
	for _, flat := range flatOrders {
		order, err := flat.TransformToOrder()
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", flat.ID, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// unprocessedQuery builds the poller's selection: the NULL check on
// resources_processed is the idempotency guard, so a processed order can
// never re-enter the pipeline.
func (r *OrderRepository) unprocessedQuery(statuses []string, shopID string, limit int) *goqu.SelectDataset {
	query := r.repository.GoquDBWrapper.
		Select("id", "shop_id", "status", "user_email", "items", "resources_processed", "created_at").
		From("orders").
		Where(
			goqu.C("status").In(statuses),
			goqu.C("resources_processed").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Limit(uint(limit))
	if shopID != "" {
		query = query.Where(goqu.C("shop_id").Eq(shopID))
	}

	return query
}

// MarkProcessed flips the idempotency flag; once set the order is never
// selected again.
func (r *OrderRepository) MarkProcessed(orderID string) error {
	query := r.repository.GoquDBWrapper.Update("orders").
		Set(goqu.Record{"resources_processed": true}).
		Where(goqu.Ex{"id": orderID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to mark order %s processed: %w", orderID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for order %s: %w", orderID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("order %s not found while marking processed", orderID)
	}

	return nil
}

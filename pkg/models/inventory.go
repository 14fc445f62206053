package models

import "time"

type InventoryItem struct {
	ID        string  `json:"id" db:"id"`
	ShopID    *string `json:"shop_id,omitempty" db:"shop_id"`
	Name      string  `json:"name" db:"name"`
	Unit      string  `json:"unit" db:"unit"`
	Stock     int     `json:"stock" db:"stock"`
	Threshold int     `json:"threshold" db:"threshold"`
}

// StockLogEntry rows are append-only; the sum of amounts per item applied to
// its initial stock must equal the item's current stock.
type StockLogEntry struct {
	ID        int       `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	Amount    int       `json:"amount" db:"amount"`
	Note      string    `json:"note" db:"note"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

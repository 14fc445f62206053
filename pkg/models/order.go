package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	ItemTypePrint = "print"

	SidesSingle = "single"
	SidesDouble = "double"

	ColorModeColor = "color"
	ColorModeBW    = "bw"

	PaperSizeA3 = "a3"
	PaperSizeA4 = "a4"
)

type Order struct {
	ID                 string     `json:"id"`
	ShopID             *string    `json:"shop_id,omitempty"`
	Status             string     `json:"status"`
	UserEmail          string     `json:"user_email"`
	Items              []LineItem `json:"items"`
	ResourcesProcessed *bool      `json:"resources_processed"`
	CreatedAt          time.Time  `json:"created_at"`
}

type LineItem struct {
	Type        string       `json:"type"`
	PageCount   int          `json:"pageCount"`
	PrintConfig *PrintConfig `json:"printConfig,omitempty"`
}

type PrintConfig struct {
	PaperSize string `json:"paperSize"`
	ColorMode string `json:"colorMode"`
	Copies    int    `json:"copies"`
	Binding   bool   `json:"binding"`
	Sides     string `json:"sides"`
}

// FlatOrderRecord is the raw row shape; the items column is JSONB.
type FlatOrderRecord struct {
	ID                 string    `db:"id"`
	ShopID             *string   `db:"shop_id"`
	Status             string    `db:"status"`
	UserEmail          string    `db:"user_email"`
	ItemsRaw           []byte    `db:"items"`
	ResourcesProcessed *bool     `db:"resources_processed"`
	CreatedAt          time.Time `db:"created_at"`
}

func (fo *FlatOrderRecord) TransformToOrder() (Order, error) {
	var items []LineItem
	if len(fo.ItemsRaw) > 0 {
		if err := json.Unmarshal(fo.ItemsRaw, &items); err != nil {
			return Order{}, fmt.Errorf("failed to unmarshal order items: %w", err)
		}
	}

	return Order{
		ID:                 fo.ID,
		ShopID:             fo.ShopID,
		Status:             fo.Status,
		UserEmail:          fo.UserEmail,
		Items:              items,
		ResourcesProcessed: fo.ResourcesProcessed,
		CreatedAt:          fo.CreatedAt,
	}, nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a fixed asset owned by the company.
type Asset struct {
	AssetID      string          `json:"assetID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

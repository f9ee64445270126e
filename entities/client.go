package entities

import "time"

// GodownClientName is the reserved holding client that receives
// undispatched remainders. Seeded once at bootstrap; resolve it through
// the clients repository, never by comparing literals elsewhere.
const GodownClientName = "Godown"

type Client struct {
	ClientID  uint      `gorm:"primaryKey" json:"client_id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	IsHolding bool      `json:"is_holding"`
	CreatedAt time.Time `json:"created_at"`
}

// RawMaterial is a stock row in the materials ledger.
type RawMaterial struct {
	Material  string    `gorm:"primaryKey" json:"material"`
	StockQty  float64   `json:"stock_qty"`
	Unit      string    `json:"unit"`
	UpdatedAt time.Time `json:"updated_at"`
}

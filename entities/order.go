package entities

import "time"

const (
	OrderPending             = "pending"
	OrderBatched             = "batched"
	OrderInProgress          = "in_progress"
	OrderPartiallyDispatched = "partially_dispatched"
	OrderCompleted           = "completed"
)

type Order struct {
	OrderID       uint    `gorm:"primaryKey" json:"order_id"`
	OrderNumber   string  `gorm:"index" json:"order_number"`
	ClientName    string  `json:"client_name"`
	ResinType     string  `gorm:"index" json:"resin_type"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"` // L|kg
	ScheduledDate string  `gorm:"index" json:"scheduled_date"` // YYYY-MM-DD
	Status        string  `gorm:"index" json:"status"`
	FulfilledQty  float64 `json:"fulfilled_qty"`
	DispatchedQty float64 `json:"dispatched_qty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time
}

// Remaining is the quantity not yet placed into any production unit.
func (o *Order) Remaining() float64 { return o.Quantity - o.FulfilledQty }

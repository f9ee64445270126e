package entities

import "time"

const (
	UnitPending   = "pending"
	UnitInProcess = "in_process"
	UnitDone      = "done"
	UnitDeployed  = "deployed"
	UnitDeleted   = "deleted"
)

// MaterialLine is a raw-material requirement snapshotted at unit creation.
// It is never recomputed afterwards.
type MaterialLine struct {
	Material    string  `json:"material"`
	RequiredQty float64 `json:"required_qty"`
}

// Allocation is one client's share of a capacity batch. ClientSeq is the
// 1-based FIFO position within the batch; DisplayOrderNumber carries a
// C{seq} suffix when the source order was split across units.
type Allocation struct {
	ClientSeq          int     `json:"client_seq"`
	ClientName         string  `json:"client_name"`
	OrderID            uint    `json:"order_id"`
	OrderNumber        string  `json:"order_number"`
	DisplayOrderNumber string  `json:"display_order_number"`
	Litres             float64 `json:"litres"`
	Unit               string  `json:"unit"`
	Dispatched         bool    `json:"dispatched"`
}

// ProductionUnit is either a capacity batch owning allocations or a single
// production run for one client. Use Batch()/Single() to get the typed view.
type ProductionUnit struct {
	UnitID        uint    `gorm:"primaryKey" json:"unit_id"`
	ResinType     string  `gorm:"index" json:"resin_type"`
	TotalQuantity float64 `json:"total_quantity"`
	Unit          string  `json:"unit"`
	IsBatch       bool    `gorm:"index" json:"is_batch"`
	BatchNumber   string  `json:"batch_number,omitempty"`
	ScheduledDate string  `gorm:"index" json:"scheduled_date"`
	Status        string  `gorm:"index" json:"status"`

	// single-run fields
	ClientName  string `json:"client_name,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
	FromOrderID *uint  `json:"from_order_id,omitempty"`

	Allocations   []Allocation   `gorm:"serializer:json" json:"allocations,omitempty"`
	MaterialsUsed []MaterialLine `gorm:"serializer:json" json:"materials_used"`

	ProducedAt  time.Time  `json:"produced_at"`
	ProceededAt *time.Time `json:"proceeded_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeployedAt  *time.Time `json:"deployed_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	UpdatedAt   time.Time
}

// BatchUnit is the batch-only view of a ProductionUnit; allocation access
// goes through it so single runs cannot be treated as batches.
type BatchUnit struct{ *ProductionUnit }

// SingleUnit is the single-run view of a ProductionUnit.
type SingleUnit struct{ *ProductionUnit }

func (u *ProductionUnit) Batch() (BatchUnit, bool) {
	if !u.IsBatch {
		return BatchUnit{}, false
	}
	return BatchUnit{u}, true
}

func (u *ProductionUnit) Single() (SingleUnit, bool) {
	if u.IsBatch {
		return SingleUnit{}, false
	}
	return SingleUnit{u}, true
}

func (b BatchUnit) AllDispatched() bool {
	for i := range b.Allocations {
		if !b.Allocations[i].Dispatched {
			return false
		}
	}
	return len(b.Allocations) > 0
}

package service

import "akolite/entities"

// Result is what a dispatch action hands back to the frontend: the unit
// in its new state plus the records emitted for billing.
type Result struct {
	Unit    *entities.ProductionUnit  `json:"unit"`
	Records []entities.DispatchRecord `json:"records"`
}

// Service is the dispatch engine. All three contracts require the unit to
// be done; each emits immutable DispatchRecords and is at-most-once per
// allocation.
type Service interface {
	// DispatchSingle dispatches quantity litres of a single run to its
	// client; any remainder goes to the Godown holding client. The unit
	// deploys either way.
	DispatchSingle(unitID uint, quantity float64) (*Result, error)
	// DispatchBatch dispatches every undispatched allocation of a batch in
	// one transaction and deploys the batch.
	DispatchBatch(batchID uint) (*Result, error)
	// DispatchAllocation dispatches one allocation by its 0-based list
	// position; the batch deploys once all allocations are dispatched.
	DispatchAllocation(batchID uint, allocationIndex int) (*Result, error)
	Records(resinType, from, to string) ([]entities.DispatchRecord, error)
}

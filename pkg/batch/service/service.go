package service

import "akolite/entities"

// Service is the batch builder: it partitions the pending order queue of
// one resin/date into capacity-bounded production batches.
type Service interface {
	// Generate rebuilds the pending batches for (resinType, scheduledDate):
	// still-pending batches from a previous run are discarded (their
	// orders return to the queue, their materials to the ledger) and the
	// FIFO partition is recomputed. Batches already advanced past pending
	// are left untouched. The whole swap commits atomically.
	Generate(resinType, scheduledDate string) ([]entities.ProductionUnit, error)
}

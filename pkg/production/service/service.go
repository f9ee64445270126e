package service

import "akolite/entities"

type CreateSingleInput struct {
	ResinType     string  `json:"resin_type"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	ClientName    string  `json:"client_name"`
	OrderNumber   string  `json:"order_number"`
	ScheduledDate string  `json:"scheduled_date"`
	FromOrderID   *uint   `json:"from_order_id"`
}

// Service owns the production unit lifecycle:
// pending -> in_process -> done -> deployed, with deleted as the alternate
// exit before deployed. Deployment itself is the dispatch engine's job.
type Service interface {
	CreateSingle(in CreateSingleInput) (*entities.ProductionUnit, error)
	Proceed(id uint) (*entities.ProductionUnit, error)
	Complete(id uint) (*entities.ProductionUnit, error)
	// Delete returns the unit's reserved materials to the ledger and, for
	// batches, reverts every allocation's order back to the queue.
	Delete(id uint) error
	List(status, resinType string) ([]entities.ProductionUnit, error)
}

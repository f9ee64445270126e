package repository

import "akolite/entities"

type UnitRepository interface {
	Create(u *entities.ProductionUnit) error
	Save(u *entities.ProductionUnit) error
	FindByID(id uint) (*entities.ProductionUnit, error)
	// List returns batches and singles intermixed, newest first; status and
	// resinType filter when non-empty.
	List(status, resinType string) ([]entities.ProductionUnit, error)
	// PendingBatches returns the still-pending capacity batches for a resin
	// and date; the rebuild discards exactly these.
	PendingBatches(resinType, scheduledDate string) ([]entities.ProductionUnit, error)
	HardDelete(ids []uint) error
}

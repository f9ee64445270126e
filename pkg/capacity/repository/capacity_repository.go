package repository

import "akolite/entities"

type CapacityRepository interface {
	// Get returns the batch capacity for a resin type, falling back to
	// entities.DefaultCapacityLitres when no row exists.
	Get(resinType string) (float64, error)
	Upsert(resinType string, capacityLitres float64) error
	List() ([]entities.CapacitySetting, error)
}

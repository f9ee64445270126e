package repository

import "akolite/entities"

type ClientsRepository interface {
	// Godown resolves the reserved holding client seeded at bootstrap.
	Godown() (*entities.Client, error)
	FindByName(name string) (*entities.Client, error)
	Create(c *entities.Client) error
}

package repository

import "akolite/entities"

type OrderRepository interface {
	Create(o *entities.Order) error
	Save(o *entities.Order) error
	FindByID(id uint) (*entities.Order, error)
	// ListPending returns orders still awaiting batching for the resin and
	// date, oldest first (FIFO input of the batch builder).
	ListPending(resinType, scheduledDate string) ([]entities.Order, error)
	List(status, resinType, scheduledDate string) ([]entities.Order, error)
}

package repositoryImp

import (
	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/order/repository"
)

type orderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db} }

func (r *orderRepo) Create(o *entities.Order) error { return r.db.Create(o).Error }

func (r *orderRepo) Save(o *entities.Order) error { return r.db.Save(o).Error }

func (r *orderRepo) FindByID(id uint) (*entities.Order, error) {
	var o entities.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.Newf(apperr.NotFound, "order %d not found", id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListPending(resinType, scheduledDate string) ([]entities.Order, error) {
	var out []entities.Order
	err := r.db.
		Where("status = ? AND resin_type = ? AND scheduled_date = ?",
			entities.OrderPending, resinType, scheduledDate).
		Where("fulfilled_qty < quantity").
		Order("created_at ASC, order_id ASC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) List(status, resinType, scheduledDate string) ([]entities.Order, error) {
	q := r.db.Model(&entities.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if resinType != "" {
		q = q.Where("resin_type = ?", resinType)
	}
	if scheduledDate != "" {
		q = q.Where("scheduled_date = ?", scheduledDate)
	}
	var out []entities.Order
	return out, q.Order("created_at ASC, order_id ASC").Find(&out).Error
}

package repositoryImp

import (
	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/production/repository"
)

type unitRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UnitRepository { return &unitRepo{db} }

func (r *unitRepo) Create(u *entities.ProductionUnit) error { return r.db.Create(u).Error }

func (r *unitRepo) Save(u *entities.ProductionUnit) error { return r.db.Save(u).Error }

func (r *unitRepo) FindByID(id uint) (*entities.ProductionUnit, error) {
	var u entities.ProductionUnit
	if err := r.db.First(&u, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.Newf(apperr.NotFound, "production unit %d not found", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *unitRepo) List(status, resinType string) ([]entities.ProductionUnit, error) {
	q := r.db.Model(&entities.ProductionUnit{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if resinType != "" {
		q = q.Where("resin_type = ?", resinType)
	}
	var out []entities.ProductionUnit
	return out, q.Order("produced_at DESC, unit_id DESC").Find(&out).Error
}

func (r *unitRepo) PendingBatches(resinType, scheduledDate string) ([]entities.ProductionUnit, error) {
	var out []entities.ProductionUnit
	err := r.db.
		Where("is_batch = ? AND status = ? AND resin_type = ? AND scheduled_date = ?",
			true, entities.UnitPending, resinType, scheduledDate).
		Order("unit_id ASC").
		Find(&out).Error
	return out, err
}

func (r *unitRepo) HardDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&entities.ProductionUnit{}, ids).Error
}

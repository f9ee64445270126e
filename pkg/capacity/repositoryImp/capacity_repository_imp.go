package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akolite/entities"
	"akolite/pkg/capacity/repository"
)

type capacityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CapacityRepository { return &capacityRepo{db} }

func (r *capacityRepo) Get(resinType string) (float64, error) {
	var s entities.CapacitySetting
	err := r.db.Where("resin_type = ?", resinType).First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return entities.DefaultCapacityLitres, nil
	}
	if err != nil {
		return 0, err
	}
	return s.CapacityLitres, nil
}

func (r *capacityRepo) Upsert(resinType string, capacityLitres float64) error {
	s := entities.CapacitySetting{ResinType: resinType, CapacityLitres: capacityLitres}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resin_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"capacity_litres", "updated_at"}),
	}).Create(&s).Error
}

func (r *capacityRepo) List() ([]entities.CapacitySetting, error) {
	var out []entities.CapacitySetting
	return out, r.db.Order("resin_type ASC").Find(&out).Error
}

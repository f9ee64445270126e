package materials

import (
	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
)

type gormLedger struct{ db *gorm.DB }

func NewGorm(db *gorm.DB) Ledger { return &gormLedger{db: db} }

func (l *gormLedger) WithTx(tx *gorm.DB) Ledger { return &gormLedger{db: tx} }

func (l *gormLedger) Reserve(lines []entities.MaterialLine) error {
	for _, line := range lines {
		var m entities.RawMaterial
		if err := l.db.Where("material = ?", line.Material).First(&m).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperr.Newf(apperr.InsufficientQuantity,
					"raw material %q not in stock", line.Material)
			}
			return err
		}
		if m.StockQty < line.RequiredQty {
			return apperr.Newf(apperr.InsufficientQuantity,
				"raw material %q: need %.2f, have %.2f", line.Material, line.RequiredQty, m.StockQty)
		}
		if err := l.db.Model(&entities.RawMaterial{}).
			Where("material = ?", line.Material).
			Update("stock_qty", gorm.Expr("stock_qty - ?", line.RequiredQty)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (l *gormLedger) Release(lines []entities.MaterialLine) error {
	for _, line := range lines {
		var m entities.RawMaterial
		err := l.db.Where("material = ?", line.Material).First(&m).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			// stock row was purged since reservation; recreate it
			m = entities.RawMaterial{Material: line.Material, StockQty: line.RequiredQty}
			if err := l.db.Create(&m).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := l.db.Model(&entities.RawMaterial{}).
				Where("material = ?", line.Material).
				Update("stock_qty", gorm.Expr("stock_qty + ?", line.RequiredQty)).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

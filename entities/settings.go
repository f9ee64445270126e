package entities

import "time"

const DefaultCapacityLitres = 5000.0

type CapacitySetting struct {
	ResinType      string    `gorm:"primaryKey" json:"resin_type"`
	CapacityLitres float64   `json:"capacity_litres"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package entities

import "time"

// DispatchRecord is the immutable outbound record consumed by billing and
// reporting. A partial single dispatch emits a second record routing the
// remainder to the Godown holding client.
type DispatchRecord struct {
	RecordID             uint      `gorm:"primaryKey" json:"record_id"`
	OriginalProductionID uint      `gorm:"index" json:"original_production_id"`
	ResinType            string    `gorm:"index" json:"resin_type"`
	ClientName           string    `gorm:"index" json:"client_name"`
	Litres               float64   `json:"litres"`
	Unit                 string    `json:"unit"`
	OrderNumber          string    `json:"order_number"`
	DispatchTime         time.Time `gorm:"index" json:"dispatch_time"`
}

package materials

import (
	"gorm.io/gorm"

	"akolite/entities"
)

// Ledger is the raw-material stock collaborator. Production creation
// reserves the materials snapshot; deletion (and rebuild discard)
// releases it back.
type Ledger interface {
	Reserve(lines []entities.MaterialLine) error
	Release(lines []entities.MaterialLine) error
	// WithTx returns a view of the ledger bound to tx so callers can make
	// stock movement atomic with their own writes.
	WithTx(tx *gorm.DB) Ledger
}

package materials

import (
	"sync"

	"gorm.io/gorm"

	"akolite/entities"
)

// MockLedger records movements in memory. Used in tests and as the
// fallback when no stock database is configured.
type MockLedger struct {
	mu       sync.Mutex
	Reserved []entities.MaterialLine
	Released []entities.MaterialLine
	FailWith error // when set, Reserve returns it
}

func NewMock() *MockLedger { return &MockLedger{} }

func (m *MockLedger) WithTx(_ *gorm.DB) Ledger { return m }

func (m *MockLedger) Reserve(lines []entities.MaterialLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Reserved = append(m.Reserved, lines...)
	return nil
}

func (m *MockLedger) Release(lines []entities.MaterialLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Released = append(m.Released, lines...)
	return nil
}

package dao

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Participant{},
		&Raffle{},
		&RaffleNumber{},
		&Purchase{},
		&Ticket{},
	)
}

// Schema runs InitTables at most once per process.
type Schema struct {
	db    *gorm.DB
	mu    sync.Mutex
	ready atomic.Bool
}

func NewSchema(db *gorm.DB) *Schema {
	return &Schema{
		db: db,
	}
}

// EnsureReady is idempotent and safe for concurrent use.
func (s *Schema) EnsureReady(ctx context.Context) error {
	if s.ready.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready.Load() {
		return nil
	}

	if err := InitTables(s.db.WithContext(ctx)); err != nil {
		return fmt.Errorf("InitTables -> %w", err)
	}
	s.ready.Store(true)

	return nil
}

func (s *Schema) Ready() bool {
	return s.ready.Load()
}

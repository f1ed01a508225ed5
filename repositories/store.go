package repositories

import (
	"context"

	"cafe-ledger/db"

	"gorm.io/gorm"
)

type gormStore struct {
	db db.Database
}

func NewStore(database db.Database) Store {
	return &gormStore{db: database}
}

func (s *gormStore) Users() UserRepository          { return NewUserGormRepository(s.db) }
func (s *gormStore) Expenses() ExpenseRepository    { return NewExpenseGormRepository(s.db) }
func (s *gormStore) Inventory() InventoryRepository { return NewInventoryGormRepository(s.db) }
func (s *gormStore) Sales() SaleRepository          { return NewSaleGormRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: &db.GormDatabase{DB: tx}})
	})
}

package repositories

import (
	"context"
	"errors"

	"cafe-ledger/entities"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *entities.Expense) error
	GetAll(ctx context.Context) ([]entities.Expense, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *entities.InventoryItem) error
	GetByID(ctx context.Context, id uint) (*entities.InventoryItem, error)
	GetByName(ctx context.Context, name string) (*entities.InventoryItem, error)
	GetAll(ctx context.Context) ([]entities.InventoryItem, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	// DecrementQuantity takes n units only if at least n are in stock.
	DecrementQuantity(ctx context.Context, id uint, n int) (bool, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	GetAll(ctx context.Context) ([]entities.Sale, error)
}

// Repositories groups the per-entity repositories sharing one connection or transaction.
type Repositories interface {
	Users() UserRepository
	Expenses() ExpenseRepository
	Inventory() InventoryRepository
	Sales() SaleRepository
}

// Store is the persistence gateway handed to the business rules.
type Store interface {
	Repositories
	// Transaction commits everything fn did through repos, or nothing if fn fails.
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

// translate maps gorm errors onto the gateway sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func affected(result *gorm.DB) error {
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

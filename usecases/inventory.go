package usecases

import (
	"context"
	"errors"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"
	"cafe-ledger/repositories"
	"cafe-ledger/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (uc *CafeUseCase) AddInventoryItem(ctx context.Context, name string, quantity int, cost decimal.Decimal) (*entities.InventoryItem, error) {
	item, err := validation.InventoryInput{ItemName: name, Quantity: quantity, Cost: cost}.Validate()
	if err != nil {
		return nil, uc.fail("add inventory item", err)
	}
	if err := uc.store.Inventory().Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, uc.fail("add inventory item", apperrors.Newf(apperrors.DuplicateItem, "inventory item %q already exists", item.ItemName))
		}
		return nil, uc.fail("add inventory item", err)
	}
	uc.log.Info("inventory item added", zap.Uint("item_id", item.ID), zap.String("item_name", item.ItemName))
	return item, nil
}

func (uc *CafeUseCase) ListInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	items, err := uc.store.Inventory().GetAll(ctx)
	if err != nil {
		return nil, uc.fail("list inventory", err)
	}
	return items, nil
}

// UpdateInventoryItem applies the fields present in patch.
func (uc *CafeUseCase) UpdateInventoryItem(ctx context.Context, id uint, patch entities.InventoryPatch) (*entities.InventoryItem, error) {
	updates, err := validation.InventoryPatch(patch)
	if err != nil {
		return nil, uc.fail("update inventory item", err)
	}

	if err := uc.store.Inventory().Update(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, uc.fail("update inventory item", apperrors.Newf(apperrors.NotFound, "inventory item with ID %d not found", id))
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, uc.fail("update inventory item", apperrors.New(apperrors.DuplicateItem, "inventory item name already exists"))
		}
		return nil, uc.fail("update inventory item", err)
	}

	item, err := uc.store.Inventory().GetByID(ctx, id)
	if err != nil {
		return nil, uc.fail("update inventory item", err)
	}
	uc.log.Info("inventory item updated", zap.Uint("item_id", id))
	return item, nil
}

func (uc *CafeUseCase) DeleteInventoryItem(ctx context.Context, id uint) error {
	if err := uc.store.Inventory().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return uc.fail("delete inventory item", apperrors.Newf(apperrors.NotFound, "inventory item with ID %d not found", id))
		}
		return uc.fail("delete inventory item", err)
	}
	uc.log.Info("inventory item deleted", zap.Uint("item_id", id))
	return nil
}

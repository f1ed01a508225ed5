package repositories

import (
	"context"

	"cafe-ledger/db"
	"cafe-ledger/entities"

	"gorm.io/gorm"
)

type inventoryGormRepository struct {
	db db.Database
}

func NewInventoryGormRepository(database db.Database) InventoryRepository {
	return &inventoryGormRepository{db: database}
}

func (r *inventoryGormRepository) Create(ctx context.Context, item *entities.InventoryItem) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(item).Error)
}

func (r *inventoryGormRepository) GetByID(ctx context.Context, id uint) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *inventoryGormRepository) GetByName(ctx context.Context, name string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.GetDB().WithContext(ctx).Where("item_name = ?", name).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *inventoryGormRepository) GetAll(ctx context.Context) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, translate(err)
}

func (r *inventoryGormRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return affected(r.db.GetDB().WithContext(ctx).Model(&entities.InventoryItem{}).Where("id = ?", id).Updates(fields))
}

func (r *inventoryGormRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}))
}

func (r *inventoryGormRepository) DecrementQuantity(ctx context.Context, id uint, n int) (bool, error) {
	result := r.db.GetDB().WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, n).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", n))
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected == 1, nil
}

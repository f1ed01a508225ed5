package repositories

import (
	"context"

	"cafe-ledger/db"
	"cafe-ledger/entities"
)

type saleGormRepository struct {
	db db.Database
}

func NewSaleGormRepository(database db.Database) SaleRepository {
	return &saleGormRepository{db: database}
}

func (r *saleGormRepository) Create(ctx context.Context, sale *entities.Sale) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(sale).Error)
}

func (r *saleGormRepository) GetAll(ctx context.Context) ([]entities.Sale, error) {
	var sales []entities.Sale
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&sales).Error
	return sales, translate(err)
}

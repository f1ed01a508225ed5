package repositories

import (
	"context"

	"cafe-ledger/db"
	"cafe-ledger/entities"
)

type expenseGormRepository struct {
	db db.Database
}

func NewExpenseGormRepository(database db.Database) ExpenseRepository {
	return &expenseGormRepository{db: database}
}

func (r *expenseGormRepository) Create(ctx context.Context, expense *entities.Expense) error {
	return translate(r.db.GetDB().WithContext(ctx).Create(expense).Error)
}

func (r *expenseGormRepository) GetAll(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&expenses).Error
	return expenses, translate(err)
}

package usecases

import (
	"context"

	"cafe-ledger/entities"
	"cafe-ledger/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordExpense stores an expense. description may be nil.
func (uc *CafeUseCase) RecordExpense(ctx context.Context, date string, amount decimal.Decimal, category string, description *string) (*entities.Expense, error) {
	expense, err := validation.ExpenseInput{Date: date, Amount: amount, Category: category, Description: description}.Validate()
	if err != nil {
		return nil, uc.fail("record expense", err)
	}
	if err := uc.store.Expenses().Create(ctx, expense); err != nil {
		return nil, uc.fail("record expense", err)
	}
	uc.log.Info("expense recorded", zap.Uint("expense_id", expense.ID), zap.String("category", expense.Category))
	return expense, nil
}

func (uc *CafeUseCase) ExpenseHistory(ctx context.Context) ([]entities.Expense, error) {
	expenses, err := uc.store.Expenses().GetAll(ctx)
	if err != nil {
		return nil, uc.fail("expense history", err)
	}
	return expenses, nil
}

// RecordSale stores a manually entered sale.
func (uc *CafeUseCase) RecordSale(ctx context.Context, date string, amount decimal.Decimal, itemsSold string) (*entities.Sale, error) {
	sale, err := validation.SaleInput{Date: date, Amount: amount, ItemsSold: itemsSold}.Validate()
	if err != nil {
		return nil, uc.fail("record sale", err)
	}
	if err := uc.store.Sales().Create(ctx, sale); err != nil {
		return nil, uc.fail("record sale", err)
	}
	uc.log.Info("sale recorded", zap.Uint("sale_id", sale.ID))
	uc.saleRecorded(*sale, nil)
	return sale, nil
}

func (uc *CafeUseCase) SalesHistory(ctx context.Context) ([]entities.Sale, error) {
	sales, err := uc.store.Sales().GetAll(ctx)
	if err != nil {
		return nil, uc.fail("sales history", err)
	}
	return sales, nil
}

// Package reports turns stored ledger records into display rows.
package reports

import (
	"context"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"
	"cafe-ledger/repositories"
	"cafe-ledger/validation"
)

type ExpenseRow struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type InventoryRow struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Cost     string `json:"cost"`
}

type SaleRow struct {
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	ItemsSold string `json:"items_sold"`
}

// Report is the three reports read from one snapshot.
type Report struct {
	Expenses  []ExpenseRow   `json:"expenses"`
	Inventory []InventoryRow `json:"inventory"`
	Sales     []SaleRow      `json:"sales"`
}

// Builder reads the ledger and formats rows. It never writes.
type Builder struct {
	store repositories.Store
}

func NewBuilder(store repositories.Store) *Builder {
	return &Builder{store: store}
}

func (b *Builder) ExpenseReport(ctx context.Context) ([]ExpenseRow, error) {
	return expenseReport(ctx, b.store)
}

func (b *Builder) InventoryReport(ctx context.Context) ([]InventoryRow, error) {
	return inventoryReport(ctx, b.store)
}

func (b *Builder) SalesReport(ctx context.Context) ([]SaleRow, error) {
	return salesReport(ctx, b.store)
}

// Generate builds all three reports inside one transaction.
func (b *Builder) Generate(ctx context.Context) (*Report, error) {
	var report Report
	err := b.store.Transaction(ctx, func(repos repositories.Repositories) error {
		var err error
		if report.Expenses, err = expenseReport(ctx, repos); err != nil {
			return err
		}
		if report.Inventory, err = inventoryReport(ctx, repos); err != nil {
			return err
		}
		report.Sales, err = salesReport(ctx, repos)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func expenseReport(ctx context.Context, repos repositories.Repositories) ([]ExpenseRow, error) {
	expenses, err := repos.Expenses().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	rows := make([]ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, expenseRow(e))
	}
	return rows, nil
}

func inventoryReport(ctx context.Context, repos repositories.Repositories) ([]InventoryRow, error) {
	items, err := repos.Inventory().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	rows := make([]InventoryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, InventoryRow{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Cost:     item.Cost.StringFixed(2),
		})
	}
	return rows, nil
}

func salesReport(ctx context.Context, repos repositories.Repositories) ([]SaleRow, error) {
	sales, err := repos.Sales().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	rows := make([]SaleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleRow{
			Date:      s.Date.Format(validation.DateLayout),
			Amount:    s.Amount.StringFixed(2),
			ItemsSold: s.ItemsSold,
		})
	}
	return rows, nil
}

func expenseRow(e entities.Expense) ExpenseRow {
	row := ExpenseRow{
		Date:     e.Date.Format(validation.DateLayout),
		Amount:   e.Amount.StringFixed(2),
		Category: e.Category,
	}
	if e.Description != nil {
		row.Description = *e.Description
	}
	return row
}

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

const (
	purchaseCompleted = "completed"
	purchaseCancelled = "cancelled"
	purchaseRejected  = "rejected"
	purchaseFailed    = "failed"
)

// PurchaseQuote is the price of a purchase before payment is confirmed.
type PurchaseQuote struct {
	Item     entities.InventoryItem `json:"item"`
	Quantity int                    `json:"quantity"`
	Total    decimal.Decimal        `json:"total"`
}

type PurchaseReceipt struct {
	Item  entities.InventoryItem `json:"item"`
	Sale  entities.Sale          `json:"sale"`
	Total decimal.Decimal        `json:"total"`
}

// QuotePurchase prices quantity units of an item without changing anything.
func (uc *CafeUseCase) QuotePurchase(ctx context.Context, itemID uint, quantity int) (*PurchaseQuote, error) {
	quote, err := uc.quote(ctx, itemID, quantity)
	if err != nil {
		return nil, uc.fail("quote purchase", err)
	}
	return quote, nil
}

func (uc *CafeUseCase) quote(ctx context.Context, itemID uint, quantity int) (*PurchaseQuote, error) {
	if err := validation.CheckAmount("quantity", decimal.NewFromInt(int64(quantity))); err != nil {
		return nil, err
	}
	item, err := uc.store.Inventory().GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.ItemNotFound, "inventory item with ID %d not found", itemID)
		}
		return nil, err
	}
	if quantity > item.Quantity {
		return nil, apperrors.Newf(apperrors.InsufficientStock, "requested %d of %q, only %d in stock", quantity, item.ItemName, item.Quantity)
	}
	total := item.Cost.Mul(decimal.NewFromInt(int64(quantity)))
	// a purchase records a sale, and sales must be positive
	if err := validation.CheckAmount("purchase total", total); err != nil {
		return nil, err
	}
	return &PurchaseQuote{Item: *item, Quantity: quantity, Total: total}, nil
}

// PurchaseItem sells quantity units of an item. Once payment is confirmed the
// stock decrement and the sale record are written in one transaction, so
// neither is ever visible without the other.
func (uc *CafeUseCase) PurchaseItem(ctx context.Context, itemID uint, quantity int, paymentConfirmed bool) (*PurchaseReceipt, error) {
	quote, err := uc.quote(ctx, itemID, quantity)
	if err != nil {
		uc.metrics.PurchaseOutcome(outcomeOf(err))
		return nil, uc.fail("purchase item", err)
	}
	if !paymentConfirmed {
		uc.metrics.PurchaseOutcome(purchaseCancelled)
		return nil, uc.fail("purchase item", apperrors.ErrPurchaseCancelled)
	}

	var receipt PurchaseReceipt
	err = uc.store.Transaction(ctx, func(repos repositories.Repositories) error {
		ok, err := repos.Inventory().DecrementQuantity(ctx, itemID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			// stock changed since the quote
			current, err := repos.Inventory().GetByID(ctx, itemID)
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.Newf(apperrors.ItemNotFound, "inventory item with ID %d not found", itemID)
			}
			if err != nil {
				return err
			}
			return apperrors.Newf(apperrors.InsufficientStock, "requested %d of %q, only %d in stock", quantity, current.ItemName, current.Quantity)
		}

		sale, err := validation.SaleInput{
			Date:      uc.now().UTC().Format(validation.DateLayout),
			Amount:    quote.Total,
			ItemsSold: entities.ItemsSoldLabel(quote.Item.ItemName, quantity),
		}.Validate()
		if err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		item, err := repos.Inventory().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		receipt = PurchaseReceipt{Item: *item, Sale: *sale, Total: quote.Total}
		return nil
	})
	if err != nil {
		uc.metrics.PurchaseOutcome(outcomeOf(err))
		return nil, uc.fail("purchase item", err)
	}

	uc.metrics.PurchaseOutcome(purchaseCompleted)
	uc.log.Info("purchase complete",
		zap.Uint("item_id", itemID),
		zap.Int("quantity", quantity),
		zap.String("total", receipt.Total.StringFixed(2)),
		zap.Int("remaining", receipt.Item.Quantity),
	)
	uc.saleRecorded(receipt.Sale, &receipt.Item)
	return &receipt, nil
}

func outcomeOf(err error) string {
	if apperrors.KindOf(err) == apperrors.StorageError {
		return purchaseFailed
	}
	return purchaseRejected
}

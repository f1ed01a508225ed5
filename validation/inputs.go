package validation

import (
	"strings"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"

	"github.com/shopspring/decimal"
)

type UserInput struct {
	Username string `field:"username" validate:"required"`
	Password string `field:"password" validate:"required,notblank"`
	Email    string `field:"email" validate:"required,cafe_email"`
	Role     string `field:"role" validate:"required,oneof=admin user"`
}

// Validate returns the input with username and email trimmed, or the first
// rule it breaks. Role and password are checked as given.
func (in UserInput) Validate() (UserInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := check(in); err != nil {
		return UserInput{}, err
	}
	return in, nil
}

type ExpenseInput struct {
	Date        string          `field:"date" validate:"required,cafe_date"`
	Amount      decimal.Decimal `field:"amount" validate:"money_positive"`
	Category    string          `field:"category" validate:"required"`
	Description *string
}

func (in ExpenseInput) Validate() (*entities.Expense, error) {
	in.Category = strings.TrimSpace(in.Category)
	if err := check(in); err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var description *string
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		d := strings.TrimSpace(*in.Description)
		description = &d
	}
	return &entities.Expense{
		Date:        date,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: description,
	}, nil
}

type SaleInput struct {
	Date      string          `field:"date" validate:"required,cafe_date"`
	Amount    decimal.Decimal `field:"amount" validate:"money_positive"`
	ItemsSold string          `field:"items_sold" validate:"required"`
}

func (in SaleInput) Validate() (*entities.Sale, error) {
	in.ItemsSold = strings.TrimSpace(in.ItemsSold)
	if err := check(in); err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &entities.Sale{Date: date, Amount: in.Amount, ItemsSold: in.ItemsSold}, nil
}

type InventoryInput struct {
	ItemName string          `field:"item_name" validate:"required"`
	Quantity int             `field:"quantity" validate:"gte=0"`
	Cost     decimal.Decimal `field:"cost" validate:"money_nonnegative"`
}

func (in InventoryInput) Validate() (*entities.InventoryItem, error) {
	in.ItemName = strings.TrimSpace(in.ItemName)
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.InventoryItem{ItemName: in.ItemName, Quantity: in.Quantity, Cost: in.Cost}, nil
}

// UserPatch checks the present fields of p and returns the column updates
// they translate to. The password is left for the caller to hash.
func UserPatch(p entities.UserPatch) (map[string]any, error) {
	if p.IsEmpty() {
		return nil, apperrors.ErrNoUpdatesProvided
	}
	updates := make(map[string]any)
	if p.Username != nil {
		name := strings.TrimSpace(*p.Username)
		if err := Required(Field{"username", name}); err != nil {
			return nil, err
		}
		updates["username"] = name
	}
	if p.Password != nil {
		if err := Required(Field{"password", *p.Password}); err != nil {
			return nil, err
		}
		updates["password"] = *p.Password
	}
	if p.Email != nil {
		email := strings.TrimSpace(*p.Email)
		if err := Required(Field{"email", email}); err != nil {
			return nil, err
		}
		if err := ValidateEmail(email); err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if p.Role != nil {
		if err := CheckRole(*p.Role); err != nil {
			return nil, err
		}
		updates["role"] = *p.Role
	}
	return updates, nil
}

// InventoryPatch checks the present fields of p and returns the column updates.
func InventoryPatch(p entities.InventoryPatch) (map[string]any, error) {
	if p.IsEmpty() {
		return nil, apperrors.ErrNoUpdatesProvided
	}
	updates := make(map[string]any)
	if p.ItemName != nil {
		name := strings.TrimSpace(*p.ItemName)
		if err := Required(Field{"item_name", name}); err != nil {
			return nil, err
		}
		updates["item_name"] = name
	}
	if p.Quantity != nil {
		if err := CheckNonNegative("quantity", decimal.NewFromInt(int64(*p.Quantity))); err != nil {
			return nil, err
		}
		updates["quantity"] = *p.Quantity
	}
	if p.Cost != nil {
		if err := CheckNonNegative("cost", *p.Cost); err != nil {
			return nil, err
		}
		updates["cost"] = *p.Cost
	}
	return updates, nil
}

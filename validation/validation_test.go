package validation

import (
	"testing"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	t.Run("accepts calendar dates", func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.Format(DateLayout))
	})

	for _, raw := range []string{"2024-13-01", "2023-02-29", "2024-1-01", "01/02/2024", "2024-01-01T10:00:00", "2024-01", "", " 2024-01-01 ", "2024-01-01\n"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := ParseDate(raw)
			assert.Equal(t, apperrors.InvalidDate, apperrors.KindOf(err))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "barista@cafe.example.org", " owner@cafe.it "}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{"a@b", "@b.com", "a@b.com.", "a@@b.com", "a@b@c.com", "ab.com", "a@", "@", ""}
	for _, email := range invalid {
		err := ValidateEmail(email)
		assert.Equal(t, apperrors.InvalidEmail, apperrors.KindOf(err), email)
	}
}

func TestCheckRole(t *testing.T) {
	assert.NoError(t, CheckRole("admin"))
	assert.NoError(t, CheckRole("user"))
	assert.ErrorIs(t, CheckRole("Admin"), apperrors.ErrInvalidEnum)
	assert.ErrorIs(t, CheckRole("manager"), apperrors.ErrInvalidEnum)
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount("amount", decimal.RequireFromString("0.01")))
	assert.ErrorIs(t, CheckAmount("amount", decimal.Zero), apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount("amount", decimal.NewFromInt(-3)), apperrors.ErrInvalidAmount)
}

func TestRequired(t *testing.T) {
	err := Required(Field{"username", "bob"}, Field{"email", "  "}, Field{"role", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
	assert.Contains(t, err.Error(), "email, role")
}

func TestUserInput_Validate(t *testing.T) {
	t.Run("normalizes valid input", func(t *testing.T) {
		in, err := UserInput{Username: " alice ", Password: "secret", Email: " alice@cafe.com", Role: "admin"}.Validate()
		require.NoError(t, err)
		assert.Equal(t, "alice", in.Username)
		assert.Equal(t, "alice@cafe.com", in.Email)
	})

	t.Run("missing field wins over other failures", func(t *testing.T) {
		_, err := UserInput{Username: "", Password: "x", Email: "bad", Role: "boss"}.Validate()
		assert.Equal(t, apperrors.MissingField, apperrors.KindOf(err))
	})

	t.Run("bad role", func(t *testing.T) {
		_, err := UserInput{Username: "a", Password: "x", Email: "a@b.com", Role: "boss"}.Validate()
		assert.Equal(t, apperrors.InvalidEnum, apperrors.KindOf(err))
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := UserInput{Username: "a", Password: "x", Email: "a@b", Role: "user"}.Validate()
		assert.Equal(t, apperrors.InvalidEmail, apperrors.KindOf(err))
	})

	t.Run("role must match exactly", func(t *testing.T) {
		_, err := UserInput{Username: "a", Password: "x", Email: "a@b.com", Role: " admin "}.Validate()
		assert.Equal(t, apperrors.InvalidEnum, apperrors.KindOf(err))
	})

	t.Run("blank password", func(t *testing.T) {
		_, err := UserInput{Username: "a", Password: "   ", Email: "a@b.com", Role: "user"}.Validate()
		assert.Equal(t, apperrors.MissingField, apperrors.KindOf(err))
	})
}

func TestExpenseInput_Validate(t *testing.T) {
	t.Run("valid expense without description", func(t *testing.T) {
		e, err := ExpenseInput{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Category: "Supplies"}.Validate()
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", e.Date.Format(DateLayout))
		assert.Nil(t, e.Description)
	})

	t.Run("keeps description", func(t *testing.T) {
		e, err := ExpenseInput{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Category: "Supplies", Description: strPtr("milk")}.Validate()
		require.NoError(t, err)
		require.NotNil(t, e.Description)
		assert.Equal(t, "milk", *e.Description)
	})

	t.Run("month 13", func(t *testing.T) {
		_, err := ExpenseInput{Date: "2024-13-01", Amount: decimal.NewFromInt(10), Category: "Supplies"}.Validate()
		assert.Equal(t, apperrors.InvalidDate, apperrors.KindOf(err))
	})

	t.Run("date checked before amount", func(t *testing.T) {
		_, err := ExpenseInput{Date: "yesterday", Amount: decimal.NewFromInt(-1), Category: "Supplies"}.Validate()
		assert.Equal(t, apperrors.InvalidDate, apperrors.KindOf(err))
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := ExpenseInput{Date: "2024-03-05", Amount: decimal.Zero, Category: "Supplies"}.Validate()
		assert.Equal(t, apperrors.InvalidAmount, apperrors.KindOf(err))
	})

	t.Run("tiny positive amount", func(t *testing.T) {
		e, err := ExpenseInput{Date: "2024-03-05", Amount: decimal.New(1, -400), Category: "Supplies"}.Validate()
		require.NoError(t, err)
		assert.True(t, e.Amount.Equal(decimal.New(1, -400)))
	})

	t.Run("tiny negative amount", func(t *testing.T) {
		_, err := ExpenseInput{Date: "2024-03-05", Amount: decimal.New(-1, -400), Category: "Supplies"}.Validate()
		assert.Equal(t, apperrors.InvalidAmount, apperrors.KindOf(err))
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := ExpenseInput{Date: "2024-13-01", Amount: decimal.NewFromInt(1), Category: " "}.Validate()
		assert.Equal(t, apperrors.MissingField, apperrors.KindOf(err))
	})
}

func TestSaleInput_Validate(t *testing.T) {
	s, err := SaleInput{Date: "2024-06-01", Amount: decimal.RequireFromString("15.00"), ItemsSold: "Latte Beans x 3"}.Validate()
	require.NoError(t, err)
	assert.True(t, s.Amount.Equal(decimal.NewFromInt(15)))

	_, err = SaleInput{Date: "2024-06-01", Amount: decimal.NewFromInt(-5), ItemsSold: "x"}.Validate()
	assert.Equal(t, apperrors.InvalidAmount, apperrors.KindOf(err))
}

func TestInventoryInput_Validate(t *testing.T) {
	item, err := InventoryInput{ItemName: "Latte Beans", Quantity: 0, Cost: decimal.Zero}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Latte Beans", item.ItemName)

	_, err = InventoryInput{ItemName: "Milk", Quantity: -1, Cost: decimal.NewFromInt(1)}.Validate()
	assert.Equal(t, apperrors.NegativeValue, apperrors.KindOf(err))

	_, err = InventoryInput{ItemName: "Milk", Quantity: 1, Cost: decimal.RequireFromString("-0.5")}.Validate()
	assert.Equal(t, apperrors.NegativeValue, apperrors.KindOf(err))

	_, err = InventoryInput{ItemName: "Milk", Quantity: 1, Cost: decimal.New(-1, -400)}.Validate()
	assert.Equal(t, apperrors.NegativeValue, apperrors.KindOf(err))

	_, err = InventoryInput{ItemName: "", Quantity: 1, Cost: decimal.NewFromInt(1)}.Validate()
	assert.Equal(t, apperrors.MissingField, apperrors.KindOf(err))
}

func TestUserPatch(t *testing.T) {
	_, err := UserPatch(entities.UserPatch{})
	assert.ErrorIs(t, err, apperrors.ErrNoUpdatesProvided)

	updates, err := UserPatch(entities.UserPatch{Email: strPtr("new@cafe.com"), Role: strPtr("user")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "new@cafe.com", "role": "user"}, updates)

	_, err = UserPatch(entities.UserPatch{Role: strPtr("root")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEnum)

	_, err = UserPatch(entities.UserPatch{Email: strPtr("nope")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = UserPatch(entities.UserPatch{Role: strPtr(" admin ")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEnum)

	_, err = UserPatch(entities.UserPatch{Password: strPtr("   ")})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestInventoryPatch(t *testing.T) {
	_, err := InventoryPatch(entities.InventoryPatch{})
	assert.ErrorIs(t, err, apperrors.ErrNoUpdatesProvided)

	qty := -2
	_, err = InventoryPatch(entities.InventoryPatch{Quantity: &qty})
	assert.ErrorIs(t, err, apperrors.ErrNegativeValue)

	qty = 4
	cost := decimal.RequireFromString("2.5")
	updates, err := InventoryPatch(entities.InventoryPatch{Quantity: &qty, Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, 4, updates["quantity"])
	assert.True(t, cost.Equal(updates["cost"].(decimal.Decimal)))
}

// Package validation checks and normalizes raw input before it reaches the
// business rules. Nothing here touches storage.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})
	_ = v.RegisterValidation("cafe_email", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("cafe_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("money_positive", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.IsPositive()
	})
	_ = v.RegisterValidation("money_nonnegative", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && !d.IsNegative()
	})
	// decimals reach the money tags as their exact string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// ParseDate accepts only YYYY-MM-DD calendar dates.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.Newf(apperrors.InvalidDate, "invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// ValidateEmail is a syntactic check only: one '@', non-empty local and
// domain parts, a '.' in the domain, no leading '@' and no trailing '.'.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	invalid := apperrors.Newf(apperrors.InvalidEmail, "invalid email address %q", email)
	if strings.Count(email, "@") != 1 || strings.HasPrefix(email, "@") || strings.HasSuffix(email, ".") {
		return invalid
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" || !strings.Contains(domain, ".") {
		return invalid
	}
	return nil
}

// CheckRole accepts exactly "admin" or "user".
func CheckRole(role string) error {
	if role != entities.RoleAdmin && role != entities.RoleUser {
		return apperrors.Newf(apperrors.InvalidEnum, "role must be 'admin' or 'user', got %q", role)
	}
	return nil
}

// CheckAmount rejects zero and negative amounts and purchase quantities.
func CheckAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.Newf(apperrors.InvalidAmount, "%s must be greater than zero", field)
	}
	return nil
}

// CheckNonNegative rejects negative quantities and costs.
func CheckNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return apperrors.Newf(apperrors.NegativeValue, "%s must be non-negative", field)
	}
	return nil
}

// Field is a named raw value for Required.
type Field struct {
	Name  string
	Value string
}

// Required fails with MissingField naming every blank field.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return apperrors.Newf(apperrors.MissingField, "required: %s", strings.Join(missing, ", "))
	}
	return nil
}

var tagKinds = map[string]apperrors.Kind{
	"required":          apperrors.MissingField,
	"notblank":          apperrors.MissingField,
	"oneof":             apperrors.InvalidEnum,
	"cafe_email":        apperrors.InvalidEmail,
	"cafe_date":         apperrors.InvalidDate,
	"money_positive":    apperrors.InvalidAmount,
	"gte":               apperrors.NegativeValue,
	"money_nonnegative": apperrors.NegativeValue,
}

// check runs the struct rules of s. Missing fields are reported before any
// other failure, otherwise the first failing field in declaration order wins.
func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.MissingField, "invalid input", err)
	}

	var missing []string
	for _, fe := range verrs {
		if tagKinds[fe.Tag()] == apperrors.MissingField {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return apperrors.Newf(apperrors.MissingField, "required: %s", strings.Join(missing, ", "))
	}

	fe := verrs[0]
	kind, ok := tagKinds[fe.Tag()]
	if !ok {
		kind = apperrors.MissingField
	}
	return apperrors.Newf(kind, "%s %s", fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + fe.Param()
	case "cafe_email":
		return "is not a valid email address"
	case "cafe_date":
		return "must be a YYYY-MM-DD date"
	case "money_positive":
		return "must be greater than zero"
	case "gte", "money_nonnegative":
		return "must be non-negative"
	default:
		return "failed " + fe.Tag()
	}
}

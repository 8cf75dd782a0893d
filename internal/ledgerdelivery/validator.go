package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// ValidSide validates whether the posting side is DEBIT or CREDIT.
var ValidSide validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return domain.Side(s).Valid()
	}
	return false
}

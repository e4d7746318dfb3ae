package handlers

import (
	"fmt"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain-specific binding tags used by the DTOs:
// entrytype (income|expense), yearmonth (YYYY-MM) and isodate (YYYY-MM-DD).
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	validators := map[string]validator.Func{
		"entrytype": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseEntryType(fl.Field().String())
			return err == nil
		},
		"yearmonth": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseMonth(fl.Field().String())
			return err == nil
		},
		"isodate": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseDate(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

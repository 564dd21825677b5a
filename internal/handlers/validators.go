package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

var paymentFrequencies = map[domain.PaymentFrequency]bool{
	domain.FrequencyDaily:     true,
	domain.FrequencyWeekly:    true,
	domain.FrequencyBiweekly:  true,
	domain.FrequencyMonthly:   true,
	domain.FrequencyQuarterly: true,
	domain.FrequencyYearly:    true,
	domain.FrequencyLumpSum:   true,
}

// RegisterValidators installs the loan request validation rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		// gte/lte compare decimals through their float value
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		rules := map[string]validator.Func{
			"interest_method": func(fl validator.FieldLevel) bool {
				m := domain.InterestMethod(fl.Field().String())
				return m == domain.InterestFlat || m == domain.InterestDecliningBalance
			},
			"payment_frequency": func(fl validator.FieldLevel) bool {
				return paymentFrequencies[domain.PaymentFrequency(fl.Field().String())]
			},
			"loan_status": func(fl validator.FieldLevel) bool {
				_, err := domain.ParseLoanStatus(fl.Field().String())
				return err == nil
			},
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				validatorsErr = fmt.Errorf("failed to register %s validation: %w", tag, err)
				return
			}
		}
	})
	return validatorsErr
}

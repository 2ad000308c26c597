// Package validator provides a wrapper around the go-playground/validator library,
// adding thread-safe initialization, bitcoin-specific rules and standardized
// error formatting.
//
// Besides the built-in tags, the "btcaddr" tag accepts any string that decodes
// as a bitcoin mainnet address (P2PKH, P2SH, segwit v0 and taproot).
package validator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	gvalidator "github.com/go-playground/validator/v10"
)

// validator is a singleton instance of the go-playground validator.
var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// ErrValidation is returned as the first error when validation fails.
// It acts as a high-level indicator that one or more validation rules were violated.
var ErrValidation = errors.New("validation error")

// errStringFormat defines the format for individual validation error messages.
//
// Example: "'Address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// IsBitcoinAddress reports whether s decodes as an address of the bitcoin main network.
func IsBitcoinAddress(s string) bool {
	addr, err := btcutil.DecodeAddress(s, &chaincfg.MainNetParams)
	if err != nil {
		return false
	}

	return addr.IsForNet(&chaincfg.MainNetParams)
}

// validateBitcoinAddress backs the "btcaddr" tag.
func validateBitcoinAddress(fl gvalidator.FieldLevel) bool {
	return IsBitcoinAddress(fl.Field().String())
}

// Init initializes the validator only once, enabling required field validation
// on structs and registering the custom tags of this package.
//
// It is safe to call Init multiple times; only the first call will take effect.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("btcaddr", validateBitcoinAddress); err != nil {
			panic(err)
		}

		validator = v
	})
}

// formatError takes a validator error and transforms it into a detailed, multi-error
// chain with human-readable messages. The first error in the chain is always ErrValidation.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		var (
			field = validationErr.Field()
			tag   = validationErr.Tag()
			value = validationErr.Value()
			err   = fmt.Errorf(errStringFormat, field, value, tag)
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate validates a struct using the singleton validator instance, initializing
// it on first use.
//
// It returns nil if the struct passes validation, or an error containing all violations
// if validation fails.
//
// Example usage:
//
//	type Input struct {
//	    Address string `validate:"required,btcaddr"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("should initialize validator instance", func(t *testing.T) {
		Init()
		assert.NotNil(t, validator)
	})

	t.Run("should keep the same instance on repeated calls", func(t *testing.T) {
		Init()
		first := validator

		Init()
		assert.Same(t, first, validator)
	})
}

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		testValidator := gvalidator.New()

		type TestStruct struct {
			Name string `validate:"required"`
		}

		err := testValidator.Struct(TestStruct{Name: ""})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidation)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("database connection failed")
		formattedErr := formatError(originalErr)

		assert.Equal(t, originalErr, formattedErr)
	})
}

func TestIsBitcoinAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "mainnet p2pkh", address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", want: true},
		{name: "mainnet p2sh", address: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", want: true},
		{name: "mainnet p2wpkh", address: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", want: true},
		{name: "testnet p2wpkh", address: "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", want: false},
		{name: "garbage", address: "not-an-address", want: false},
		{name: "empty", address: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBitcoinAddress(tt.address))
		})
	}
}

func TestValidate(t *testing.T) {
	type watched struct {
		Address string `validate:"required,btcaddr"`
	}

	type blockRange struct {
		Start int64 `validate:"min=0"`
		End   int64 `validate:"min=0,gtefield=Start"`
	}

	t.Run("should accept a valid bitcoin address", func(t *testing.T) {
		assert.NoError(t, Validate(watched{Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"}))
	})

	t.Run("should reject an invalid bitcoin address", func(t *testing.T) {
		err := Validate(watched{Address: "1A1z"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "'btcaddr'")
	})

	t.Run("should reject a missing address", func(t *testing.T) {
		err := Validate(watched{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "'required'")
	})

	t.Run("should accept an ordered range", func(t *testing.T) {
		assert.NoError(t, Validate(blockRange{Start: 100, End: 100}))
	})

	t.Run("should reject a reversed range", func(t *testing.T) {
		err := Validate(blockRange{Start: 10, End: 9})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "'gtefield'")
	})

	t.Run("should reject negative heights", func(t *testing.T) {
		err := Validate(blockRange{Start: -1, End: 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "'min'")
	})

	t.Run("should pass through non-struct errors", func(t *testing.T) {
		err := Validate("not a struct")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
	})
}

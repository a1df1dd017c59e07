package validator

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidUint256 reports whether s is a base-10 integer that fits in a uint256, the shape of
// on-chain listing and token ids
func IsValidUint256(s string) bool {
	if len(s) == 0 || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return false
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return false
	}
	return n.BitLen() <= 256
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation("uint256", func(fl validator.FieldLevel) bool {
		return IsValidUint256(fl.Field().String())
	})
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

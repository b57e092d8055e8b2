package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New returns a validate with the custom tags registered:
//   address     0x hex account address
//   maxbytes=N  string whose UTF-8 encoding is at most N bytes
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("address", validateAddress); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		return nil, err
	}
	return v, nil
}

func validateAddress(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return IsValidAddress(field.String())
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	max, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(field.String()) <= max
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
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

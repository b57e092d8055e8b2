package domain

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// listing
	ErrNameTooLong   = errors.New("The name is too long")
	ErrUrlTooLong    = errors.New("The image URL is too long")
	ErrUnauthorized  = errors.New("You are not authorized to perform this action.")
	ErrListingClosed = errors.New("The listing is currently not active.")

	// pricing
	ErrMathOverflow     = errors.New("Price math overflow.")
	ErrDivisionByZero   = xerrors.Errorf("division by zero: %w", ErrMathOverflow)
	ErrStalePrice       = errors.New("Price feed is stale.")
	ErrInvalidPriceFeed = errors.New("Invalid price feed.")

	// settlement
	ErrInsufficientFunds = errors.New("Insufficient funds")
	ErrReceiptExists     = errors.New("Receipt already exists")
)

// ErrorKind is the stable machine readable identity of an error
type ErrorKind string

const (
	KindNameTooLong       ErrorKind = "NameTooLong"
	KindUrlTooLong        ErrorKind = "UrlTooLong"
	KindUnauthorized      ErrorKind = "Unauthorized"
	KindListingClosed     ErrorKind = "ListingClosed"
	KindMathOverflow      ErrorKind = "MathOverflow"
	KindStalePrice        ErrorKind = "StalePrice"
	KindInvalidPriceFeed  ErrorKind = "InvalidPriceFeed"
	KindInsufficientFunds ErrorKind = "InsufficientFunds"
	KindReceiptExists     ErrorKind = "ReceiptExists"
	KindNotFound          ErrorKind = "NotFound"
	KindConflict          ErrorKind = "Conflict"
	KindBadParamInput     ErrorKind = "BadParamInput"
	KindInvalidAddress    ErrorKind = "InvalidAddress"
	KindInvalidSignature  ErrorKind = "InvalidSignature"
	KindInternal          ErrorKind = "Internal"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrNameTooLong, KindNameTooLong},
	{ErrUrlTooLong, KindUrlTooLong},
	{ErrUnauthorized, KindUnauthorized},
	{ErrListingClosed, KindListingClosed},
	{ErrMathOverflow, KindMathOverflow},
	{ErrStalePrice, KindStalePrice},
	{ErrInvalidPriceFeed, KindInvalidPriceFeed},
	{ErrInsufficientFunds, KindInsufficientFunds},
	{ErrReceiptExists, KindReceiptExists},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrBadParamInput, KindBadParamInput},
	{ErrInvalidAddress, KindInvalidAddress},
	{ErrInvalidSignature, KindInvalidSignature},
}

// KindOf returns the kind of the first known error in err's chain
func KindOf(err error) ErrorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

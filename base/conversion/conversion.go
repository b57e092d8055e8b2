// Package conversion turns USD cent prices into native token smallest units
// using an oracle quote, with fixed-point arithmetic only.
package conversion

import (
	"math"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/x-xyz/listingapi/domain"
)

const (
	// CentsPerDollar scales the listing price
	CentsPerDollar = 100
	// WidthBits bounds every intermediate value
	WidthBits = 128
	// LamportsPerToken is the smallest unit count of a 9 decimals token
	LamportsPerToken uint64 = 1_000_000_000
)

var (
	big10          = big.NewInt(10)
	bigCentsPerUsd = big.NewInt(CentsPerDollar)
)

// Convert returns floor(priceUsdCents * 10^|exponent| * unitsPerToken / (|quotePrice| * 100)).
//
// Every intermediate is bounded to 128 bits and the result to 64 bits;
// anything outside yields domain.ErrMathOverflow. A zero quote price yields
// domain.ErrDivisionByZero which is also an ErrMathOverflow.
func Convert(priceUsdCents uint64, quotePrice int64, exponent int32, unitsPerToken uint64) (uint64, error) {
	return ConvertMagnitude(priceUsdCents, PriceMagnitude(quotePrice), ExponentMagnitude(exponent), unitsPerToken)
}

// ConvertQuote converts with the price and exponent of q
func ConvertQuote(priceUsdCents uint64, q *domain.PriceQuote, unitsPerToken uint64) (uint64, error) {
	return Convert(priceUsdCents, q.Price, q.Expo, unitsPerToken)
}

// ConvertMagnitude is Convert on already unsigned inputs
func ConvertMagnitude(priceUsdCents uint64, priceMagnitude *big.Int, exponentMagnitude uint32, unitsPerToken uint64) (uint64, error) {
	scale, err := pow10(exponentMagnitude)
	if err != nil {
		return 0, err
	}

	numerator, err := mul(new(big.Int).SetUint64(priceUsdCents), scale)
	if err != nil {
		return 0, err
	}
	if numerator, err = mul(numerator, new(big.Int).SetUint64(unitsPerToken)); err != nil {
		return 0, err
	}

	if err := bounded(priceMagnitude); err != nil {
		return 0, err
	}
	denominator, err := mul(priceMagnitude, bigCentsPerUsd)
	if err != nil {
		return 0, err
	}
	if denominator.Sign() == 0 {
		return 0, domain.ErrDivisionByZero
	}

	amount := new(big.Int).Quo(numerator, denominator)
	if !amount.IsUint64() {
		return 0, xerrors.Errorf("amount %s exceeds u64: %w", amount, domain.ErrMathOverflow)
	}
	return amount.Uint64(), nil
}

// PriceMagnitude is |price|, math.MinInt64 included
func PriceMagnitude(price int64) *big.Int {
	return new(big.Int).Abs(big.NewInt(price))
}

// ExponentMagnitude is |exponent|, math.MinInt32 included
func ExponentMagnitude(exponent int32) uint32 {
	if exponent == math.MinInt32 {
		return uint32(math.MaxInt32) + 1
	}
	if exponent < 0 {
		return uint32(-exponent)
	}
	return uint32(exponent)
}

func bounded(v *big.Int) error {
	if v.Sign() < 0 || v.BitLen() > WidthBits {
		return xerrors.Errorf("%s does not fit %d bits: %w", v, WidthBits, domain.ErrMathOverflow)
	}
	return nil
}

func mul(a, b *big.Int) (*big.Int, error) {
	res := new(big.Int).Mul(a, b)
	if err := bounded(res); err != nil {
		return nil, err
	}
	return res, nil
}

// pow10 stops as soon as the power leaves 128 bits, so huge exponents cost
// at most 39 multiplications.
func pow10(exp uint32) (*big.Int, error) {
	res := big.NewInt(1)
	for i := uint32(0); i < exp; i++ {
		var err error
		if res, err = mul(res, big10); err != nil {
			return nil, xerrors.Errorf("10^%d: %w", exp, err)
		}
	}
	return res, nil
}

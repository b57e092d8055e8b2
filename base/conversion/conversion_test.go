package conversion

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingapi/domain"
)

type conversionSuite struct {
	suite.Suite
}

func TestConversionSuite(t *testing.T) {
	suite.Run(t, new(conversionSuite))
}

func (s *conversionSuite) TestConvert() {
	tests := []struct {
		desc     string
		cents    uint64
		price    int64
		expo     int32
		units    uint64
		expected uint64
	}{
		{
			desc:     "one dollar at 150 usd per token",
			cents:    100,
			price:    15000000000,
			expo:     -8,
			units:    LamportsPerToken,
			expected: 6_666_666,
		},
		{
			desc:     "negative price uses magnitude",
			cents:    100,
			price:    -15000000000,
			expo:     8,
			units:    LamportsPerToken,
			expected: 6_666_666,
		},
		{
			desc:     "whole token",
			cents:    15000,
			price:    15000000000,
			expo:     -8,
			units:    LamportsPerToken,
			expected: LamportsPerToken,
		},
		{
			desc:     "floors toward zero",
			cents:    1,
			price:    3,
			expo:     0,
			units:    1,
			expected: 0,
		},
		{
			desc:     "zero cents",
			cents:    0,
			price:    15000000000,
			expo:     -8,
			units:    LamportsPerToken,
			expected: 0,
		},
		{
			desc:     "largest exponent that fits",
			cents:    1,
			price:    math.MaxInt64,
			expo:     -38,
			units:    1,
			expected: 108420217248550443,
		},
	}
	for _, t := range tests {
		amount, err := Convert(t.cents, t.price, t.expo, t.units)
		s.NoError(err, t.desc)
		s.Equal(t.expected, amount, t.desc)
	}
}

func (s *conversionSuite) TestFormula() {
	for _, cents := range []uint64{1, 99, 100, 12345, 1_000_000} {
		for _, price := range []int64{1, 7, 15000000000, 6_543_210_987} {
			for _, expo := range []int32{-10, -8, -2, 0} {
				amount, err := Convert(cents, price, expo, LamportsPerToken)
				s.Require().NoError(err)

				num := new(big.Int).SetUint64(cents)
				num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-expo)), nil))
				num.Mul(num, new(big.Int).SetUint64(LamportsPerToken))
				den := new(big.Int).Mul(big.NewInt(price), big.NewInt(100))
				s.Equal(new(big.Int).Quo(num, den).Uint64(), amount)

				again, _ := Convert(cents, price, expo, LamportsPerToken)
				s.Equal(amount, again, "deterministic")
			}
		}
	}
}

func (s *conversionSuite) TestZeroPrice() {
	amount, err := Convert(100, 0, -8, LamportsPerToken)
	s.Zero(amount)
	s.True(errors.Is(err, domain.ErrDivisionByZero))
	s.True(errors.Is(err, domain.ErrMathOverflow))
}

func (s *conversionSuite) TestOverflow() {
	tests := []struct {
		desc  string
		cents uint64
		price int64
		expo  int32
		units uint64
	}{
		{
			desc:  "numerator exceeds 128 bits",
			cents: math.MaxUint64,
			price: 1,
			expo:  -38,
			units: LamportsPerToken,
		},
		{
			desc:  "scale exceeds 128 bits",
			cents: 1,
			price: 1,
			expo:  -39,
			units: 1,
		},
		{
			desc:  "huge exponent",
			cents: 1,
			price: 1,
			expo:  math.MinInt32,
			units: 1,
		},
		{
			desc:  "result exceeds u64",
			cents: math.MaxUint64,
			price: 1,
			expo:  0,
			units: LamportsPerToken,
		},
	}
	for _, t := range tests {
		amount, err := Convert(t.cents, t.price, t.expo, t.units)
		s.Zero(amount, t.desc)
		s.True(errors.Is(err, domain.ErrMathOverflow), t.desc)
		s.Equal(domain.KindMathOverflow, domain.KindOf(err), t.desc)
	}
}

func (s *conversionSuite) TestMagnitude() {
	s.Equal("9223372036854775808", PriceMagnitude(math.MinInt64).String())
	s.Equal("42", PriceMagnitude(-42).String())
	s.Equal(uint32(8), ExponentMagnitude(-8))
	s.Equal(uint32(8), ExponentMagnitude(8))
	s.Equal(uint32(2147483648), ExponentMagnitude(math.MinInt32))
}

func (s *conversionSuite) TestConvertQuote() {
	amount, err := ConvertQuote(100, &domain.PriceQuote{Price: 15000000000, Expo: -8}, LamportsPerToken)
	s.NoError(err)
	s.Equal(uint64(6_666_666), amount)
}

package priceformatter

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/listingapi/base/conversion"
	"github.com/x-xyz/listingapi/domain"
)

type PriceFormatterCfg struct {
	// UnitsPerToken is the number of smallest units in one native token
	UnitsPerToken uint64
}

type impl struct {
	units decimal.Decimal
	// places is the fixed number of decimals for native amounts, -1 when
	// UnitsPerToken is not a power of ten
	places int32
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	units := cfg.UnitsPerToken
	if units == 0 {
		units = conversion.LamportsPerToken
	}
	return &impl{
		units:  decimal.NewFromBigInt(new(big.Int).SetUint64(units), 0),
		places: decimalPlaces(units),
	}
}

func decimalPlaces(units uint64) int32 {
	places := int32(0)
	for units > 1 {
		if units%10 != 0 {
			return -1
		}
		units /= 10
		places++
	}
	return places
}

func (f *impl) FormatUsd(cents uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(cents), -2)
}

func (f *impl) FormatNative(amount uint64) decimal.Decimal {
	v := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	if f.places >= 0 {
		return decimal.NewFromBigInt(v.BigInt(), -f.places)
	}
	return v.Div(f.units)
}

func (f *impl) GetDisplayPrices(cents, amount uint64, quote *domain.PriceQuote) DisplayPrices {
	native := f.FormatNative(amount)
	nativeStr := native.String()
	if f.places >= 0 {
		nativeStr = native.StringFixed(f.places)
	}
	res := DisplayPrices{
		PriceUsd:     f.FormatUsd(cents).StringFixed(2),
		PriceInToken: nativeStr,
	}
	if quote != nil {
		res.QuotePrice = quote.DisplayPrice().String()
		res.QuoteConf = quote.DisplayConf().String()
	}
	return res
}

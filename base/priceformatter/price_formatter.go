package priceformatter

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/listingapi/domain"
)

// DisplayPrices is the human readable form of a quoted purchase
type DisplayPrices struct {
	PriceUsd     string `json:"priceUsd"`
	PriceInToken string `json:"priceInToken"`
	QuotePrice   string `json:"quotePrice"`
	QuoteConf    string `json:"quoteConf"`
}

type PriceFormatter interface {
	FormatUsd(cents uint64) decimal.Decimal
	FormatNative(amount uint64) decimal.Decimal
	GetDisplayPrices(cents, amount uint64, quote *domain.PriceQuote) DisplayPrices
}

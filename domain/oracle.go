package domain

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/listingapi/base/ctx"
)

// PriceQuote is a USD price of the native token reported by the oracle,
// worth Price * 10^Expo USD.
type PriceQuote struct {
	FeedId      string `json:"feedId"`
	Price       int64  `json:"price"`
	Conf        uint64 `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publishTime"` // unix seconds
}

// AgeSeconds is how old the quote is at now (unix seconds), negative when
// published in the future.
func (q *PriceQuote) AgeSeconds(now int64) int64 {
	return now - q.PublishTime
}

// DisplayPrice returns the quote as a decimal USD price
func (q *PriceQuote) DisplayPrice() decimal.Decimal {
	return decimal.New(q.Price, q.Expo)
}

// DisplayConf returns the confidence interval as a decimal USD amount
func (q *PriceQuote) DisplayConf() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(q.Conf), q.Expo)
}

type OracleUsecase interface {
	// GetLatestQuote returns the configured feed's latest quote regardless of its age
	GetLatestQuote(c ctx.Ctx) (*PriceQuote, error)
	// GetFreshQuote returns the configured feed's latest quote, rejecting it
	// with ErrStalePrice when older than the max age at now (unix seconds)
	GetFreshQuote(c ctx.Ctx, now int64) (*PriceQuote, error)
}

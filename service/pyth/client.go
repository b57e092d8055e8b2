package pyth

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

const (
	// DefaultEndpoint is the public Hermes price service
	DefaultEndpoint = "https://hermes.pyth.network"
	// FeedSolUsd is the SOL/USD price feed
	FeedSolUsd = "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type Client interface {
	// GetLatestQuote returns the latest published quote of feedId
	GetLatestQuote(ctx bCtx.Ctx, feedId string) (*domain.PriceQuote, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Endpoint   string
}

// LatestPriceUpdates is the body of /v2/updates/price/latest
type LatestPriceUpdates struct {
	Parsed []PriceUpdate `json:"parsed"`
}

type PriceUpdate struct {
	Id    string `json:"id"`
	Price Price  `json:"price"`
}

// Price carries int64 values as decimal strings
type Price struct {
	Price       string `json:"price"`
	Conf        string `json:"conf"`
	Expo        int32  `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}

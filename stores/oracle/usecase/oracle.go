package usecase

import (
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/service/cache"
	"github.com/x-xyz/listingapi/service/pyth"
)

// DefaultMaxAge is the default staleness bound of a quote in seconds
const DefaultMaxAge int64 = 30

type OracleUseCaseCfg struct {
	Client pyth.Client
	FeedId string
	// MaxAge is the oldest quote accepted by GetFreshQuote, in seconds
	MaxAge int64
	// Cache is optional, quotes are fetched on every call without it
	Cache cache.Service
}

type impl struct {
	client pyth.Client
	feedId string
	maxAge int64
	cache  cache.Service
}

func New(cfg *OracleUseCaseCfg) domain.OracleUsecase {
	feedId := cfg.FeedId
	if feedId == "" {
		feedId = pyth.FeedSolUsd
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &impl{
		client: cfg.Client,
		feedId: "0x" + pyth.NormalizeFeedId(feedId),
		maxAge: maxAge,
		cache:  cfg.Cache,
	}
}

func (im *impl) GetLatestQuote(c ctx.Ctx) (*domain.PriceQuote, error) {
	getter := func() (interface{}, error) {
		return im.client.GetLatestQuote(c, im.feedId)
	}

	if im.cache == nil {
		quote, err := im.client.GetLatestQuote(c, im.feedId)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "feedId": im.feedId}).Error("client.GetLatestQuote failed")
			return nil, err
		}
		return quote, nil
	}

	quote := &domain.PriceQuote{}
	if err := im.cache.GetByFunc(c, im.feedId, quote, getter); err != nil {
		c.WithFields(log.Fields{"err": err, "feedId": im.feedId}).Error("cache.GetByFunc failed")
		return nil, err
	}
	return quote, nil
}

func (im *impl) GetFreshQuote(c ctx.Ctx, now int64) (*domain.PriceQuote, error) {
	quote, err := im.GetLatestQuote(c)
	if err != nil {
		return nil, err
	}

	if pyth.NormalizeFeedId(quote.FeedId) != pyth.NormalizeFeedId(im.feedId) {
		c.WithFields(log.Fields{"want": im.feedId, "got": quote.FeedId}).Error("unexpected price feed")
		return nil, domain.ErrInvalidPriceFeed
	}

	if age := quote.AgeSeconds(now); age > im.maxAge {
		c.WithFields(log.Fields{
			"publishTime": quote.PublishTime,
			"now":         now,
			"age":         age,
			"maxAge":      im.maxAge,
		}).Warn("stale price")
		return nil, domain.ErrStalePrice
	}

	return quote, nil
}

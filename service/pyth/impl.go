package pyth

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
)

const defaultTimeout = 10 * time.Second

func NewClient(cfg *ClientCfg) Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		client:   cfg.HttpClient,
		timeout:  timeout,
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

type client struct {
	client   http.Client
	timeout  time.Duration
	endpoint string
}

// NormalizeFeedId lower cases id and drops the 0x prefix, the form Hermes answers with
func NormalizeFeedId(id string) string {
	return strings.TrimPrefix(strings.ToLower(id), "0x")
}

func (c *client) GetLatestQuote(ctx bCtx.Ctx, feedId string) (*domain.PriceQuote, error) {
	params := url.Values{
		"ids[]":  {feedId},
		"parsed": {"true"},
	}
	url := fmt.Sprintf("%s/v2/updates/price/latest?%s", c.endpoint, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}

	resp := &LatestPriceUpdates{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("malformed price update: %w", domain.ErrInvalidPriceFeed)
	}
	if len(resp.Parsed) != 1 {
		ctx.WithField("len", len(resp.Parsed)).Error("len(parsed) != 1")
		return nil, xerrors.Errorf("got %d price updates: %w", len(resp.Parsed), domain.ErrInvalidPriceFeed)
	}

	update := resp.Parsed[0]
	if NormalizeFeedId(update.Id) != NormalizeFeedId(feedId) {
		ctx.WithFields(log.Fields{"want": feedId, "got": update.Id}).Error("feed id mismatch")
		return nil, xerrors.Errorf("got feed %s: %w", update.Id, domain.ErrInvalidPriceFeed)
	}

	price, err := strconv.ParseInt(update.Price.Price, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "price": update.Price.Price}).Error("strconv.ParseInt failed")
		return nil, xerrors.Errorf("price %q: %w", update.Price.Price, domain.ErrInvalidPriceFeed)
	}
	conf, err := strconv.ParseUint(update.Price.Conf, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "conf": update.Price.Conf}).Error("strconv.ParseUint failed")
		return nil, xerrors.Errorf("conf %q: %w", update.Price.Conf, domain.ErrInvalidPriceFeed)
	}

	return &domain.PriceQuote{
		FeedId:      "0x" + NormalizeFeedId(update.Id),
		Price:       price,
		Conf:        conf,
		Expo:        update.Price.Expo,
		PublishTime: update.Price.PublishTime,
	}, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

package pyth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

const solUsdBody = `{
  "binary": {"encoding": "hex", "data": ["504e4155"]},
  "parsed": [
    {
      "id": "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d",
      "price": {"price": "15000000000", "conf": "7512345", "expo": -8, "publish_time": 1700000000},
      "ema_price": {"price": "14990000000", "conf": "7000000", "expo": -8, "publish_time": 1700000000},
      "metadata": {"slot": 1, "proof_available_time": 1700000001, "prev_publish_time": 1699999999}
    }
  ]
}`

var mockCtx = bCtx.Background()

type pythSuite struct {
	suite.Suite
	body   string
	status int
	query  string
	server *httptest.Server
	client Client
}

func TestPythSuite(t *testing.T) {
	suite.Run(t, new(pythSuite))
}

func (s *pythSuite) SetupTest() {
	s.body = solUsdBody
	s.status = http.StatusOK
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v2/updates/price/latest", r.URL.Path)
		s.query = r.URL.Query().Get("ids[]")
		w.WriteHeader(s.status)
		w.Write([]byte(s.body))
	}))
	s.client = NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Endpoint:   s.server.URL + "/",
	})
}

func (s *pythSuite) TearDownTest() {
	s.server.Close()
}

func (s *pythSuite) TestGetLatestQuote() {
	quote, err := s.client.GetLatestQuote(mockCtx, FeedSolUsd)
	s.Require().NoError(err)
	s.Equal(FeedSolUsd, s.query)
	s.Equal(&domain.PriceQuote{
		FeedId:      FeedSolUsd,
		Price:       15000000000,
		Conf:        7512345,
		Expo:        -8,
		PublishTime: 1700000000,
	}, quote)
}

func (s *pythSuite) TestFeedMismatch() {
	_, err := s.client.GetLatestQuote(mockCtx, "0xe62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43")
	s.True(errors.Is(err, domain.ErrInvalidPriceFeed))
}

func (s *pythSuite) TestMalformed() {
	tests := []struct {
		desc string
		body string
	}{
		{desc: "not json", body: `<html>`},
		{desc: "no update", body: `{"parsed": []}`},
		{desc: "bad price", body: `{"parsed": [{"id": "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d", "price": {"price": "1.5", "conf": "1", "expo": -8, "publish_time": 1}}]}`},
		{desc: "negative conf", body: `{"parsed": [{"id": "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d", "price": {"price": "15", "conf": "-1", "expo": -8, "publish_time": 1}}]}`},
	}
	for _, t := range tests {
		s.body = t.body
		_, err := s.client.GetLatestQuote(mockCtx, FeedSolUsd)
		s.True(errors.Is(err, domain.ErrInvalidPriceFeed), t.desc)
	}
}

func (s *pythSuite) TestStatusNotOk() {
	s.status = http.StatusServiceUnavailable
	_, err := s.client.GetLatestQuote(mockCtx, FeedSolUsd)
	s.Equal(ErrStatusCodeNotOk, err)
}

func (s *pythSuite) TestNormalizeFeedId() {
	s.Equal("ef0d", NormalizeFeedId("0xEF0D"))
	s.Equal("ef0d", NormalizeFeedId("ef0d"))
}

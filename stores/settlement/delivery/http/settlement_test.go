package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/base/priceformatter"
	"github.com/x-xyz/listingapi/base/validator"
	"github.com/x-xyz/listingapi/domain"
	domainmocks "github.com/x-xyz/listingapi/domain/mocks"
	"github.com/x-xyz/listingapi/domain/settlement"
	"github.com/x-xyz/listingapi/domain/settlement/mocks"
	authMiddleware "github.com/x-xyz/listingapi/stores/auth/delivery/http/middleware"
)

const (
	seller = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	buyer  = domain.Address("0x8ba1f109551bd432803012645ac136ddd64dba72")
)

var quote = &domain.PriceQuote{Price: 15_000_000_000, Conf: 7_500_000, Expo: -8, PublishTime: 1_700_000_000}

type settlementHandlerSuite struct {
	suite.Suite
	e          *echo.Echo
	settlement *mocks.Usecase
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(settlementHandlerSuite))
}

func (s *settlementHandlerSuite) SetupTest() {
	s.e = echo.New()
	v, err := validator.New()
	s.Require().NoError(err)
	s.e.Validator = validator.NewCustomValidator(v)
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})

	s.settlement = &mocks.Usecase{}
	auth := &domainmocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "buyer-token").Return(string(buyer), nil).Maybe()
	formatter := priceformatter.NewPriceFormatter(&priceformatter.PriceFormatterCfg{UnitsPerToken: 1_000_000_000})
	New(s.e, s.settlement, formatter, authMiddleware.New(auth, nil))
}

func (s *settlementHandlerSuite) TearDownTest() {
	s.settlement.AssertExpectations(s.T())
}

func (s *settlementHandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer buyer-token")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *settlementHandlerSuite) TestPurchase() {
	params := settlement.PurchaseParams{Buyer: buyer, Seller: seller, Name: "coffee", Nonce: "order-1"}
	s.settlement.On("Purchase", mock.Anything, params).Return(&settlement.PurchaseResult{
		ReceiptId:  "0x01",
		ListingId:  "0x02",
		PriceUsd:   100,
		AmountPaid: 6_666_666,
		Timestamp:  1_700_000_010,
		Quote:      quote,
	}, nil).Once()

	rec := s.do(http.MethodPost, "/purchases", `{"seller":"`+string(seller)+`","name":"coffee","nonce":"order-1"}`)
	s.Equal(http.StatusOK, rec.Code)

	resp := struct {
		Data struct {
			ReceiptId  string                       `json:"receiptId"`
			AmountPaid uint64                       `json:"amountPaid"`
			Display    priceformatter.DisplayPrices `json:"display"`
		} `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("0x01", resp.Data.ReceiptId)
	s.Equal(uint64(6_666_666), resp.Data.AmountPaid)
	s.Equal("1.00", resp.Data.Display.PriceUsd)
	s.Equal("0.006666666", resp.Data.Display.PriceInToken)
	s.Equal("150", resp.Data.Display.QuotePrice)
}

func (s *settlementHandlerSuite) TestPurchaseErrors() {
	cases := []struct {
		err    error
		status int
		kind   domain.ErrorKind
	}{
		{domain.ErrInsufficientFunds, http.StatusPaymentRequired, domain.KindInsufficientFunds},
		{domain.ErrReceiptExists, http.StatusConflict, domain.KindReceiptExists},
		{domain.ErrListingClosed, http.StatusConflict, domain.KindListingClosed},
		{domain.ErrStalePrice, http.StatusServiceUnavailable, domain.KindStalePrice},
	}
	for _, tc := range cases {
		s.settlement.On("Purchase", mock.Anything, mock.Anything).Return(nil, tc.err).Once()
		rec := s.do(http.MethodPost, "/purchases", `{"seller":"`+string(seller)+`","name":"coffee"}`)
		s.Equal(tc.status, rec.Code, tc.err.Error())

		resp := struct {
			Data delivery.ErrorBody `json:"data"`
		}{}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(tc.kind, resp.Data.Kind)
	}
}

func (s *settlementHandlerSuite) TestPurchaseRejectsPayload() {
	rec := s.do(http.MethodPost, "/purchases", `{"seller":"bob","name":"coffee"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/purchases", `{"seller":"`+string(seller)+`","name":"coffee","nonce":"`+strings.Repeat("n", 65)+`"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.settlement.AssertNotCalled(s.T(), "Purchase", mock.Anything, mock.Anything)
}

func (s *settlementHandlerSuite) TestQuote() {
	s.settlement.On("Preview", mock.Anything, seller, "iced coffee").Return(&settlement.Preview{
		ListingId: "0x02",
		PriceUsd:  250,
		Amount:    16_666_666,
		Quote:     quote,
	}, nil).Once()

	rec := s.do(http.MethodGet, "/purchases/quote/"+string(seller)+"/iced%20coffee", "")
	s.Equal(http.StatusOK, rec.Code)

	resp := struct {
		Data struct {
			Amount  uint64                       `json:"amount"`
			Display priceformatter.DisplayPrices `json:"display"`
		} `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(uint64(16_666_666), resp.Data.Amount)
	s.Equal("2.50", resp.Data.Display.PriceUsd)
	s.Equal("0.016666666", resp.Data.Display.PriceInToken)
}

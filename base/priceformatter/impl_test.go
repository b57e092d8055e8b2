package priceformatter

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingapi/domain"
)

type PriceFormatterTestSuite struct {
	suite.Suite
	f PriceFormatter
}

func TestPriceFormatterTestSuite(t *testing.T) {
	suite.Run(t, new(PriceFormatterTestSuite))
}

func (s *PriceFormatterTestSuite) SetupTest() {
	s.f = NewPriceFormatter(&PriceFormatterCfg{UnitsPerToken: 1_000_000_000})
}

func (s *PriceFormatterTestSuite) TestFormatUsd() {
	s.Equal("1.00", s.f.FormatUsd(100).StringFixed(2))
	s.Equal("0.05", s.f.FormatUsd(5).String())
	s.Equal("184467440737095516.15", s.f.FormatUsd(^uint64(0)).String())
}

func (s *PriceFormatterTestSuite) TestFormatNative() {
	s.Equal("0.006666666", s.f.FormatNative(6_666_666).String())
	s.Equal("1", s.f.FormatNative(1_000_000_000).String())
}

func (s *PriceFormatterTestSuite) TestGetDisplayPrices() {
	quote := &domain.PriceQuote{Price: 15_000_000_000, Conf: 7_500_000, Expo: -8}
	s.Equal(DisplayPrices{
		PriceUsd:     "1.00",
		PriceInToken: "0.006666666",
		QuotePrice:   "150",
		QuoteConf:    "0.075",
	}, s.f.GetDisplayPrices(100, 6_666_666, quote))

	s.Equal(DisplayPrices{
		PriceUsd:     "0.10",
		PriceInToken: "1.000000000",
	}, s.f.GetDisplayPrices(10, 1_000_000_000, nil))
}

func (s *PriceFormatterTestSuite) TestNonDecimalUnits() {
	f := NewPriceFormatter(&PriceFormatterCfg{UnitsPerToken: 3})
	s.Equal("2", f.FormatNative(6).String())
}

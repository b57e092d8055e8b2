package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/middleware"
)

type handler struct {
	oracle domain.OracleUsecase
}

type priceResp struct {
	Quote        *domain.PriceQuote `json:"quote"`
	DisplayPrice string             `json:"displayPrice"`
	DisplayConf  string             `json:"displayConf"`
	AgeSeconds   int64              `json:"ageSeconds"`
}

func New(e *echo.Echo, oracle domain.OracleUsecase) {
	h := &handler{oracle: oracle}
	g := e.Group("/oracle")
	g.GET("/price", h.getPrice, middleware.CacheHttp(2*time.Second))
}

// getPrice
//
//	@Summary		Get native token price
//	@Tags			oracle
//	@Produce		json
//	@Success		200	{object}	object{data=http.priceResp}
//	@Failure		500
//	@Router			/oracle/price [get]
func (h *handler) getPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	quote, err := h.oracle.GetLatestQuote(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("oracle.GetLatestQuote failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, priceResp{
		Quote:        quote,
		DisplayPrice: quote.DisplayPrice().String(),
		DisplayConf:  quote.DisplayConf().String(),
		AgeSeconds:   quote.AgeSeconds(time.Now().Unix()),
	})
}

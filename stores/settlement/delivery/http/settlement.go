package http

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/base/priceformatter"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/settlement"
	"github.com/x-xyz/listingapi/middleware"
	authMiddleware "github.com/x-xyz/listingapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	settlement settlement.Usecase
	formatter  priceformatter.PriceFormatter
}

func New(e *echo.Echo, su settlement.Usecase, formatter priceformatter.PriceFormatter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		settlement: su,
		formatter:  formatter,
	}
	g := e.Group("/purchases")
	g.POST("", h.purchase, authMiddleware.Auth())
	g.GET("/quote/:owner/:name", h.quote, middleware.IsValidAddress("owner"))
}

type purchaseResponse struct {
	*settlement.PurchaseResult
	Display priceformatter.DisplayPrices `json:"display"`
}

// purchase
//
//	@Summary		Purchase listing
//	@Description	Pay the listing's USD price in native token at the current oracle price.
//	@Description	A nonce lets one buyer purchase the same listing more than once.
//	@Tags			purchases
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		http.purchase.payload	true	"payload"
//	@Success		200		{object}	object{data=http.purchaseResponse}
//	@Failure		400
//	@Failure		402
//	@Failure		404
//	@Failure		409
//	@Failure		422
//	@Failure		503
//	@Router			/purchases [post]
func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type payload struct {
		Seller domain.Address `json:"seller" validate:"required,address"`
		Name   string         `json:"name" validate:"required"`
		Nonce  string         `json:"nonce" validate:"maxbytes=64"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.settlement.Purchase(ctx, settlement.PurchaseParams{
		Buyer:  address,
		Seller: p.Seller,
		Name:   p.Name,
		Nonce:  p.Nonce,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, purchaseResponse{
		PurchaseResult: res,
		Display:        h.formatter.GetDisplayPrices(res.PriceUsd, res.AmountPaid, res.Quote),
	})
}

type quoteResponse struct {
	*settlement.Preview
	Display priceformatter.DisplayPrices `json:"display"`
}

// quote
//
//	@Summary		Quote listing
//	@Description	What a purchase of the listing would cost right now
//	@Tags			purchases
//	@Produce		json
//	@Param			owner	path		string	true	"owner address"
//	@Param			name	path		string	true	"listing name"
//	@Success		200		{object}	object{data=http.quoteResponse}
//	@Failure		404
//	@Failure		409
//	@Failure		503
//	@Router			/purchases/quote/{owner}/{name} [get]
func (h *handler) quote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("owner"))

	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		name = unescaped
	}

	res, err := h.settlement.Preview(ctx, owner, name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, quoteResponse{
		Preview: res,
		Display: h.formatter.GetDisplayPrices(res.PriceUsd, res.Amount, res.Quote),
	})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/middleware"
	authMiddleware "github.com/x-xyz/listingapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	balance balance.Usecase
}

func New(e *echo.Echo, bu balance.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{balance: bu}
	g := e.Group("/balances")
	g.GET("/:address", h.get, middleware.IsValidAddress("address"))
	g.POST("/:address/deposit", h.deposit, middleware.IsValidAddress("address"), authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// get
//
//	@Summary		Get balance
//	@Tags			balances
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	object{data=balance.Account}
//	@Failure		404
//	@Router			/balances/{address} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.balance.Get(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// deposit
//
//	@Summary		Deposit
//	@Description	Credit an account in smallest native units, admin only
//	@Tags			balances
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string					true	"account address"
//	@Param			payload	body		http.deposit.payload	true	"payload"
//	@Success		200		{object}	object{data=balance.Account}
//	@Failure		400
//	@Failure		403
//	@Failure		422
//	@Router			/balances/{address}/deposit [post]
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Amount uint64 `json:"amount" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.balance.Deposit(ctx, domain.Address(c.Param("address")), p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

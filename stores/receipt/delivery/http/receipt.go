package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/receipt"
)

type handler struct {
	receipt receipt.Usecase
}

func New(e *echo.Echo, ru receipt.Usecase) {
	h := &handler{receipt: ru}
	g := e.Group("/receipts")
	g.GET("", h.findByBuyer)
	g.GET("/:id", h.get)
}

// get
//
//	@Summary		Get receipt
//	@Tags			receipts
//	@Produce		json
//	@Param			id	path		string	true	"receipt id"
//	@Success		200	{object}	object{data=receipt.Receipt}
//	@Failure		404
//	@Router			/receipts/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.receipt.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// findByBuyer
//
//	@Summary		List receipts of buyer
//	@Tags			receipts
//	@Produce		json
//	@Param			buyer	query		string	true	"buyer address"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]receipt.Receipt}
//	@Failure		400
//	@Router			/receipts [get]
func (h *handler) findByBuyer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Buyer  string `query:"buyer" validate:"required,address"`
		Offset int64  `query:"offset" validate:"gte=0"`
		Limit  int64  `query:"limit" validate:"gte=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.receipt.FindByBuyer(ctx, domain.Address(p.Buyer), domain.NewPagination(p.Offset, p.Limit))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

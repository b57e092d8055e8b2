package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/delivery"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/event"
	"github.com/x-xyz/listingapi/domain/keys"
	"github.com/x-xyz/listingapi/domain/listing"
	"github.com/x-xyz/listingapi/middleware"
	authMiddleware "github.com/x-xyz/listingapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
	event   event.Usecase
}

func New(e *echo.Echo, lu listing.Usecase, eu event.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: lu,
		event:   eu,
	}
	g := e.Group("/listings")
	g.GET("", h.findAll)
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("/:owner/:name", h.get, middleware.IsValidAddress("owner"))
	g.GET("/:owner/:name/events", h.getEvents, middleware.IsValidAddress("owner"))
	g.PATCH("/:owner/:name", h.update, middleware.IsValidAddress("owner"), authMiddleware.Auth())
	g.POST("/:owner/:name/deactivate", h.deactivate, middleware.IsValidAddress("owner"), authMiddleware.Auth())
}

// nameParam is the unescaped listing name, names may hold any UTF-8.
// The router hands over the escaped form only when the request path needed it.
func nameParam(c echo.Context) (string, error) {
	raw := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return raw, nil
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	return name, nil
}

// create
//
//	@Summary		Create listing
//	@Description	Create a listing owned by the caller, its name is unique per owner
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		http.create.payload	true	"payload"
//	@Success		201		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		409
//	@Failure		422
//	@Router			/listings [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type payload struct {
		Treasury domain.Address `json:"treasury" validate:"required,address"`
		Name     string         `json:"name" validate:"required"`
		ImageUrl string         `json:"imageUrl"`
		PriceUsd uint64         `json:"priceUsd"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.Create(ctx, listing.CreateParams{
		Owner:    address,
		Treasury: p.Treasury,
		Name:     p.Name,
		ImageUrl: p.ImageUrl,
		PriceUsd: p.PriceUsd,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

// update
//
//	@Summary		Update listing
//	@Description	Change image url or price, only the owner may
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			owner	path		string				true	"owner address"
//	@Param			name	path		string				true	"listing name"
//	@Param			payload	body		http.update.payload	true	"payload"
//	@Success		200		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/listings/{owner}/{name} [patch]
func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	name, err := nameParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		ImageUrl *string `json:"imageUrl"`
		PriceUsd *uint64 `json:"priceUsd"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	owner := domain.Address(c.Param("owner"))
	l, err := h.listing.Update(ctx, address, owner, name, listing.UpdateParams{
		ImageUrl: p.ImageUrl,
		PriceUsd: p.PriceUsd,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// deactivate
//
//	@Summary		Deactivate listing
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			owner	path		string	true	"owner address"
//	@Param			name	path		string	true	"listing name"
//	@Success		200		{object}	object{data=listing.Listing}
//	@Failure		403
//	@Failure		404
//	@Router			/listings/{owner}/{name}/deactivate [post]
func (h *handler) deactivate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	name, err := nameParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.Deactivate(ctx, address, domain.Address(c.Param("owner")), name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// get
//
//	@Summary		Get listing
//	@Tags			listings
//	@Produce		json
//	@Param			owner	path		string	true	"owner address"	example(0x71c7656ec7ab88b098defb751b7401b5f6d8976f)
//	@Param			name	path		string	true	"listing name"
//	@Success		200		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		404
//	@Router			/listings/{owner}/{name} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name, err := nameParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.Get(ctx, domain.Address(c.Param("owner")), name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// findAll
//
//	@Summary		List listings
//	@Tags			listings
//	@Produce		json
//	@Param			owner	query		string	false	"owner address"
//	@Param			active	query		bool	false	"active only or inactive only"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]listing.Listing}
//	@Failure		400
//	@Router			/listings [get]
func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  string `query:"owner" validate:"omitempty,address"`
		Active string `query:"active" validate:"omitempty,oneof=true false"`
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

	opts := []listing.FindAllOptions{listing.WithPagination(p.Offset, p.Limit)}
	if p.Owner != "" {
		opts = append(opts, listing.WithOwner(domain.Address(p.Owner)))
	}
	if p.Active != "" {
		active, _ := strconv.ParseBool(p.Active)
		opts = append(opts, listing.WithActive(active))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getEvents
//
//	@Summary		List listing events
//	@Description	Events of a listing, oldest first
//	@Tags			listings
//	@Produce		json
//	@Param			owner	path		string	true	"owner address"
//	@Param			name	path		string	true	"listing name"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]event.Event}
//	@Failure		400
//	@Router			/listings/{owner}/{name}/events [get]
func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name, err := nameParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Offset int64 `query:"offset" validate:"gte=0"`
		Limit  int64 `query:"limit" validate:"gte=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := keys.ListingId(domain.Address(c.Param("owner")), name)
	res, err := h.event.FindByListing(ctx, id, domain.NewPagination(p.Offset, p.Limit))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/delivery"
	"github.com/x-xyz/listingpage/domain/listingview"
	"github.com/x-xyz/listingpage/middleware"
)

type handler struct {
	listingview listingview.Usecase
}

// New registers the listing page routes. auth guards the write actions.
func New(e *echo.Echo, uc listingview.Usecase, auth echo.MiddlewareFunc) {
	h := &handler{
		listingview: uc,
	}

	validIds := middleware.IsValidUint256("nftId", "listingId")

	e.GET("/:nftId/listing/:listingId", h.get, validIds)
	e.POST("/:nftId/listing/:listingId/offer", h.createBidOrOffer, validIds, auth)
	e.POST("/:nftId/listing/:listingId/buy", h.buy, validIds, auth)
}

// navigator hands redirects to the client through the Location header, the view carries
// the same path in redirectTo
type navigator struct {
	c echo.Context
}

func (n navigator) Redirect(path string) {
	n.c.Response().Header().Set(echo.HeaderLocation, path)
}

type actionPayload struct {
	BidAmount *string `json:"bidAmount"`
	BuyAmount *string `json:"buyAmount"`
}

var binder = &echo.DefaultBinder{}

// bindRoute reads only the path, a body can not override the route ids
func bindRoute(c echo.Context) (listingview.RouteParams, error) {
	p := listingview.RouteParams{}
	if err := binder.BindPathParams(c, &p); err != nil {
		return p, err
	}
	return p, c.Validate(&p)
}

func (h *handler) open(c echo.Context, p listingview.RouteParams) (listingview.Page, listingview.View) {
	ctx := c.Get("ctx").(ctx.Ctx)
	page := h.listingview.Open(ctx, p, navigator{c})
	return page, page.Load(ctx)
}

func (h *handler) get(c echo.Context) error {
	p, err := bindRoute(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	_, view := h.open(c, p)
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func bindAction(c echo.Context) (listingview.RouteParams, *actionPayload, error) {
	route, err := bindRoute(c)
	if err != nil {
		return route, nil, err
	}
	p := &actionPayload{}
	if err := binder.BindBody(c, p); err != nil {
		c.Get("ctx").(ctx.Ctx).WithField("err", err).Error("bind failed")
		return route, nil, err
	}
	return route, p, nil
}

func (h *handler) createBidOrOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	route, p, err := bindAction(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, view := h.open(c, route)
	if view.State != listingview.ViewStateReady {
		return delivery.MakeJsonResp(c, http.StatusConflict, view)
	}
	if p.BidAmount != nil {
		page.SetBidAmount(*p.BidAmount)
	}
	if p.BuyAmount != nil {
		page.SetBuyAmount(*p.BuyAmount)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, page.CreateBidOrOffer(ctx))
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	route, p, err := bindAction(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, view := h.open(c, route)
	if view.State != listingview.ViewStateReady {
		return delivery.MakeJsonResp(c, http.StatusConflict, view)
	}
	if p.BuyAmount != nil {
		page.SetBuyAmount(*p.BuyAmount)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, page.BuyNft(ctx))
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/delivery"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/service/ens"
)

type handler struct {
	ens ens.ENS
}

// New exposes the seller name lookups the listing page renders
func New(e *echo.Echo, ens ens.ENS, mw ...echo.MiddlewareFunc) {
	h := &handler{
		ens: ens,
	}

	g := e.Group("/ens", mw...)

	g.GET("/resolve/:name", h.resolve)

	g.GET("/reverse-resolve/:address", h.reverseResolve)
}

type resolvePayload struct {
	Name string `param:"name" validate:"required,max=255"`
}

type reverseResolvePayload struct {
	Address string `param:"address" validate:"required,address"`
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := resolvePayload{}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address, err := h.ens.Resolve(ctx, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{"name": p.Name, "err": err}).Warn("ens.Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := reverseResolvePayload{}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, domain.Address(p.Address))
	if err != nil {
		ctx.WithFields(log.Fields{"address": p.Address, "err": err}).Warn("ens.ReverseResolve failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}

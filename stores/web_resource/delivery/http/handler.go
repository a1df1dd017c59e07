package http

import (
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/delivery"
	"github.com/x-xyz/listingpage/domain"
)

const mediaMaxAge = "public, max-age=86400"

// media kinds the proxy serves, anything else could run script on our origin
var mediaPrefixes = []string{"image/", "video/", "audio/", "model/"}

type handler struct {
	webResource domain.WebResourceUseCase
}

// New registers GET /media?src=<uri>, mw wraps the route, e.g. a response cache
func New(e *echo.Echo, webResource domain.WebResourceUseCase, mw ...echo.MiddlewareFunc) {
	h := &handler{
		webResource: webResource,
	}

	e.GET("/media", h.media, mw...)
}

func isMedia(mime string) bool {
	for _, p := range mediaPrefixes {
		if strings.HasPrefix(mime, p) {
			return true
		}
	}
	return false
}

func (h *handler) media(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Src string `query:"src" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Src == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "src is required")
	}

	data, err := h.webResource.Get(ctx, p.Src)
	if err != nil {
		ctx.WithField("err", err).WithField("src", p.Src).Error("webResource.Get failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	mtype := mimetype.Detect(data)
	if !isMedia(mtype.String()) {
		return delivery.MakeJsonResp(c, http.StatusUnsupportedMediaType, "unsupported media type "+mtype.String())
	}

	c.Response().Header().Set(echo.HeaderCacheControl, mediaMaxAge)
	c.Response().Header().Set(echo.HeaderXContentTypeOptions, "nosniff")
	return c.Blob(http.StatusOK, mtype.String(), data)
}

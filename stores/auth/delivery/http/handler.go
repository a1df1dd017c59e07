package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/delivery"
	"github.com/x-xyz/listingpage/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

// New registers token issuing behind the operator api key
func New(e *echo.Echo, auth domain.AuthUsecase, apiKey echo.MiddlewareFunc) {
	handler := &authHandler{
		auth: auth,
	}
	e.POST("/auth/sign", handler.sign, apiKey)
}

type signPayload struct {
	Subject string `json:"subject" validate:"required,max=64"`
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := signPayload{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tkn, err := h.auth.SignToken(ctx, p.Subject)
	if err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	ctx.WithField("subject", p.Subject).Info("token issued")
	return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
}

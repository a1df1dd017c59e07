package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/delivery"
	hcdomain "github.com/x-xyz/listingpage/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// check answers 503 with the per dependency report when anything is down
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		context.WithField("err", err).Warn("healthCheck.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, report)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}

package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
)

type AuthMiddleware struct {
	auth    domain.AuthUsecase
	apiKeys []string
}

// New builds the auth middlewares. apiKeys may exchange for tokens on /auth/sign.
func New(auth domain.AuthUsecase, apiKeys []string) *AuthMiddleware {
	return &AuthMiddleware{
		auth:    auth,
		apiKeys: apiKeys,
	}
}

// Auth requires a bearer token and stores its subject under "subject"
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) ApiKey() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:X-Api-Key",
		Validator: m.validateApiKey,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if sub, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("subject", sub)
		return true, nil
	}
}

func (m *AuthMiddleware) validateApiKey(key string, c echo.Context) (bool, error) {
	for _, k := range m.apiKeys {
		if k != "" && subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true, nil
		}
	}
	return false, nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/service/cache"
	"github.com/x-xyz/listingpage/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache cache.Service
	e     *echo.Echo
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.cache = cache.New(cache.ServiceConfig{
		Ttl:   30 * time.Second,
		Pfx:   "httpCacheMiddleware",
		Cache: primitive.NewPrimitive("httpCacheMiddleware", 1),
	})
	s.e = echo.New()
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(target string, h echo.HandlerFunc, maxBody int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(CacheHttp(s.cache, maxBody)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	res := "Hello, World"
	h := func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, "image/png")
		return c.String(http.StatusOK, res)
	}
	rec := s.serve("/media?src=a&b=2", h, 0)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(res, rec.Body.String())

	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, again")
	}
	// same query in another order hits the cache
	rec2 := s.serve("/media?b=2&src=a", h2, 0)
	s.Equal(http.StatusOK, rec2.Code)
	s.Equal(res, rec2.Body.String())
	s.Equal("image/png", rec2.Header().Get(echo.HeaderContentType))

	rec3 := s.serve("/media?src=b", h2, 0)
	s.Equal("Hello, again", rec3.Body.String())
}

func (s *cacheMiddlewareSuite) TestSkipErrors() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusBadGateway, "upstream down")
	}
	s.Equal(http.StatusBadGateway, s.serve("/media?src=a", h, 0).Code)
	s.Equal(http.StatusBadGateway, s.serve("/media?src=a", h, 0).Code)
	s.Equal(2, calls)

	response := Response{}
	s.ErrorIs(s.cache.Get(ctx.Background(), generateKey("/media?src=a"), &response), cache.ErrNotFound)
}

func (s *cacheMiddlewareSuite) TestSkipLargeBody() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, strings.Repeat("x", 64))
	}
	s.Len(s.serve("/media?src=big", h, 16).Body.String(), 64)
	s.Len(s.serve("/media?src=big", h, 16).Body.String(), 64)
	s.Equal(2, calls)
}

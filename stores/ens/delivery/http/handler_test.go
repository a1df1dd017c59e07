package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/listingpage/base/validator"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/middleware"
	"github.com/x-xyz/listingpage/service/ens/mocks"
)

const seller = "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872"

type ensSuite struct {
	suite.Suite

	ens *mocks.ENS
	e   *echo.Echo
}

func (s *ensSuite) SetupTest() {
	s.ens = mocks.NewENS(s.T())
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.ens)
}

func TestEnsSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *ensSuite) TestResolve() {
	s.ens.On("Resolve", mock.Anything, "seller.eth").Return(domain.Address(seller), nil).Once()

	rec := s.get("/ens/resolve/seller.eth")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"`+seller+`","status":"success"}`, rec.Body.String())
}

func (s *ensSuite) TestReverseResolve() {
	s.ens.On("ReverseResolve", mock.Anything, domain.Address(seller)).Return("seller.eth", nil).Once()

	rec := s.get("/ens/reverse-resolve/" + seller)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"seller.eth","status":"success"}`, rec.Body.String())
}

func (s *ensSuite) TestReverseResolveInvalidAddress() {
	rec := s.get("/ens/reverse-resolve/0x1234")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ensSuite) TestLookupFailed() {
	s.ens.On("Resolve", mock.Anything, "down.eth").Return(domain.Address(""), errors.New("rpc down")).Once()

	rec := s.get("/ens/resolve/down.eth")
	s.Equal(http.StatusBadGateway, rec.Code)
	s.JSONEq(`{"data":"rpc down","status":"fail"}`, rec.Body.String())
}

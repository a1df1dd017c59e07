package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/mocks"
	"github.com/x-xyz/listingpage/middleware"
	"github.com/x-xyz/listingpage/stores/web_resource/repository"
	"github.com/x-xyz/listingpage/stores/web_resource/usecase"
)

// smallest valid png header
var png = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type mediaSuite struct {
	suite.Suite

	webResource *mocks.WebResourceUseCase
	e           *echo.Echo
}

func (s *mediaSuite) SetupTest() {
	s.webResource = mocks.NewWebResourceUseCase(s.T())
	s.e = echo.New()
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.webResource)
}

func TestMediaSuite(t *testing.T) {
	suite.Run(t, new(mediaSuite))
}

func (s *mediaSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *mediaSuite) TestMedia() {
	s.webResource.On("Get", mock.Anything, "ipfs://QmImage").Return(png, nil).Once()

	rec := s.get("/media?src=ipfs://QmImage")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get(echo.HeaderContentType))
	s.Equal("nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	s.Equal(png, rec.Body.Bytes())
}

func (s *mediaSuite) TestRejectsNonMedia() {
	s.webResource.On("Get", mock.Anything, "https://evil.example/x").Return([]byte("<html><script>alert(1)</script></html>"), nil).Once()

	rec := s.get("/media?src=https://evil.example/x")
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *mediaSuite) TestErrors() {
	s.webResource.On("Get", mock.Anything, "ipfs://QmGone").Return(nil, domain.ErrNotFound).Once()
	s.webResource.On("Get", mock.Anything, "ipfs://QmSlow").Return(nil, errors.New("timeout")).Once()

	s.Equal(http.StatusBadRequest, s.get("/media").Code)
	s.Equal(http.StatusNotFound, s.get("/media?src=ipfs://QmGone").Code)
	s.Equal(http.StatusBadGateway, s.get("/media?src=ipfs://QmSlow").Code)
}

func TestMediaRefusesInternalHosts(t *testing.T) {
	hits := 0
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(png)
	}))
	defer internal.Close()

	client := repository.NewPublicHttpClient()
	webResource := usecase.NewWebResourceUseCase(&usecase.WebResourceUseCaseCfg{
		HttpReader:    repository.NewHttpReaderRepo(client, time.Second, nil),
		IpfsReader:    repository.NewIpfsGatewayReaderRepo(client, "", time.Second),
		DataUriReader: repository.NewDataUriReaderRepo(),
		ArUriReader:   repository.NewArReaderRepo(client, "", time.Second),
	})
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, webResource)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media?src="+internal.URL+"/admin/secret.png", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hits)
}

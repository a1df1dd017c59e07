package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"golang.org/x/xerrors"
)

const (
	arUriSchema      = "ar://"
	DefaultArGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

func NewArReaderRepo(client *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultArGateway
	}
	return &arReaderRepo{client: client, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri %s: %w", uri, domain.ErrUnsupportedSchema)
	}
	return fetch(c, r.client, r.ctxTimeout, r.gateway+"/"+strings.TrimPrefix(uri, arUriSchema), nil)
}

package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
)

// DefaultIpfsGateway serves reads when no gateway is configured
const DefaultIpfsGateway = "https://ipfs.io/ipfs"

type ipfsGatewayReaderRepo struct {
	client     *http.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads cid paths through an http gateway, e.g. https://ipfs.io/ipfs
func NewIpfsGatewayReaderRepo(client *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultIpfsGateway
	}
	return &ipfsGatewayReaderRepo{client: client, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

// Get takes a cid path such as Qm.../1.json, leading slashes are ignored
func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	path := strings.TrimLeft(cid, "/")
	if path == "" {
		return nil, xerrors.Errorf("empty ipfs path: %w", domain.ErrBadParamInput)
	}
	return fetch(c, r.client, r.ctxTimeout, r.gateway+"/"+path, nil)
}

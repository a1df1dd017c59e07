package repository

import (
	"net"
	"net/http"
	"syscall"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/listingpage/domain"
)

// ErrNonPublicDestination is returned when a url resolves to a loopback, private or link-local address
var ErrNonPublicDestination = xerrors.Errorf("non public destination: %w", domain.ErrBadParamInput)

const (
	dialTimeout         = 5 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
	idleConnTimeout     = 90 * time.Second
)

// NewPublicHttpClient returns a client that only connects to public addresses. Token
// metadata and media urls are chosen by whoever minted the token, so they must not reach
// hosts inside our network. The check runs on the resolved address of every dial,
// redirects included.
func NewPublicHttpClient() *http.Client {
	dialer := &net.Dialer{
		Timeout: dialTimeout,
		Control: refuseNonPublic,
	}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               nil,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: tlsHandshakeTimeout,
			IdleConnTimeout:     idleConnTimeout,
			MaxIdleConns:        100,
		},
	}
}

func refuseNonPublic(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return xerrors.Errorf("dial %s: %w", address, ErrNonPublicDestination)
	}
	ip := net.ParseIP(host)
	if ip == nil || !isPublic(ip) {
		return xerrors.Errorf("dial %s: %w", address, ErrNonPublicDestination)
	}
	return nil
}

func isPublic(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified() ||
		cgnat.Contains(ip))
}

// shared address space, rfc 6598
var cgnat = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

package wallet

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
)

var ErrUnsupportedNetwork = errors.New("unsupported network")

// Provider is the connected wallet and the network it is on
type Provider interface {
	Address() domain.Address
	ChainId(c ctx.Ctx) (domain.ChainId, error)
	SwitchNetwork(c ctx.Ctx, chainId domain.ChainId) error
	// Transactor returns signing options for the active network
	Transactor(c ctx.Ctx) (*bind.TransactOpts, domain.ChainId, error)
}

package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	baseabi "github.com/x-xyz/listingpage/base/abi"
	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/service/chain"
)

type MarketplaceContract interface {
	ChainId() domain.ChainId
	Address() domain.Address
	Listing(ctx bCtx.Ctx, listingId *big.Int) (*baseabi.MarketplaceListing, error)
	Offer(ctx bCtx.Ctx, opts *bind.TransactOpts, listingId, quantity *big.Int, currency domain.Address, pricePerToken *big.Int) (domain.TxHash, error)
	Buy(ctx bCtx.Ctx, opts *bind.TransactOpts, listingId *big.Int, buyFor domain.Address, quantity *big.Int, currency domain.Address, totalPrice *big.Int) (domain.TxHash, error)
}

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      domain.ChainId
	address      domain.Address
}

func NewMarketplace(chainService chain.Client, chainId domain.ChainId, address domain.Address) MarketplaceContract {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		chainId:      chainId,
		address:      address,
	}
}

func (m *Marketplace) ChainId() domain.ChainId {
	return m.chainId
}

func (m *Marketplace) Address() domain.Address {
	return m.address
}

func (m *Marketplace) Listing(ctx bCtx.Ctx, listingId *big.Int) (*baseabi.MarketplaceListing, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address.ToCommon(), m.abi, "listings", listingId)
	if err != nil {
		return nil, err
	}
	return baseabi.ParseMarketplaceListing(unpacked)
}

func (m *Marketplace) Offer(ctx bCtx.Ctx, opts *bind.TransactOpts, listingId, quantity *big.Int, currency domain.Address, pricePerToken *big.Int) (domain.TxHash, error) {
	return sendAndWait(ctx, m.chainService, m.chainId, opts, m.address.ToCommon(), m.abi, "offer", listingId, quantity, currency.ToCommon(), pricePerToken)
}

func (m *Marketplace) Buy(ctx bCtx.Ctx, opts *bind.TransactOpts, listingId *big.Int, buyFor domain.Address, quantity *big.Int, currency domain.Address, totalPrice *big.Int) (domain.TxHash, error) {
	return sendAndWait(ctx, m.chainService, m.chainId, opts, m.address.ToCommon(), m.abi, "buy", listingId, buyFor.ToCommon(), quantity, currency.ToCommon(), totalPrice)
}

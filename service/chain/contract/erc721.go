package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/listingpage/base/abi"
	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/service/chain"
)

type Erc721Contract interface {
	TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error)
	OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) Erc721Contract {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	uri, ok := unpacked[0].(string)
	if !ok {
		return "", baseabi.ErrUnexpectedOutput
	}
	return uri, nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return "", baseabi.ErrUnexpectedOutput
	}
	return domain.Address(owner.Hex()), nil
}

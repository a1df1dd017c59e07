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

type Erc20Contract interface {
	Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error)
	Decimals(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (int32, error)
	Allowance(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, spender domain.Address) (*big.Int, error)
	Approve(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr, spender domain.Address, amount *big.Int) (domain.TxHash, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) Erc20Contract {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "symbol")
	if err != nil {
		return "", err
	}
	symbol, ok := unpacked[0].(string)
	if !ok {
		return "", baseabi.ErrUnexpectedOutput
	}
	return symbol, nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (int32, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, ok := unpacked[0].(uint8)
	if !ok {
		return 0, baseabi.ErrUnexpectedOutput
	}
	return int32(decimals), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, chainId domain.ChainId, addr, owner, spender domain.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "allowance", owner.ToCommon(), spender.ToCommon())
	if err != nil {
		return nil, err
	}
	allowance, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, baseabi.ErrUnexpectedOutput
	}
	return allowance, nil
}

func (e *Erc20) Approve(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr, spender domain.Address, amount *big.Int) (domain.TxHash, error) {
	return sendAndWait(ctx, e.chainService, chainId, opts, addr.ToCommon(), e.abi, "approve", spender.ToCommon(), amount)
}

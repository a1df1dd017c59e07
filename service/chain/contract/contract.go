package contract

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/service/chain"
)

// sendAndWait sends a contract write and waits until it is mined
func sendAndWait(ctx bCtx.Ctx, cli chain.Client, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	tx, err := cli.Transact(ctx, chainId, opts, addr, _abi, method, params...)
	if err != nil {
		return "", err
	}
	hash := domain.TxHash(tx.Hash().Hex())
	if _, err := cli.WaitMined(ctx, chainId, tx); err != nil {
		return hash, err
	}
	return hash, nil
}

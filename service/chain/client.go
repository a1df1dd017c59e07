package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/base/metrics"
	"github.com/x-xyz/listingpage/domain"
)

var (
	ErrUnsupportedChain    = errors.New("unsupported chain")
	ErrTransactionReverted = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

type Client interface {
	Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a contract write, it does not wait for the receipt
	Transact(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitMined blocks until tx is mined, a failed receipt returns ErrTransactionReverted
	WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error)
	// ChainID is the id reported by the node serving chainId
	ChainID(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error)
	Backend(chainId domain.ChainId) (bind.ContractBackend, error)
	Close()
}

type clientImpl struct {
	clients map[domain.ChainId]*ethclient.Client
	met     metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.ChainId]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients: clients,
		met:     metrics.New("chain"),
	}, anyerr
}

func (c *clientImpl) client(chainId domain.ChainId) (*ethclient.Client, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	defer c.met.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	defer c.met.BumpTime("transact.latency", "method", method).End()

	if opts.Context == nil {
		opts.Context = ctx
	}
	contract := bind.NewBoundContract(addr, _abi, client, client, client)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		c.met.BumpSum("transact.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"method":  method,
			"chainId": chainId,
			"err":     err,
		}).Error("contract.Transact failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"txHash": tx.Hash().Hex(),
	}).Info("transaction sent")
	return tx, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	defer c.met.BumpTime("waitmined.latency").End()

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"txHash": tx.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.met.BumpSum("transact.reverted", 1)
		ctx.WithField("txHash", tx.Hash().Hex()).Warn("transaction reverted")
		return receipt, ErrTransactionReverted
	}
	return receipt, nil
}

func (c *clientImpl) ChainID(ctx bCtx.Ctx, chainId domain.ChainId) (*big.Int, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	id, err := client.ChainID(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("client.ChainID failed")
		return nil, err
	}
	return id, nil
}

func (c *clientImpl) Backend(chainId domain.ChainId) (bind.ContractBackend, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *clientImpl) Close() {
	for _, client := range c.clients {
		client.Close()
	}
}

package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/domain"
	domainWallet "github.com/x-xyz/listingpage/domain/wallet"
	"github.com/x-xyz/listingpage/service/chain"
)

type Cfg struct {
	// PrivateKey is hex encoded, with or without 0x
	PrivateKey string
	ChainId    domain.ChainId
}

type impl struct {
	key     *ecdsa.PrivateKey
	address domain.Address
	chain   chain.Client

	mu     sync.RWMutex
	active domain.ChainId
}

// New creates a server held signer that starts on cfg.ChainId
func New(cfg Cfg, chainClient chain.Client) (domainWallet.Provider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid wallet key: %w", err)
	}
	return &impl{
		key:     key,
		address: domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()),
		chain:   chainClient,
		active:  cfg.ChainId,
	}, nil
}

func (im *impl) Address() domain.Address {
	return im.address
}

func (im *impl) ChainId(c ctx.Ctx) (domain.ChainId, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.active, nil
}

// SwitchNetwork moves to chainId once its node confirms it serves that chain
func (im *impl) SwitchNetwork(c ctx.Ctx, chainId domain.ChainId) error {
	reported, err := im.chain.ChainID(c, chainId)
	if xerrors.Is(err, chain.ErrUnsupportedChain) {
		c.WithField("chainId", chainId).Warn("no rpc for network")
		return xerrors.Errorf("chain %d: %w", chainId, domainWallet.ErrUnsupportedNetwork)
	} else if err != nil {
		c.WithField("err", err).Error("chain.ChainID failed")
		return err
	}
	if reported.Cmp(big.NewInt(int64(chainId))) != 0 {
		c.WithFields(log.Fields{
			"chainId":  chainId,
			"reported": reported.String(),
		}).Error("rpc serves another network")
		return xerrors.Errorf("rpc for chain %d reports %s: %w", chainId, reported, domainWallet.ErrUnsupportedNetwork)
	}

	im.mu.Lock()
	prev := im.active
	im.active = chainId
	im.mu.Unlock()

	c.WithFields(log.Fields{
		"from": prev,
		"to":   chainId,
	}).Info("network switched")
	return nil
}

func (im *impl) Transactor(c ctx.Ctx) (*bind.TransactOpts, domain.ChainId, error) {
	chainId, _ := im.ChainId(c)
	opts, err := bind.NewKeyedTransactorWithChainID(im.key, big.NewInt(int64(chainId)))
	if err != nil {
		c.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, 0, err
	}
	opts.Context = c
	return opts, chainId, nil
}

package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/base/ptr"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/keys"
	"github.com/x-xyz/listingpage/service/cache"
)

type resolveFunc func(backend bind.ContractBackend, name string) (common.Address, error)

type reverseResolveFunc func(backend bind.ContractBackend, address common.Address) (string, error)

type impl struct {
	backend        bind.ContractBackend
	cache          cache.Service
	resolve        resolveFunc
	reverseResolve reverseResolveFunc
}

// New resolves names against the ENS registry reachable through backend, normally mainnet
func New(backend bind.ContractBackend, cache cache.Service) ENS {
	return &impl{
		backend:        backend,
		cache:          cache,
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey(keys.PfxEns, "resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.Hex())
		return &val, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey(keys.PfxEns, "reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(im.backend, address.ToCommon())
		switch fmt.Sprint(err) {
		case "not a resolver", "no resolution":
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

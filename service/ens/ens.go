package ens

import (
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	// ReverseResolve returns the primary name of address, or "" when none is set
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}

package repository

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	hcdomain "github.com/x-xyz/listingpage/domain/healthcheck"
	"github.com/x-xyz/listingpage/domain/keys"
	"github.com/x-xyz/listingpage/service/chain"
	"github.com/x-xyz/listingpage/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chain      chain.Client
	chainId    domain.ChainId
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface.
// redisCache may be nil when no shared cache is configured.
func New(
	chain chain.Client,
	chainId domain.ChainId,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		chain:      chain,
		chainId:    chainId,
		redisCache: redisCache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	id, err := im.chain.ChainID(ctx, im.chainId)
	if err != nil {
		context.WithField("err", err).Error("ping chain error")
		return err
	}
	if id.Int64() != int64(im.chainId) {
		err := xerrors.Errorf("node serves chain %s, want %d", id, im.chainId)
		context.WithField("err", err).Error("ping chain error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return hcdomain.ErrNotConfigured
	}

	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}

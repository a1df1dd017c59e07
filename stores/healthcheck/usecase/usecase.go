package usecase

import (
	"errors"

	"github.com/x-xyz/listingpage/base/ctx"
	hcdomain "github.com/x-xyz/listingpage/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	chainStatus, chainErr := status(im.repo.PingChain(context))
	cacheStatus, cacheErr := status(im.repo.PingCache(context))
	report := hcdomain.Report{Chain: chainStatus, Cache: cacheStatus}
	if chainErr != nil {
		return report, chainErr
	}
	return report, cacheErr
}

func status(err error) (hcdomain.Status, error) {
	switch {
	case err == nil:
		return hcdomain.StatusUp, nil
	case errors.Is(err, hcdomain.ErrNotConfigured):
		return hcdomain.StatusSkipped, nil
	default:
		return hcdomain.StatusDown, err
	}
}

package healthcheck

import (
	"errors"

	"github.com/x-xyz/listingpage/base/ctx"
)

// ErrNotConfigured is returned by a ping whose dependency is optional and absent
var ErrNotConfigured = errors.New("not configured")

type Status string

const (
	StatusUp      Status = "up"
	StatusDown    Status = "down"
	StatusSkipped Status = "skipped"
)

type Report struct {
	Chain Status `json:"chain"`
	Cache Status `json:"cache"`
}

func (r Report) Healthy() bool {
	return r.Chain != StatusDown && r.Cache != StatusDown
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check pings every dependency, the error is the first failure
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo pings the dependencies a listing page needs
type HealthCheckRepo interface {
	PingChain(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}

package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/listingpage/base/log"
)

// Ctx carries cancellation and a request scoped logger through every layer
type Ctx struct {
	context.Context
	log.Logger
}

type key string

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a std context, e.g. the one of an incoming request
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, k string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key(k), val),
		Logger:  parent.Logger.WithField(k, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// Value returns the value stored by WithValue
func Value(c Ctx, k string) interface{} {
	return c.Context.Value(key(k))
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// Detach keeps the logger but drops the parent's cancellation, for work that outlives a request
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  parent.Logger,
	}
}

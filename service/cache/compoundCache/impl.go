package compoundcache

import (
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/service/cache"
)

type impl struct {
	layers []cache.Service
}

// NewCompoundCache layers caches from fastest to slowest. A hit in a slower layer
// back-fills the faster ones.
func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	return cache.ReadThrough(c, im, key, container, getter)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	hitIdx := -1
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if err == cache.ErrNotFound {
			continue
		} else if err != nil {
			return err
		}
		hitIdx = idx
		break
	}

	if hitIdx == -1 {
		return cache.ErrNotFound
	}

	for _, lyr := range im.layers[:hitIdx] {
		if err := lyr.Set(c, key, container); err != nil {
			c.WithField("err", err).WithField("key", key).Warn("back-fill failed")
		}
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Del removes key from every layer and reports the first failure
func (im *impl) Del(c ctx.Ctx, key string) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}

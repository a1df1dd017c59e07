package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/service/cache/provider"
)

// minimum freecache accepts, see freecache.NewCache
const minSizeMB = 1

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(map[string]interface{}{"err": err, "key": key, "cache": im.name}).Error("freecache.GetWithExpiration failed")
		return nil, 0, err
	}
	if exp == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(exp), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl / time.Second)
	if ttl > 0 && secs == 0 {
		secs = 1
	}
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		// freecache rejects entries larger than 1/1024 of its size
		c.WithFields(map[string]interface{}{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingpage/base/backoff"
	"github.com/x-xyz/listingpage/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
	retryStart   = 500 * time.Millisecond
	retryLimit   = 5 * time.Second
)

// RedisParam sizes the pool relative to the cpu count
type RedisParam struct {
	PoolMultiplier float64
	// Retries is how many extra dials are attempted before giving up
	Retries int
}

func poolSize(param []RedisParam) (maxIdle, maxActive, retries int) {
	maxIdle, maxActive = 16, 128
	if len(param) == 0 || param[0].PoolMultiplier <= 0 {
		return maxIdle, maxActive, 0
	}
	cpu := float64(runtime.NumCPU())
	maxActive = int(cpu * param[0].PoolMultiplier)
	// allowing 25% idle connection
	maxIdle = maxActive / 4
	if maxIdle < 1 {
		maxIdle = 1
	}
	return maxIdle, maxActive, param[0].Retries
}

// ConnectRedis builds a pool for one redis uri and checks it with a PING
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle, maxActive, retries := poolSize(param)

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	var err error
	retry := backoff.New(backoff.Exponential, retryStart, retryLimit)
	for i := 0; i <= retries; i++ {
		if i > 0 {
			_ = retry.Wait(context.Background())
		}
		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", uri).Info("redis connected")
			return p, nil
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"retry":    i,
		}).Error("fail to dial Redis")
	}
	p.Close()
	return nil, xerrors.Errorf("connect redis %s: %w", uri, err)
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}

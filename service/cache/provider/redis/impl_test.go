package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/service/cache/provider"
	"github.com/x-xyz/listingpage/service/redis"
	mRedis "github.com/x-xyz/listingpage/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	redis *mRedis.Service
	im    provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.redis = mRedis.NewService(ts.T())
	ts.im = NewRedis(ts.redis)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	ts.redis.On("Get", mock.Anything, "key").Return([]byte("value"), nil).Once()
	ts.redis.On("TTL", mock.Anything, "key").Return(30, nil).Once()

	v, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), v)
	ts.Equal(30*time.Second, ttl)
}

func (ts *testsuite) TestGetMiss() {
	ts.redis.On("Get", mock.Anything, "key").Return(nil, redis.ErrNotFound).Once()

	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetFailed() {
	errConn := errors.New("connection refused")
	ts.redis.On("Get", mock.Anything, "key").Return(nil, errConn).Once()

	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(errConn, err)
}

func (ts *testsuite) TestSetDel() {
	ts.redis.On("Set", mock.Anything, "key", []byte("value"), time.Minute).Return(nil).Once()
	ts.redis.On("Del", mock.Anything, "key").Return(1, nil).Once()

	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))
}

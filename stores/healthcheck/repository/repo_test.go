package repository

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	hcdomain "github.com/x-xyz/listingpage/domain/healthcheck"
	chainMocks "github.com/x-xyz/listingpage/service/chain/mocks"
	redisMocks "github.com/x-xyz/listingpage/service/redis/mocks"
)

func TestPingChain(t *testing.T) {
	cli := chainMocks.NewClient(t)
	cli.On("ChainID", mock.Anything, domain.ChainId(4)).Return(big.NewInt(4), nil).Once()
	cli.On("ChainID", mock.Anything, domain.ChainId(5)).Return(big.NewInt(1), nil).Once()
	cli.On("ChainID", mock.Anything, domain.ChainId(137)).Return(nil, errors.New("dial tcp")).Once()

	assert.NoError(t, New(cli, 4, nil).PingChain(ctx.Background()))
	assert.Error(t, New(cli, 5, nil).PingChain(ctx.Background()))
	assert.Error(t, New(cli, 137, nil).PingChain(ctx.Background()))
}

func TestPingCache(t *testing.T) {
	assert.ErrorIs(t, New(nil, 4, nil).PingCache(ctx.Background()), hcdomain.ErrNotConfigured)

	r := redisMocks.NewService(t)
	r.On("Set", mock.Anything, "healthcheck:testset", []byte("1"), 30*time.Second).Return(nil).Once()
	assert.NoError(t, New(nil, 4, r).PingCache(ctx.Background()))

	r.On("Set", mock.Anything, "healthcheck:testset", []byte("1"), 30*time.Second).Return(errors.New("READONLY")).Once()
	assert.Error(t, New(nil, 4, r).PingCache(ctx.Background()))
}

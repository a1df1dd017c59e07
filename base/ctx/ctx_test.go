package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestID", "abc")
	ts.Equal("abc", Value(ctx, "requestID"))
	ts.Nil(Value(bg, "requestID"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"nftId":     "42",
		"listingId": "7",
	})
	ts.Equal("42", Value(ctx, "nftId"))
	ts.Equal("7", Value(ctx, "listingId"))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(waitFor(ctx, 100*time.Millisecond))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	ts.False(waitFor(ctx, 100*time.Millisecond))
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "abc"))
	cancel()
	detached := Detach(parent)
	ts.Error(parent.Err())
	ts.NoError(detached.Err())
}

func waitFor(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

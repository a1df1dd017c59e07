package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, Exponential(0, 100*time.Millisecond))
	assert.Equal(t, 800*time.Millisecond, Exponential(3, 100*time.Millisecond))
	assert.Equal(t, 100*time.Millisecond, Linear(0, 100*time.Millisecond))
	assert.Equal(t, 400*time.Millisecond, Linear(3, 100*time.Millisecond))
}

func TestLimit(t *testing.T) {
	b := New(Exponential, time.Second, 3*time.Second)
	assert.Equal(t, time.Second, b.Next())
	b.attempts = 5
	assert.Equal(t, 3*time.Second, b.Next())
	b.attempts = 70
	assert.Equal(t, 3*time.Second, b.Next())
}

func TestWait(t *testing.T) {
	b := New(Linear, time.Millisecond, 0)
	require.NoError(t, b.Wait(context.Background()))
	require.NoError(t, b.Wait(context.Background()))
	assert.Equal(t, 2, b.Attempts())
	assert.Equal(t, 3*time.Millisecond, b.Next())

	b.Reset()
	assert.Equal(t, 0, b.Attempts())
}

func TestWaitCancelled(t *testing.T) {
	b := New(Exponential, time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Wait(ctx), context.Canceled)
	assert.Equal(t, 0, b.Attempts())
}

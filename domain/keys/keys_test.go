package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "listing:4:7", RedisKey(PfxListing, "4", "7"))
	assert.Equal(t, "", RedisKey())
}

func TestGetPrefix(t *testing.T) {
	assert.Equal(t, "listing:4", GetPrefix("listing:4:7"))
	assert.Equal(t, "currency", GetPrefix("currency:0xabc"))
	assert.Equal(t, "", GetPrefix("plain"))
}

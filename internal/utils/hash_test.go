package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestReviewerFingerprint(t *testing.T) {
	a := ReviewerFingerprint("salt", "203.0.113.9", "storefront-test")
	b := ReviewerFingerprint("salt", "203.0.113.9", "storefront-test")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, ReviewerFingerprint("other-salt", "203.0.113.9", "storefront-test"))
	assert.NotEqual(t, a, ReviewerFingerprint("salt", "198.51.100.1", "storefront-test"))
	assert.NotEqual(t, a, ReviewerFingerprint("salt", "203.0.113.9", "other-agent"))
}

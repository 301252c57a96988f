package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("S3cret!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret!pass", hash)

	assert.NoError(t, hasher.Verify("S3cret!pass", hash))
	assert.Error(t, hasher.Verify("wrong-pass", hash))
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("S3cret!pass")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("S3cret!pass", hash))
}

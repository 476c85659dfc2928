package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
	assert.False(t, CheckPassword("s3cret-pass", "not-a-hash"))
}

func Test_HashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)
	// bcrypt 自带随机盐，两次哈希必然不同
	assert.NotEqual(t, h1, h2)
}

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recanto/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3nha-segura")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha-segura", hash)

	assert.NoError(t, password.Verify("s3nha-segura", hash))
	assert.ErrorIs(t, password.Verify("senha-errada", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pass", ""), password.ErrInvalidPassword)
}

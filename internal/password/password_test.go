package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	first := Hash("secret1", salt)
	second := Hash("secret1", salt)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestHashDiffersAcrossSalts(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, Hash("secret1", salt1), Hash("secret1", salt2))
}

func TestHashDiffersAcrossPasswords(t *testing.T) {
	salt := []byte("0123456789abcdef")

	assert.NotEqual(t, Hash("secret1", salt), Hash("secret2", salt))
}

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt1, SaltLength)

	salt2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
}

func TestVerify(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := Hash("secret1", salt)

	assert.True(t, Verify("secret1", salt, hash))
	assert.False(t, Verify("wrong", salt, hash))

	other, err := GenerateSalt()
	require.NoError(t, err)
	assert.False(t, Verify("secret1", other, hash))
}

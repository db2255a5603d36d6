package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	a, err := GenerateSessionToken()
	require.NoError(t, err)
	b, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

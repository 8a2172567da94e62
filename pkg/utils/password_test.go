package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	h, err := HashPassword("managerpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "managerpass123", h)
	assert.True(t, CheckPassword("managerpass123", h))
	assert.False(t, CheckPassword("wrong-password", h))
	assert.False(t, CheckPassword("managerpass123", "not-a-hash"))
}

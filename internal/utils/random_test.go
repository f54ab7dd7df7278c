package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCheckinCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateCheckinCode()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	require.Len(t, GenerateRandomPassword(12), 12)
	require.Empty(t, GenerateRandomPassword(0))
}

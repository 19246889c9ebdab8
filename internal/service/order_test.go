package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRefCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateRefCode()
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, strings.ContainsRune(refCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// 100 draws from 62^6 possibilities should not all collide
	require.Greater(t, len(seen), 90)
}

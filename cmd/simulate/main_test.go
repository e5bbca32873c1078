package main

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestParseUsers(t *testing.T) {
	require.Equal(t, memory.SeedUsers(), parseUsers(" "))
	require.Equal(t, []string{"a", "b"}, parseUsers("a, ,b,"))
}

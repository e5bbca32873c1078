package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	require.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	require.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	require.Error(t, err)

	_, err = parseSteps([]string{"abc"})
	require.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	version, err := parseVersion("20260110090000")
	require.NoError(t, err)
	require.Equal(t, 20260110090000, version)

	_, err = parseVersion("-1")
	require.Error(t, err)

	_, err = parseVersion("x")
	require.Error(t, err)
}

func TestParseTarget(t *testing.T) {
	target, err := parseTarget("42")
	require.NoError(t, err)
	require.Equal(t, uint(42), target)

	_, err = parseTarget("-42")
	require.Error(t, err)
}

func TestNormalizeDBURL(t *testing.T) {
	raw := "postgres://u:p@localhost:5432/fantasy_draft?sslmode=disable"

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
	require.Equal(t, raw, normalizeDBURL(raw))

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "yes")
	got := normalizeDBURL(raw)
	require.True(t, strings.Contains(got, "disable_prepared_binary_result=yes"), got)
	require.True(t, strings.Contains(got, "sslmode=disable"), got)
}

func TestRun_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	err := run("up", nil, nil)
	require.ErrorContains(t, err, "DB_URL is required")
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	inv, exit, err := Parse([]string{"validate"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "validate", inv.Command)
	assert.Equal(t, "catalogs", inv.Config.CatalogPath)
	assert.Equal(t, "", inv.Config.ActiveVersion)
	assert.Equal(t, "text", inv.Config.LogFormat)
	assert.Equal(t, "warn", inv.Config.LogLevel)
	assert.Equal(t, "cli", inv.Caller)
	assert.Equal(t, []string{"cli"}, inv.Config.AdminIDs)
	assert.Empty(t, inv.Partner)
}

func TestParseQuote(t *testing.T) {
	var out bytes.Buffer
	inv, exit, err := Parse([]string{
		"-catalogs", "/etc/pricecore",
		"-catalog-version", "v1",
		"-caller", "ops",
		"-partner", "P",
		"-log-level", "DEBUG",
		"quote", "caseQuantity=12", "bottleFormat=750ml",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "quote", inv.Command)
	assert.Equal(t, "/etc/pricecore", inv.Config.CatalogPath)
	assert.Equal(t, "v1", inv.Config.ActiveVersion)
	assert.Equal(t, "ops", inv.Caller)
	assert.Equal(t, "P", inv.Partner)
	assert.Equal(t, "debug", inv.Config.LogLevel)
	assert.Equal(t, map[string]string{"caseQuantity": "12", "bottleFormat": "750ml"}, inv.Inputs)
}

func TestParseHelpAndUsage(t *testing.T) {
	t.Run("-h prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		inv, exit, err := Parse([]string{"-h"}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, inv)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("no command prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		inv, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, inv)
		assert.Contains(t, out.String(), "pricecore")
	})
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"frobnicate"}, `unknown command "frobnicate"`},
		{"bad log format", []string{"-log-format", "xml", "validate"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "verbose", "validate"}, "invalid log-level"},
		{"malformed assignment", []string{"quote", "caseQuantity"}, "malformed assignment"},
		{"empty key", []string{"quote", "=12"}, "malformed assignment"},
		{"quote without assignments", []string{"quote"}, "at least one var=value"},
		{"empty catalog path", []string{"-catalogs", "", "validate"}, "CatalogPath"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, exit, err := Parse(tc.args, &out)
			require.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-bogus", "validate"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}

package logic

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	src := "rules:\n  excluded-middle: false\n  identity-and: true\nmax-depth: 3\n"
	c, err := ParseConfig([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxDepth)
	assert.False(t, c.Enabled(RuleExcludedMiddle))
	assert.True(t, c.Enabled(RuleIdentityAnd))
	// Rules missing from the file are enabled.
	assert.True(t, c.Enabled(RuleDoubleNegation))

	e, err := ParseString("(A or not A) and (B and True)")
	require.NoError(t, err)
	got := Simplify(e, c.SimplifyOptions()...)
	assert.Equal(t, "(A or not A) and B", got.String())

	_, err = ParseString("((((A))))", c.ParseOptions()...)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr), "want *SyntaxError, got %#v", err)
	assert.Equal(t, ReasonTooDeep, serr.Reason)
}

func TestParseConfigEmpty(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Zero(t, c.MaxDepth)
	assert.Nil(t, c.SimplifyOptions())
	for _, r := range Rules() {
		assert.True(t, c.Enabled(r.Name), "rule %s", r.Name)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		key  string
	}{
		{"unknown-rule", "rules:\n  de-morgan: true\n", "rules.de-morgan"},
		{"negative-depth", "max-depth: -1\n", "max-depth"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(c.src))
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "want *ConfigError, got %#v", err)
			assert.Equal(t, c.key, cerr.Key)
			assert.Contains(t, err.Error(), c.key)
		})
	}

	_, err := ParseConfig([]byte("rules: [excluded-middle]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding config")
	_, err = ParseConfig([]byte("max-depth: deep\n"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.Len(t, c.Rules, len(Rules()))
	assert.NoError(t, c.Validate())
	assert.Nil(t, c.SimplifyOptions())

	b, err := c.Marshal()
	require.NoError(t, err)
	d, err := ParseConfig(b)
	require.NoError(t, err)
	assert.Equal(t, c, d)

	c.Rules[RuleContradiction] = false
	c.MaxDepth = 100
	b, err = c.Marshal()
	require.NoError(t, err)
	d, err = ParseConfig(b)
	require.NoError(t, err)
	assert.Equal(t, c, d)
	assert.False(t, d.Enabled(RuleContradiction))
	assert.Len(t, d.SimplifyOptions(), 1)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  idempotent-or: false\n"), 0o644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, c.Enabled(RuleIdempotentOr))

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max-depth: -5\n"), 0o644))
	_, err = LoadConfig(bad)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr), "want *ConfigError, got %#v", err)
	assert.Contains(t, err.Error(), bad)
}

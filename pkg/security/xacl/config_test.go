package xacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipacl/pkg/util/xnet"
)

func TestLoadConfig_YAML(t *testing.T) {
	data := []byte(`
policy: denylist
ranges:
  - 10.0.0.0/8
  - "192.168"
  - 8.12.144.0 - 8.12.144.255
  - "2001:db8::"
`)
	cfg, err := LoadConfig(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "denylist", cfg.Policy)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168", "8.12.144.0 - 8.12.144.255", "2001:db8::"}, cfg.Ranges)

	acl, err := NewFromConfig(cfg, WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, PolicyDenylist, acl.Policy())
	assert.Equal(t, "10.0.0.0/8, 192.168.0.0/16, 8.12.144.0/24, 2001:db8::/32", acl.String())
	assert.False(t, acl.Permits("8.12.144.10"))
	assert.True(t, acl.Permits("8.8.8.8"))
}

func TestLoadConfig_JSON(t *testing.T) {
	data := []byte(`{"ranges": ["10.1", "::1"]}`)
	cfg, err := LoadConfig(data, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Policy)

	acl, err := NewFromConfig(cfg, WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, PolicyAllowlist, acl.Policy())
	assert.True(t, acl.Permits("10.1.200.3", "::1"))
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]byte(`ranges: [`), FormatYAML)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = LoadConfig([]byte(`{"ranges":`), FormatJSON)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = LoadConfig([]byte(`ranges: []`), Format("toml"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfig_UnquotedNumber(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml float", "ranges:\n  - 10.10\n", FormatYAML},
		{"yaml int", "ranges:\n  - 10\n", FormatYAML},
		{"yaml mixed", "ranges:\n  - \"192.168\"\n  - 10.10\n", FormatYAML},
		{"json number", `{"ranges": [10.10]}`, FormatJSON},
		{"numeric policy", "policy: 1\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig([]byte(tt.data), tt.format)
			require.ErrorIs(t, err, ErrConfig)
			assert.Equal(t, Config{}, cfg)
		})
	}

	cfg, err := LoadConfig([]byte("ranges:\n  - \"10.10\"\n"), FormatYAML)
	require.NoError(t, err)
	acl, err := NewFromConfig(cfg, WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, "10.10.0.0/16", acl.String())
	assert.Zero(t, acl.Check("10.1.0.1"))
}

func TestNewFromConfig_Errors(t *testing.T) {
	_, err := NewFromConfig(Config{Policy: "sometimes"})
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewFromConfig(Config{Ranges: []string{"10.0.0.0/8", "10.0.0.9-10.0.0.1"}}, WithLogger(discardLogger()))
	assert.ErrorIs(t, err, xnet.ErrInvertedRange)
}

func TestNewFromConfig_PolicyOverridesOption(t *testing.T) {
	acl, err := NewFromConfig(Config{Policy: "allowlist"}, WithPolicy(PolicyDenylist))
	require.NoError(t, err)
	assert.Equal(t, PolicyAllowlist, acl.Policy())
}

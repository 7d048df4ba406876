package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/ytmusic/config"
)

func TestDefaults(t *testing.T) {
	var c config.Client
	c.SetDefaults()
	assert.Equal(t, "en", c.Language)
	assert.Equal(t, config.DefaultTimeout, c.Timeout)
	require.NoError(t, c.Validate())
}

func TestTimeoutFromEnv(t *testing.T) {
	t.Setenv("YTMUSIC_TIMEOUT", "7")
	var c config.Client
	c.SetDefaults()
	assert.Equal(t, 7*time.Second, c.Timeout)
}

func TestUnknownLanguageRejected(t *testing.T) {
	t.Parallel()
	c := config.Client{Language: "xx"}
	c.SetDefaults()
	require.Error(t, c.Validate())
}

func TestUnknownLocationRejected(t *testing.T) {
	t.Parallel()
	c := config.Client{Language: "en", Location: "XX"}
	c.SetDefaults()
	require.Error(t, c.Validate())
}

func TestKnownLocale(t *testing.T) {
	t.Parallel()
	c := config.Client{Language: "zh_TW", Location: "TW"}
	c.SetDefaults()
	require.NoError(t, c.Validate())
}

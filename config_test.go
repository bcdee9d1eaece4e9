package splitwise

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"SPLITWISE_CONSUMER_KEY", "SPLITWISE_CONSUMER_SECRET", "SPLITWISE_CALLBACK_URL",
		"SPLITWISE_OAUTH_TOKEN", "SPLITWISE_OAUTH_TOKEN_SECRET", "SPLITWISE_BASE_URL",
		"SPLITWISE_PROXY", "SPLITWISE_TIMEOUT",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadConfig(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"SPLITWISE_CONSUMER_KEY":       "key",
		"SPLITWISE_CONSUMER_SECRET":    "secret",
		"SPLITWISE_OAUTH_TOKEN":        "token",
		"SPLITWISE_OAUTH_TOKEN_SECRET": "token-secret",
		"SPLITWISE_TIMEOUT":            "30s",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.ConsumerKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.HasAccessToken())

	client, err := NewFromConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, client.AccessToken())
	assert.Equal(t, "token", client.AccessToken().Token)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"missing consumer key", map[string]string{"SPLITWISE_CONSUMER_SECRET": "secret"}},
		{"half a token", map[string]string{
			"SPLITWISE_CONSUMER_KEY":    "key",
			"SPLITWISE_CONSUMER_SECRET": "secret",
			"SPLITWISE_OAUTH_TOKEN":     "token",
		}},
		{"bad timeout", map[string]string{
			"SPLITWISE_CONSUMER_KEY":    "key",
			"SPLITWISE_CONSUMER_SECRET": "secret",
			"SPLITWISE_TIMEOUT":         "soon",
		}},
		{"bad callback", map[string]string{
			"SPLITWISE_CONSUMER_KEY":    "key",
			"SPLITWISE_CONSUMER_SECRET": "secret",
			"SPLITWISE_CALLBACK_URL":    "not a url",
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setConfigEnv(t, tc.env)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewFromConfigWithoutToken(t *testing.T) {
	cfg := &Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		BaseURL:        "http://127.0.0.1:8080",
		Proxy:          "socks5://127.0.0.1:1080",
	}

	client, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Nil(t, client.AccessToken())
	assert.Equal(t, "http://127.0.0.1:8080/", client.baseURL)
}

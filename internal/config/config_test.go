package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  currency: EUR
telegram:
  token: from-file
auth:
  url: http://auth:8080
expenses:
  url: http://expenses:8081
  timeout-seconds: 3
session:
  backend: memcached
memcached:
  hosts:
    - 127.0.0.1:11211
`

func Test_Parse_ShouldReadYAML(t *testing.T) {
	conf, err := Parse(context.Background(), []byte(sampleYAML), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, "EUR", conf.App().Currency())
	assert.Zero(t, conf.App().MessageTimeout())
	assert.Equal(t, "from-file", conf.Telegram().Token())
	assert.Equal(t, "http://auth:8080", conf.Auth().BaseURL())
	assert.Zero(t, conf.Auth().Timeout())
	assert.Equal(t, "http://expenses:8081", conf.Expenses().BaseURL())
	assert.Equal(t, 3*time.Second, conf.Expenses().Timeout())
	assert.Equal(t, SessionBackendMemcached, conf.Session().Backend())
	assert.Equal(t, []string{"127.0.0.1:11211"}, conf.Memcached().Hosts())
}

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	conf, err := Parse(context.Background(), []byte(`{}`), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, "USD", conf.App().Currency())
	assert.Equal(t, "http://localhost:8080", conf.Auth().BaseURL())
	assert.Equal(t, "http://localhost:8081", conf.Expenses().BaseURL())
	assert.Equal(t, SessionBackendFile, conf.Session().Backend())
	assert.Equal(t, "data/session.yaml", conf.Session().File())
	assert.Equal(t, ":9090", conf.Metrics().Addr())
	assert.True(t, conf.Tracing().Enabled())
}

func Test_Parse_ShouldPreferEnvironment(t *testing.T) {
	conf, err := Parse(context.Background(), []byte(sampleYAML), envconfig.MapLookuper(map[string]string{
		"TELEGRAM_TOKEN":   "from-env",
		"EXPENSES_URL":     "http://other:9000",
		"SESSION_BACKEND":  "redis",
		"REDIS_ADDR":       "redis:6379",
		"TRACING_DISABLED": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Telegram().Token())
	assert.Equal(t, "http://other:9000", conf.Expenses().BaseURL())
	assert.Equal(t, "http://auth:8080", conf.Auth().BaseURL())
	assert.Equal(t, SessionBackendRedis, conf.Session().Backend())
	assert.Equal(t, "redis:6379", conf.Redis().Addr())
	assert.False(t, conf.Tracing().Enabled())
}

func Test_Parse_WithBrokenYAML_ShouldFail(t *testing.T) {
	_, err := Parse(context.Background(), []byte("app: ["), envconfig.MapLookuper(nil))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: ayra-test
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 3s
secretKey:
  access: a
  refresh: r
kafka:
  brokers: []
  alertTopic: alerts
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	t.Chdir(writeTestConfig(t))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_ALERTTOPIC", "flood.alerts")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "ayra-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Kafka)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "flood.alerts", cfg.Kafka.AlertTopic)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}, Kafka: &KafkaConfig{Brokers: []string{"k:9092"}}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultPageSize, cfg.Pagination.DefaultSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Pagination.MaxSize)
	assert.Equal(t, defaultCacheTTL, cfg.Redis.TTL)
	assert.Equal(t, defaultExportMaxRows, cfg.Export.MaxRows)
	assert.Equal(t, defaultPublishTimeout, cfg.Kafka.PublishTimeout)
}

func TestPaginationOrDefault_ClampsDefaultToMax(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultSize: 50, MaxSize: 20}}

	p := cfg.PaginationOrDefault()

	assert.Equal(t, 20, p.DefaultSize)
	assert.Equal(t, 20, p.MaxSize)
	assert.Equal(t, defaultPageSize, (*Config)(nil).PaginationOrDefault().DefaultSize)
}

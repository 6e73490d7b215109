package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/workload/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "workload"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "workload"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 20
	cfg.Database.ConnMaxLifetime = "45m"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "workload", pc.ConnConfig.Database)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(8), pc.MinConns, "idle connections never exceed the maximum")
	assert.Equal(t, 45*time.Minute, pc.MaxConnLifetime)
	assert.NotNil(t, pc.BeforeAcquire)
}

func TestPoolConfigRejectsBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	_, err := PoolConfig(cfg)
	assert.Error(t, err)
}

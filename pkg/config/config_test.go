package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/access/pkg/config"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "POSTGRES_DSN=postgres://localhost/access\n" +
		"JWT_PUBLIC_KEY=abc\n" +
		"KAFKA_BROKERS=k1:9092,k2:9092\n" +
		"COUNSELLEE_CACHE_TTL=1m\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"POSTGRES_DSN", "JWT_PUBLIC_KEY", "KAFKA_BROKERS", "COUNSELLEE_CACHE_TTL"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := config.New(envPath)
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "postgres://localhost/access", cfg.PostgresDSN)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, time.Minute, cfg.Redis.CounselleeCacheTTL)
	require.Equal(t, 30*time.Second, cfg.Redis.CounselleeRefillHold)
	require.Equal(t, 3, cfg.UsersService.RetryAttempts)
}

func TestNew_MissingRequired(t *testing.T) {
	for _, tt := range []struct {
		name    string
		dsn     string
		key     string
		wantVar string
	}{
		{name: "empty dsn", dsn: "", key: "abc", wantVar: "POSTGRES_DSN"},
		{name: "empty public key", dsn: "postgres://localhost/access", key: "", wantVar: "JWT_PUBLIC_KEY"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POSTGRES_DSN", tt.dsn)
			t.Setenv("JWT_PUBLIC_KEY", tt.key)

			_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
			require.ErrorContains(t, err, tt.wantVar)
		})
	}
}

func TestNew_UnsetRequired(t *testing.T) {
	t.Setenv("JWT_PUBLIC_KEY", "abc")
	t.Setenv("POSTGRES_DSN", "")
	require.NoError(t, os.Unsetenv("POSTGRES_DSN"))

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "POSTGRES_DSN")
}

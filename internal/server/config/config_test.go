package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":12345", cfg.BindAddr)
	assert.Equal(t, "students", cfg.StudentDirRoot)
	assert.Equal(t, 3, cfg.MaxFailedAttempts)
	assert.Equal(t, 300*time.Second, cfg.LockoutWindow)
	assert.Equal(t, 8, cfg.PasswordLength)
	assert.Empty(t, cfg.Instructors)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "db", "-t", "srv.crt", "-k", "srv.key",
		"-r", "labdirs", "-m", "5", "-w", "60", "-p", "12",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, "127.0.0.1:9090", cfg.BindAddr)
	assert.Equal(t, "db", cfg.DatabaseDSN)
	assert.Equal(t, "srv.crt", cfg.CertFile)
	assert.Equal(t, "srv.key", cfg.KeyFile)
	assert.Equal(t, "labdirs", cfg.StudentDirRoot)
	assert.Equal(t, 5, cfg.MaxFailedAttempts)
	assert.Equal(t, 60*time.Second, cfg.LockoutWindow)
	assert.Equal(t, 12, cfg.PasswordLength)
}

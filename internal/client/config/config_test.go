package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/forestadmin/internal/flagx"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every external source at nothing.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(flagx.ConfigFileEnv, "")
	t.Setenv(EnvFileEnv, filepath.Join(t.TempDir(), "absent.env"))
	for _, k := range []string{"API_URL", "REQUEST_TIMEOUT", "UPLOAD_TIMEOUT", "DRAFTS_DSN", "LOG_LEVEL",
		"IMAGE_LIMIT", "IMAGE_MAX_BYTES", "VIDEO_MAX_BYTES", "PARALLEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 6, c.ImageLimit)
	assert.EqualValues(t, 10<<20, c.ImageMaxBytes)
	assert.EqualValues(t, 100<<20, c.VideoMaxBytes)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_url":         "https://json.example",
		"request_timeout": "5s",
		"log_level":       "debug",
		"image_limit":     4,
	})
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("LOG_LEVEL=warn\nUPLOAD_TIMEOUT=2m\n"), 0o600))
	t.Setenv(EnvFileEnv, envPath)
	t.Setenv("PARALLEL", "2")

	cfg, err := LoadConfig([]string{"-c", jsonPath, "-a", "https://flag.example", "-x", "ignored"})
	require.NoError(t, err)

	want := &Config{
		APIBaseURL:     "https://flag.example",
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  2 * time.Minute,
		DraftsDSN:      "forestadmin.db",
		LogLevel:       "warn",
		ImageLimit:     4,
		ImageMaxBytes:  10 << 20,
		VideoMaxBytes:  100 << 20,
		Parallel:       2,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	isolate(t)

	_, err := LoadConfig([]string{"-t", "soon"})
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-a", ""})
	assert.ErrorContains(t, err, "api url")
}

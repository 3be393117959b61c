package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "congress.json5")

	err := os.WriteFile(name, []byte(`{
		// checked-in defaults
		base_url: "https://api.congress.gov/v3",
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "https://api.congress.gov/v3"}, cfg)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "congress.json5")

	err := os.WriteFile(name, []byte(`{base_url: "https://api.congress.gov/v3"}`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "congress.local.json5"), []byte(`{api_key: "secret"}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		ApiKey:  "secret",
		BaseUrl: "https://api.congress.gov/v3",
	}, cfg)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "congress.json5")

	err := os.WriteFile(filepath.Join(dir, "congress.local.json5"), []byte(`{api_key: "secret"}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{ApiKey: "secret"}, cfg)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "congress.json5"))
	require.True(t, os.IsNotExist(err))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satindergrewal/watchface"
)

func TestParse(t *testing.T) {
	hclContent := `
theme          = "mono"
log_level      = "debug"
listen         = ":8443"
metrics_listen = ":9100"
tick_interval  = "500ms"
ntp_server     = "pool.ntp.org"
`
	f, err := Parse("test.hcl", []byte(hclContent))
	require.NoError(t, err)
	assert.Equal(t, "mono", f.Theme)
	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, ":8443", f.Listen)
	assert.Equal(t, ":9100", f.MetricsListen)
	assert.Equal(t, "pool.ntp.org", f.NTPServer)

	cfg, err := f.Face()
	require.NoError(t, err)
	assert.Equal(t, watchface.MonoTheme, cfg.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse("empty.hcl", nil)
	require.NoError(t, err)

	cfg, err := f.Face()
	require.NoError(t, err)
	assert.Equal(t, watchface.DefaultConfig(), cfg)
}

func TestParseRejectsUnknownAttribute(t *testing.T) {
	_, err := Parse("bad.hcl", []byte(`colour = "red"`))
	assert.Error(t, err)
}

func TestFaceErrors(t *testing.T) {
	_, err := (&File{Theme: "sepia"}).Face()
	assert.Error(t, err)

	_, err = (&File{TickInterval: "soon"}).Face()
	assert.Error(t, err)

	_, err = (&File{TickInterval: "-1s"}).Face()
	assert.Error(t, err)
}

func TestNilFileUsesDefaults(t *testing.T) {
	var f *File
	cfg, err := f.Face()
	require.NoError(t, err)
	assert.Equal(t, watchface.DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`theme = "color"`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "color", f.Theme)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuya3/INT-YAMAE/export"
)

// inDir runs the test from dir so the working-directory search path sees
// only what the test puts there.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	inDir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, export.DefaultGrid(), cfg.Grid())
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	t.Setenv("HOME", t.TempDir())

	yaml := "output_dir: out\nlog_dir: \"\"\npage_width: 10\npage_height: 5.625\nfont_dirs:\n  - /usr/share/fonts/noto\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deckgen.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Empty(t, cfg.LogDir)
	assert.Equal(t, 5.625, cfg.PageHeight)
	assert.Equal(t, []string{"/usr/share/fonts/noto"}, cfg.FontDirs)
	assert.Equal(t, 1280, cfg.RenderWidth)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output_dir: from-file\nasset_dir: assets\ncreator: file\n"), 0o644))

	t.Setenv("DECKGEN_ASSET_DIR", "from-env")
	t.Setenv("DECKGEN_CREATOR", "env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output-dir", "", "")
	fs.String("creator", "", "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse([]string{"--output-dir", "from-flag", "--verbose"}))

	cfg, err := Load(file, fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.OutputDir, "flag beats file")
	assert.Equal(t, "from-env", cfg.AssetDir, "env beats file")
	assert.Equal(t, "env", cfg.Creator, "unset flag does not mask env")
	assert.True(t, cfg.Verbose)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidPage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("page_width: 0\n"), 0o644))

	_, err := Load(file, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.RenderWidth = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.OutputDir = ""
	assert.Error(t, cfg.Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	req := require.New(t)
	cfg := Default()

	req.Equal("info", cfg.Logging.Level)
	req.Equal("text", cfg.Logging.Format)
	req.Equal("4parent", cfg.Actions.ParentLabel)
	req.Equal("4child", cfg.Actions.ChildLabel)
	req.NoError(cfg.Validate())
}

func TestLoadFromBytes_Overrides_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadFromBytes([]byte(`
logging:
  level: debug
  format: json
actions:
  child_label: extra
`))
	req.NoError(err)
	req.Equal("debug", cfg.Logging.Level)
	req.Equal("json", cfg.Logging.Format)
	req.Equal("4parent", cfg.Actions.ParentLabel)
	req.Equal("extra", cfg.Actions.ChildLabel)
}

func TestLoadFromBytes_Rejects_Unknown_Format(t *testing.T) {
	_, err := LoadFromBytes([]byte("logging:\n  format: xml\n"))
	require.ErrorContains(t, err, "invalid logging format")
}

func TestLoadFromBytes_Rejects_Empty_Label(t *testing.T) {
	_, err := LoadFromBytes([]byte("actions:\n  parent_label: \"\"\n"))
	require.Error(t, err)
}

func TestLoad_Explicit_Missing_File(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Default_File_Is_Optional(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	req.NoError(err)
	req.Equal(Default().Actions, cfg.Actions)
}

func TestLoad_Env_Overrides_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "inout.yml")
	req.NoError(os.WriteFile(path, []byte("logging:\n  level: warn\nactions:\n  parent_label: from-file\n"), 0o644))

	t.Setenv("INOUT_LOG_LEVEL", "trace")
	t.Setenv("INOUT_CHILD_LABEL", "from-env")

	cfg, err := Load(path)
	req.NoError(err)
	req.Equal("trace", cfg.Logging.Level)
	req.Equal("from-file", cfg.Actions.ParentLabel)
	req.Equal("from-env", cfg.Actions.ChildLabel)
}

func TestLoad_Malformed_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "inout.yml")
	req.NoError(os.WriteFile(path, []byte("logging: [unclosed"), 0o644))

	_, err := Load(path)
	req.ErrorContains(err, "failed to parse config file")
}

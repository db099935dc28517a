package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fspaths/internal/config"
	"fspaths/internal/paths"
	"fspaths/internal/testutil"
)

func TestApp(t *testing.T) {
	sep := string(filepath.Separator)
	tmp := sep + "tmp"

	setup := func(t *testing.T) (*App, *testutil.MockFilesystem, string) {
		t.Helper()
		cfg := config.NewConfig(t.TempDir())
		fsys := testutil.NewMockFilesystem(tmp)
		fsys.AddDirectory(sep + filepath.Join("srv", "data"))
		fsys.AddFile(sep+filepath.Join("srv", "data", "report.csv"), []byte("a,b"))

		a, err := newApp(cfg, "Test", fsys)
		require.NoError(t, err)
		return a, fsys, cfg.LogDir
	}

	t.Run("resolves an existing directory", func(t *testing.T) {
		a, _, _ := setup(t)
		defer a.Close()

		dir, err := a.ResolveDirectory(sep + filepath.Join("srv", "data"))
		require.NoError(t, err)
		assert.Equal(t, []paths.Segment{"srv", "data"}, dir.Segments())
	})

	t.Run("resolves a missing directory to the temp dir", func(t *testing.T) {
		a, _, _ := setup(t)
		defer a.Close()

		dir, err := a.ResolveDirectory(sep + filepath.Join("srv", "gone"))
		require.NoError(t, err)
		assert.Equal(t, tmp, dir.String())
		assert.True(t, dir.Substituted())
	})

	t.Run("resolves an existing file", func(t *testing.T) {
		a, _, _ := setup(t)
		defer a.Close()

		file, err := a.ResolveFile(sep + filepath.Join("srv", "data", "report.csv"))
		require.NoError(t, err)
		assert.False(t, file.Substituted())
		assert.Equal(t, paths.Segment("report.csv"), file.Name())
	})

	t.Run("resolves a missing file to the temp file", func(t *testing.T) {
		a, fsys, _ := setup(t)
		defer a.Close()

		file, err := a.ResolveFile(sep + filepath.Join("srv", "data", "missing.csv"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmp, paths.TempFileName), file.String())
		assert.True(t, fsys.Exists(file.String()))
	})

	t.Run("close logs the operation outcome", func(t *testing.T) {
		a, _, logDir := setup(t)

		_, err := a.ResolveFile(sep)
		require.Error(t, err)
		require.NoError(t, a.Close())

		data, err := os.ReadFile(filepath.Join(logDir, "fspaths.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "operation finished")
		assert.Contains(t, string(data), "status=error")
		assert.Contains(t, string(data), "base_dir=")
	})
}

func TestNewApp_defaultLogDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FSPATHS_HOME", home)

	cfg := config.NewConfig(home)
	cfg.LogDir = ""

	a, err := newApp(cfg, "Test", testutil.NewMockFilesystem(string(filepath.Separator)+"tmp"))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	data, err := os.ReadFile(filepath.Join(home, "log", "fspaths.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_dir="+home)
}

func TestNewApp_rejectsUnknownLogLevel(t *testing.T) {
	cfg := config.NewConfig(t.TempDir())
	cfg.LogLevel = "loud"

	_, err := NewApp(cfg, "Test")
	assert.Error(t, err)
}

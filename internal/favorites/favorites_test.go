package favorites

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/config"
)

type memStore struct {
	cfg     *config.Config
	saveErr error
	saves   int
}

func (m *memStore) Load() (*config.Config, error) { return m.cfg, nil }

func (m *memStore) Save(cfg *config.Config) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cfg = cfg
	m.saves++
	return nil
}

type dirFS map[string]bool

func (f dirFS) Stat(path string) (os.FileInfo, error) {
	if f[path] {
		return dirStat{name: path}, nil
	}
	return nil, os.ErrNotExist
}

type dirStat struct{ name string }

func (d dirStat) Name() string       { return d.name }
func (d dirStat) Size() int64        { return 0 }
func (d dirStat) Mode() os.FileMode  { return os.ModeDir | 0o755 }
func (d dirStat) ModTime() time.Time { return time.Time{} }
func (d dirStat) IsDir() bool        { return true }
func (d dirStat) Sys() any           { return nil }

func newService(dirs ...string) (*Service, *memStore) {
	fs := dirFS{}
	for _, d := range dirs {
		fs[d] = true
	}
	store := &memStore{cfg: config.DefaultConfig()}
	return NewService(store, fs), store
}

func TestAddAndList(t *testing.T) {
	s, store := newService("/home/u/work", "/home/u/play")

	require.NoError(t, s.Add("/home/u/work"))
	require.NoError(t, s.Add("/home/u/play"))

	favorites, err := s.List()
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "/home/u/work", favorites[0].Path)
	assert.Equal(t, DefaultColor, favorites[0].Color)
	assert.Equal(t, 2, store.saves)
}

func TestAddRejectsMissingDirectory(t *testing.T) {
	s, _ := newService()

	err := s.Add("/home/u/nope")
	var notDir *NotDirectoryError
	assert.ErrorAs(t, err, &notDir)
}

func TestAddRejectsDuplicate(t *testing.T) {
	s, _ := newService("/home/u/work")
	require.NoError(t, s.Add("/home/u/work"))

	err := s.Add("/home/u/work")
	var dup *AlreadyFavoriteError
	assert.ErrorAs(t, err, &dup)
}

func TestRemoveForgetsColor(t *testing.T) {
	s, store := newService("/home/u/work")
	require.NoError(t, s.Add("/home/u/work"))
	require.NoError(t, s.SetColor("/home/u/work", "#ff0000"))

	require.NoError(t, s.Remove("/home/u/work"))

	assert.Empty(t, store.cfg.FavoriteFolders)
	assert.NotContains(t, store.cfg.FavoriteColors, "/home/u/work")
}

func TestRemoveUnknown(t *testing.T) {
	s, _ := newService()

	err := s.Remove("/home/u/work")
	var notFav *NotFavoriteError
	assert.ErrorAs(t, err, &notFav)
}

func TestSetColor(t *testing.T) {
	s, _ := newService("/home/u/work")
	require.NoError(t, s.Add("/home/u/work"))

	require.NoError(t, s.SetColor("/home/u/work", "#00AAff"))

	favorites, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, "#00AAff", favorites[0].Color)
}

func TestSetColorValidation(t *testing.T) {
	s, _ := newService("/home/u/work")
	require.NoError(t, s.Add("/home/u/work"))

	for _, color := range []string{"red", "#12345", "", "#gggggg"} {
		err := s.SetColor("/home/u/work", color)
		var invalid *InvalidColorError
		assert.ErrorAs(t, err, &invalid, "color %q", color)
	}

	err := s.SetColor("/home/u/other", "#ffffff")
	var notFav *NotFavoriteError
	assert.ErrorAs(t, err, &notFav)
}

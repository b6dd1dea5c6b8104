// Package favorites manages the user's pinned folders: a list of paths plus
// an optional display color per path, persisted in the shared preference
// file so the GTK front-end picks changes up.
package favorites

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/config"
)

// DefaultColor is used for favorites without an explicit color.
const DefaultColor = "#1E1E23"

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ConfigStore loads and persists the widget configuration.
// config.Loader satisfies this.
type ConfigStore interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// FileSystem abstracts the directory check for new favorites.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Favorite is one pinned folder.
type Favorite struct {
	Path  string
	Color string
}

// AlreadyFavoriteError is returned when adding a path that is pinned.
type AlreadyFavoriteError struct {
	Path string
}

func (e *AlreadyFavoriteError) Error() string {
	return fmt.Sprintf("%s is already a favorite", e.Path)
}

func (e *AlreadyFavoriteError) InvalidInput() bool { return true }

// NotFavoriteError is returned when operating on a path that is not pinned.
type NotFavoriteError struct {
	Path string
}

func (e *NotFavoriteError) Error() string {
	return fmt.Sprintf("%s is not a favorite", e.Path)
}

func (e *NotFavoriteError) NotFound() bool { return true }

// NotDirectoryError is returned when a favorite candidate does not exist or
// is not a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

func (e *NotDirectoryError) InvalidInput() bool { return true }

// InvalidColorError is returned for malformed color values.
type InvalidColorError struct {
	Color string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q, expected #RGB or #RRGGBB", e.Color)
}

func (e *InvalidColorError) InvalidInput() bool { return true }

// Service manipulates the favorites list.
type Service struct {
	store ConfigStore
	fs    FileSystem
}

// NewService creates a Service with injected dependencies.
func NewService(store ConfigStore, fs FileSystem) *Service {
	if store == nil {
		panic("store is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	return &Service{store: store, fs: fs}
}

// List returns the favorites in their pinned order, colors filled in.
func (s *Service) List() ([]Favorite, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	favorites := make([]Favorite, 0, len(cfg.FavoriteFolders))
	for _, path := range cfg.FavoriteFolders {
		color := cfg.FavoriteColors[path]
		if color == "" {
			color = DefaultColor
		}
		favorites = append(favorites, Favorite{Path: path, Color: color})
	}
	return favorites, nil
}

// Add pins an existing directory.
func (s *Service) Add(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return &NotDirectoryError{Path: path}
	}

	cfg, err := s.store.Load()
	if err != nil {
		return err
	}
	for _, existing := range cfg.FavoriteFolders {
		if existing == path {
			return &AlreadyFavoriteError{Path: path}
		}
	}
	cfg.FavoriteFolders = append(cfg.FavoriteFolders, path)
	return s.store.Save(cfg)
}

// Remove unpins a favorite and forgets its color.
func (s *Service) Remove(path string) error {
	cfg, err := s.store.Load()
	if err != nil {
		return err
	}

	kept := cfg.FavoriteFolders[:0]
	found := false
	for _, existing := range cfg.FavoriteFolders {
		if existing == path {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return &NotFavoriteError{Path: path}
	}
	cfg.FavoriteFolders = kept
	delete(cfg.FavoriteColors, path)
	return s.store.Save(cfg)
}

// SetColor assigns a display color to a pinned favorite.
func (s *Service) SetColor(path, color string) error {
	if !hexColorRe.MatchString(color) {
		return &InvalidColorError{Color: color}
	}

	cfg, err := s.store.Load()
	if err != nil {
		return err
	}
	if !contains(cfg.FavoriteFolders, path) {
		return &NotFavoriteError{Path: path}
	}
	if cfg.FavoriteColors == nil {
		cfg.FavoriteColors = make(map[string]string)
	}
	cfg.FavoriteColors[path] = color
	return s.store.Save(cfg)
}

// Colors returns the explicit color assignments, sorted by path for stable
// output.
func (s *Service) Colors() (map[string]string, []string, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, nil, err
	}
	paths := make([]string, 0, len(cfg.FavoriteColors))
	for path := range cfg.FavoriteColors {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return cfg.FavoriteColors, paths, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Package favorites stores texts the user has pinned along with their color.
// Favorites live in a JSON file next to the database and survive a history
// clear or a database reset.
package favorites

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrEmptyText is returned when pinning blank text.
var ErrEmptyText = errors.New("favorite text is empty")

// Favorite is a pinned text and the color derived from it.
type Favorite struct {
	Text     string    `json:"text"`
	HexColor string    `json:"hex_color"`
	AddedAt  time.Time `json:"added_at"`
}

// fileData represents the JSON file structure.
type fileData struct {
	Version   int        `json:"version"`
	Favorites []Favorite `json:"favorites"`
}

const fileVersion = 1

func emptyData() *fileData {
	return &fileData{Version: fileVersion, Favorites: []Favorite{}}
}

// Store manages favorites persistence.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache *fileData
}

// NewStore creates a new favorites store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path, cache: emptyData()}
}

// Load reads favorites from disk. A missing or corrupted file yields an
// empty set.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.cache = emptyData()
			return nil
		}
		return err
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		s.cache = emptyData()
		return nil
	}
	if fd.Favorites == nil {
		fd.Favorites = []Favorite{}
	}

	s.cache = &fd
	return nil
}

// Add pins text with its color. Pinning an existing text updates its color
// but keeps its position.
func (s *Store) Add(text, hexColor string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	hexColor = strings.ToUpper(hexColor)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.cache.Favorites {
		if f.Text == text {
			if f.HexColor == hexColor {
				return nil
			}
			s.cache.Favorites[i].HexColor = hexColor
			return s.saveLocked()
		}
	}

	s.cache.Favorites = append(s.cache.Favorites, Favorite{
		Text:     text,
		HexColor: hexColor,
		AddedAt:  time.Now(),
	})
	return s.saveLocked()
}

// Remove unpins text. Removing an unknown text is a no-op.
func (s *Store) Remove(text string) error {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.cache.Favorites {
		if f.Text == text {
			s.cache.Favorites = append(s.cache.Favorites[:i], s.cache.Favorites[i+1:]...)
			return s.saveLocked()
		}
	}
	return nil
}

// IsFavorite reports whether text is pinned.
func (s *Store) IsFavorite(text string) bool {
	text = strings.TrimSpace(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.cache.Favorites {
		if f.Text == text {
			return true
		}
	}
	return false
}

// List returns a copy of all favorites in the order they were added.
func (s *Store) List() []Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Favorite, len(s.cache.Favorites))
	copy(result, s.cache.Favorites)
	return result
}

// Count returns the number of favorites.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache.Favorites)
}

// saveLocked writes the cache atomically (caller must hold write lock).
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

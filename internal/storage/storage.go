package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"cram/internal/card"
)

const (
	cardsKey = "cards"
	themeKey = "theme"

	// DefaultTheme is used when no stored preference exists or the
	// stored value is unrecognized.
	DefaultTheme = "dark"
)

// Store is the persistence boundary: a flat key-value store holding the
// serialized card list and the theme preference.
type Store struct {
	d *diskv.Diskv
}

// Open builds a Store rooted at dir, creating it as needed.
func Open(dir string) (*Store, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("storage dir is empty")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     trimmed,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}, nil
}

// LoadCards reads the persisted card list. A missing entry yields nil
// cards and no error. A corrupt entry is treated the same way and the
// bad value is erased so it cannot fail again on the next start.
func (s *Store) LoadCards() ([]card.Card, error) {
	raw, err := s.d.Read(cardsKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cards: %w", err)
	}

	var cards []card.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		_ = s.d.Erase(cardsKey)
		return nil, nil
	}
	for _, c := range cards {
		if !c.Valid() {
			_ = s.d.Erase(cardsKey)
			return nil, nil
		}
	}
	return cards, nil
}

// SaveCards serializes and writes the card list. Callers treat a
// failure as non-fatal: the in-memory list stays authoritative.
func (s *Store) SaveCards(cards []card.Card) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}
	if err := s.d.Write(cardsKey, raw); err != nil {
		return fmt.Errorf("write cards: %w", err)
	}
	return nil
}

// LoadTheme returns the stored theme preference, falling back to the
// default for missing or unrecognized values.
func (s *Store) LoadTheme() string {
	raw, err := s.d.Read(themeKey)
	if err != nil {
		return DefaultTheme
	}
	switch theme := strings.TrimSpace(string(raw)); theme {
	case "light", "dark":
		return theme
	}
	return DefaultTheme
}

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(theme string) error {
	if err := s.d.Write(themeKey, []byte(theme)); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

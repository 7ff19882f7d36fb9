package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultCollectionFile is the collection file used when no path is given.
const DefaultCollectionFile = "config.json"

// DefaultPurchasedFile is the purchase log used when the collection omits one.
const DefaultPurchasedFile = "card_library/purchased.txt"

// DeckSource locates one built deck remotely and on disk.
type DeckSource struct {
	// ID is the Moxfield deck identifier.
	ID string `json:"id"`
	// File is where the refreshed deck list is written.
	File string `json:"file"`
}

// Collection describes the tracked collection: the binder holding owned
// cards, the built decks, and the purchase log.
type Collection struct {
	// BinderID identifies the Moxfield trade binder with the owned cards.
	BinderID string `json:"binder_id"`
	// Decks maps a case-sensitive deck name to its source.
	Decks map[string]DeckSource `json:"decks"`
	// PurchasedFile is the raw purchase log.
	PurchasedFile string `json:"purchased_file,omitempty"`
}

// DefaultCollection returns the collection written when none exists.
func DefaultCollection() *Collection {
	return &Collection{
		BinderID: "vw7sTSczsUaDX1K9FO5tgg",
		Decks: map[string]DeckSource{
			"example_deck": {
				ID:   "MvFOpMknJUKUnL6BMoQv6w",
				File: "decks/example_deck.txt",
			},
		},
		PurchasedFile: DefaultPurchasedFile,
	}
}

// LoadCollection reads the collection file at path. When the file is absent a
// default collection is written there and returned with created set.
func LoadCollection(path string) (col *Collection, created bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		col = DefaultCollection()
		if err := SaveCollection(path, col); err != nil {
			return nil, false, err
		}
		return col, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection file: %w", err)
	}

	col = &Collection{}
	if err := json.Unmarshal(data, col); err != nil {
		return nil, false, fmt.Errorf("parse collection file %s: %w", path, err)
	}
	if col.PurchasedFile == "" {
		col.PurchasedFile = DefaultPurchasedFile
	}
	if col.Decks == nil {
		col.Decks = map[string]DeckSource{}
	}
	return col, false, nil
}

// SaveCollection writes col to path as indented JSON, creating parent directories.
func SaveCollection(path string, col *Collection) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write collection file: %w", err)
	}
	return nil
}

// DeckNames returns the configured deck names sorted ascending.
func (c *Collection) DeckNames() []string {
	names := make([]string, 0, len(c.Decks))
	for name := range c.Decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindDeck returns the name of the deck whose file or id matches.
func (c *Collection) FindDeck(file, id string) (string, bool) {
	for _, name := range c.DeckNames() {
		src := c.Decks[name]
		if file != "" && filepath.Clean(src.File) == filepath.Clean(file) {
			return name, true
		}
		if id != "" && src.ID == id {
			return name, true
		}
	}
	return "", false
}

// Validate checks the collection for missing identifiers and shared deck files.
func (c *Collection) Validate() error {
	if c.BinderID == "" {
		return errors.New("collection: binder_id is required")
	}

	files := make(map[string]string, len(c.Decks))
	for _, name := range c.DeckNames() {
		src := c.Decks[name]
		if src.ID == "" {
			return fmt.Errorf("collection: deck %q has no id", name)
		}
		if src.File == "" {
			return fmt.Errorf("collection: deck %q has no file", name)
		}
		clean := filepath.Clean(src.File)
		if other, ok := files[clean]; ok {
			return fmt.Errorf("collection: decks %q and %q share file %s", other, name, src.File)
		}
		files[clean] = name
	}
	return nil
}

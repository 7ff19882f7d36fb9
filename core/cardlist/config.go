package cardlist

import "path"

const (
	// BackendFile stores lists on the local filesystem.
	BackendFile = "file"
	// BackendObject stores lists in an object storage bucket.
	BackendObject = "object"
)

// Config holds the locations of the library lists.
type Config struct {
	// Backend selects where lists are kept (file, object).
	Backend string `mapstructure:"backend" default:"file"`
	// Dir is the directory holding the library lists.
	Dir string `mapstructure:"dir" default:"card_library"`
	// OwnedFile is the raw snapshot of the binder fetch.
	OwnedFile string `mapstructure:"owned_file" default:"owned_cards.txt"`
	// AvailableFile is the pool of cards not assigned to any deck.
	AvailableFile string `mapstructure:"available_file" default:"available_cards.txt"`
	// PurchasedFormattedFile is the summed and sorted purchase log.
	PurchasedFormattedFile string `mapstructure:"purchased_formatted_file" default:"purchased_formatted.txt"`
}

// OwnedPath returns the owned cards list name.
func (c Config) OwnedPath() string {
	return path.Join(c.Dir, c.OwnedFile)
}

// AvailablePath returns the available cards list name.
func (c Config) AvailablePath() string {
	return path.Join(c.Dir, c.AvailableFile)
}

// PurchasedFormattedPath returns the formatted purchase list name.
func (c Config) PurchasedFormattedPath() string {
	return path.Join(c.Dir, c.PurchasedFormattedFile)
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendObject:
		return true
	default:
		return false
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollection_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	col, created, err := LoadCollection(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultCollection(), col)

	// Second load reads the persisted default
	again, created, err := LoadCollection(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, col, again)
}

func TestLoadCollection_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "binder_id": "binder",
  "decks": {
    "Atraxa": {"id": "a1", "file": "decks/atraxa.txt"},
    "atraxa": {"id": "a2", "file": "decks/atraxa-2.txt"}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	col, created, err := LoadCollection(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "binder", col.BinderID)
	assert.Equal(t, DefaultPurchasedFile, col.PurchasedFile)
	assert.Equal(t, []string{"Atraxa", "atraxa"}, col.DeckNames())
	assert.NoError(t, col.Validate())

	name, ok := col.FindDeck("./decks/atraxa.txt", "")
	assert.True(t, ok)
	assert.Equal(t, "Atraxa", name)

	name, ok = col.FindDeck("", "a2")
	assert.True(t, ok)
	assert.Equal(t, "atraxa", name)

	_, ok = col.FindDeck("decks/other.txt", "zz")
	assert.False(t, ok)
}

func TestLoadCollection_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := LoadCollection(path)
	assert.ErrorContains(t, err, "parse collection file")
}

func TestCollection_Validate(t *testing.T) {
	tests := []struct {
		name string
		col  Collection
		err  string
	}{
		{name: "No binder", col: Collection{}, err: "binder_id"},
		{
			name: "No deck id",
			col:  Collection{BinderID: "b", Decks: map[string]DeckSource{"A": {File: "a.txt"}}},
			err:  "has no id",
		},
		{
			name: "No deck file",
			col:  Collection{BinderID: "b", Decks: map[string]DeckSource{"A": {ID: "1"}}},
			err:  "has no file",
		},
		{
			name: "Shared file",
			col: Collection{BinderID: "b", Decks: map[string]DeckSource{
				"A": {ID: "1", File: "decks/x.txt"},
				"B": {ID: "2", File: "decks/./x.txt"},
			}},
			err: "share file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.col.Validate(), tt.err)
		})
	}
}

// Package menu provides the daily cafe menu shown on the board.
package menu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Menu errors.
var (
	// ErrMenuUnavailable indicates the menu document could not be fetched
	// or decoded.
	ErrMenuUnavailable = errors.New("menu unavailable")

	// ErrNoMenuForDay indicates the document was fetched successfully but
	// has no entry for the requested weekday.
	ErrNoMenuForDay = errors.New("no menu for day")
)

// Item is a single dish on the menu. Name is the only required field; a
// missing description stays empty. Price is free-form text, the document
// uses values like "$8.95", "$2.90–$4.95" or "Market Price".
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Entry is one category slot on a day's menu.
type Entry struct {
	Category string
	Item     Item
}

// Day is the menu for a single weekday. Entries keep the order of the
// source document, which mirrors the printed menu layout.
type Day []Entry

// UnmarshalJSON decodes a day's category→item object while preserving the
// key order. encoding/json maps would lose it.
func (d *Day) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object for menu day, got %v", tok)
	}

	entries := Day{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected category name, got %v", keyTok)
		}

		var item Item
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("decoding item for %q: %w", category, err)
		}
		entries = append(entries, Entry{Category: category, Item: item})
	}

	*d = entries
	return nil
}

// Document is the full weekday-keyed menu. Weekday keys are English and
// capitalized ("Monday").
type Document map[string]Day

// Category icons. Unmapped categories fall back to the generic glyph.
var categoryIcons = map[string]string{
	"Breakfast":   "🥐",
	"Soup":        "🍲",
	"Deli":        "🥪",
	"Plant Power": "🌱",
	"Action":      "🔥",
}

// GenericIcon is the fallback icon for categories without a mapping.
const GenericIcon = "🍽️"

// IconFor returns the display icon for a menu category.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return GenericIcon
}

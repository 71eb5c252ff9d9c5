package pack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Card is a single card record from a pack file. Card files are edited by
// hand and diffed by translators, so records keep their original key order
// through a read-modify-write cycle.
type Card = orderedmap.OrderedMap[string, any]

// Code returns the card's unique identifier, or "" if absent.
func Code(card *Card) string {
	v, ok := card.Get("code")
	if !ok {
		return ""
	}
	code, _ := v.(string)
	return code
}

// Traits returns the card's dot-delimited traits string. The second result
// reports whether the card has a traits field at all.
func Traits(card *Card) (string, bool) {
	v, ok := card.Get("traits")
	if !ok {
		return "", false
	}
	traits, _ := v.(string)
	return traits, true
}

// SetTraits replaces the card's traits string.
func SetTraits(card *Card, traits string) {
	card.Set("traits", traits)
}

// Discover lists pack files under root, as paths relative to root.
// A .json file directly under root is a result on its own; every other
// entry is taken as a cycle directory and scanned one level deep.
// When cycles is non-empty, only those entries are considered and each
// must exist.
func Discover(root string, cycles []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	explicit := len(cycles) > 0
	if !explicit {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", root, err)
		}
		for _, entry := range entries {
			cycles = append(cycles, entry.Name())
		}
	}

	var files []string
	for _, cycle := range cycles {
		cyclePath := filepath.Join(root, cycle)
		info, err := os.Stat(cyclePath)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("cycle not found: %s", cycle)
			}
			continue
		}
		if !info.IsDir() {
			if isJSON(cycle) {
				files = append(files, cycle)
			} else if explicit {
				return nil, fmt.Errorf("cycle not found: %s", cycle)
			}
			continue
		}
		packs, err := os.ReadDir(cyclePath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", cyclePath, err)
		}
		for _, p := range packs {
			if !p.IsDir() && isJSON(p.Name()) {
				files = append(files, filepath.Join(cycle, p.Name()))
			}
		}
	}
	return files, nil
}

func isJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// ReadFile loads a pack file as a slice of key-order-preserving card
// records.
func ReadFile(path string) ([]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cards []*Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	return cards, nil
}

// WriteFile writes cards back as a pretty-printed UTF-8 JSON array,
// preserving each record's key order.
func WriteFile(path string, cards []*Card) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("error encoding %s: %v", path, err)
	}
	return nil
}

// Index maps card codes to records for counterpart lookups. Cards without
// a code are skipped.
func Index(cards []*Card) map[string]*Card {
	idx := make(map[string]*Card, len(cards))
	for _, card := range cards {
		if code := Code(card); code != "" {
			idx[code] = card
		}
	}
	return idx
}

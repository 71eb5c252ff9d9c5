package trait

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one row of a traits dictionary file: the canonical English
// trait name as code, and the display name (English in the master file,
// translated in per-language files).
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Split breaks a dot-delimited trait sentence into individual trait names
// (e.g. "Item. Weapon." becomes ["Item", "Weapon"]). Order and duplicates
// are preserved; empty segments are dropped.
func Split(traits string) []string {
	var out []string
	for _, part := range strings.Split(traits, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Merge is the inverse of Split: it joins trait names back into the
// sentence form used on cards (e.g. ["Item", "Weapon"] becomes
// "Item. Weapon."). An empty list yields an empty string.
func Merge(traits []string) string {
	if len(traits) == 0 {
		return ""
	}
	return strings.Join(traits, ". ") + "."
}

// LoadFile reads a traits dictionary file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	return entries, nil
}

// SaveFile sorts the entries by code (then name) and writes them as a
// pretty-printed UTF-8 JSON array. Non-ASCII names are written as-is.
func SaveFile(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Code != entries[j].Code {
			return entries[i].Code < entries[j].Code
		}
		return entries[i].Name < entries[j].Name
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("error encoding %s: %v", path, err)
	}
	return nil
}

// Lookup builds a code-to-name map from dictionary entries.
func Lookup(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Code] = e.Name
	}
	return m
}

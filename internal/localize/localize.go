package localize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/pack"
	"github.com/arcanaland/traitsmith/internal/trait"
)

// MakePlaceholder scans every English pack file, collects the universe of
// distinct trait names, and writes the master trait dictionary with each
// name initialized to its code. The master file is rebuilt from scratch on
// every run.
func MakePlaceholder(cfg *config.Config) error {
	files, err := pack.Discover(cfg.PackDir, nil)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, file := range files {
		cards, err := pack.ReadFile(filepath.Join(cfg.PackDir, file))
		if err != nil {
			return err
		}
		for _, card := range cards {
			traits, ok := pack.Traits(card)
			if !ok {
				continue
			}
			for _, name := range trait.Split(traits) {
				seen[name] = struct{}{}
			}
		}
		log.Debug().Str("file", file).Int("cards", len(cards)).Msg("scanned pack")
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]trait.Entry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, trait.Entry{Code: code, Name: code})
	}
	if err := trait.SaveFile(cfg.TraitsFile, entries); err != nil {
		return err
	}

	log.Info().Int("traits", len(entries)).Int("files", len(files)).
		Msg("master trait list rebuilt")
	return nil
}

// UpdatePlaceholder merges new master codes into a language's trait
// dictionary. Entries already present keep their (possibly translated)
// names untouched; the merge is purely additive. It returns the number of
// entries added.
func UpdatePlaceholder(cfg *config.Config, lang string) (int, error) {
	if _, err := os.Stat(cfg.TraitsFile); os.IsNotExist(err) {
		return 0, fmt.Errorf("traits file not found: %s", cfg.TraitsFile)
	}
	langDir := cfg.LanguageDir(lang)
	if info, err := os.Stat(langDir); err != nil || !info.IsDir() {
		return 0, fmt.Errorf("language directory not found: %s", langDir)
	}

	langFile := cfg.LanguageTraitsFile(lang)
	var entries []trait.Entry
	if _, err := os.Stat(langFile); err == nil {
		entries, err = trait.LoadFile(langFile)
		if err != nil {
			return 0, err
		}
	}
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.Code] = struct{}{}
	}

	master, err := trait.LoadFile(cfg.TraitsFile)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, e := range master {
		if _, ok := known[e.Code]; !ok {
			entries = append(entries, e)
			added++
		}
	}

	if err := trait.SaveFile(langFile, entries); err != nil {
		return 0, err
	}

	log.Info().Str("lang", lang).Int("added", added).Int("total", len(entries)).
		Msg("placeholder updated")
	return added, nil
}

// UpdateTraits recomputes the traits string of translated cards from their
// English counterparts, mapping each trait through the language's
// dictionary. With overwrite disabled, a card whose traits already differ
// from the English source is taken as hand-translated and left alone.
// A trait with no dictionary entry is a hard error: the dictionary must be
// seeded with UpdatePlaceholder first. Returns the number of rewritten
// pack files.
func UpdateTraits(cfg *config.Config, lang string, cycles []string, overwrite bool) (int, error) {
	entries, err := trait.LoadFile(cfg.LanguageTraitsFile(lang))
	if err != nil {
		return 0, err
	}
	lookup := trait.Lookup(entries)

	transRoot := cfg.LanguagePackDir(lang)
	files, err := pack.Discover(transRoot, cycles)
	if err != nil {
		return 0, err
	}
	var paired []string
	for _, file := range files {
		if info, err := os.Stat(filepath.Join(cfg.PackDir, file)); err == nil && !info.IsDir() {
			paired = append(paired, file)
		}
	}
	if len(paired) == 0 {
		return 0, fmt.Errorf("no translated pack files with an English counterpart under %s", transRoot)
	}

	written := 0
	for _, file := range paired {
		english, err := pack.ReadFile(filepath.Join(cfg.PackDir, file))
		if err != nil {
			return written, err
		}
		transPath := filepath.Join(transRoot, file)
		translated, err := pack.ReadFile(transPath)
		if err != nil {
			return written, err
		}

		index := pack.Index(english)
		changed := false
		for _, card := range translated {
			current, ok := pack.Traits(card)
			if !ok {
				continue
			}
			source, ok := index[pack.Code(card)]
			if !ok {
				continue
			}
			sourceTraits, _ := pack.Traits(source)
			if !overwrite && current != sourceTraits {
				// Already hand-translated.
				continue
			}

			names := trait.Split(sourceTraits)
			mapped := make([]string, 0, len(names))
			for _, name := range names {
				translation, ok := lookup[name]
				if !ok {
					return written, fmt.Errorf("trait %q has no %s translation in %s",
						name, lang, cfg.LanguageTraitsFile(lang))
				}
				mapped = append(mapped, translation)
			}
			if merged := trait.Merge(mapped); merged != current {
				pack.SetTraits(card, merged)
				changed = true
			}
		}

		if changed {
			if err := pack.WriteFile(transPath, translated); err != nil {
				return written, err
			}
			written++
			log.Debug().Str("file", file).Msg("pack rewritten")
		}
	}

	log.Info().Str("lang", lang).Int("files", written).Msg("traits propagated")
	return written, nil
}

// Report summarizes a language's trait dictionary against the master list.
type Report struct {
	Total      int      // entries in the language dictionary
	Translated int      // entries whose name differs from the code
	Missing    []string // master codes absent from the dictionary
}

// Status compares a language's trait dictionary with the master list.
func Status(cfg *config.Config, lang string) (*Report, error) {
	master, err := trait.LoadFile(cfg.TraitsFile)
	if err != nil {
		return nil, err
	}
	entries, err := trait.LoadFile(cfg.LanguageTraitsFile(lang))
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(entries)}
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.Code] = struct{}{}
		if e.Name != e.Code {
			report.Translated++
		}
	}
	for _, e := range master {
		if _, ok := known[e.Code]; !ok {
			report.Missing = append(report.Missing, e.Code)
		}
	}
	return report, nil
}

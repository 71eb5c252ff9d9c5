package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/traitsmith/internal/config"
	"github.com/arcanaland/traitsmith/internal/pack"
	"github.com/arcanaland/traitsmith/internal/trait"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a content repository for problems that would break or
// silently degrade a localization run: missing layout pieces, duplicate
// trait codes, dictionary gaps, and orphaned translated packs.
type Validator struct {
	Config  *config.Config
	Lang    string
	Results ValidationResults
}

func NewValidator(cfg *config.Config, lang string) *Validator {
	return &Validator{
		Config:  cfg,
		Lang:    lang,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	universe, err := v.validatePackTree()
	if err != nil {
		return v.Results, err
	}

	v.validateMasterList(universe)
	v.validateLanguage(universe)

	return v.Results, nil
}

// validatePackTree walks the English packs, checking card records and
// collecting the trait universe for the dictionary checks.
func (v *Validator) validatePackTree() (map[string]struct{}, error) {
	files, err := pack.Discover(v.Config.PackDir, nil)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("no pack files under %s", v.Config.PackDir))
	}

	universe := make(map[string]struct{})
	for _, file := range files {
		cards, err := pack.ReadFile(filepath.Join(v.Config.PackDir, file))
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, err.Error())
			continue
		}
		seen := make(map[string]struct{}, len(cards))
		for i, card := range cards {
			code := pack.Code(card)
			if code == "" {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s: card %d has no code", file, i))
				continue
			}
			if _, dup := seen[code]; dup {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s: duplicate card code %s", file, code))
			}
			seen[code] = struct{}{}
			if traits, ok := pack.Traits(card); ok {
				for _, name := range trait.Split(traits) {
					universe[name] = struct{}{}
				}
			}
		}
	}
	return universe, nil
}

// validateMasterList checks the master traits file against the trait
// universe of the English packs.
func (v *Validator) validateMasterList(universe map[string]struct{}) {
	entries, err := trait.LoadFile(v.Config.TraitsFile)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("master traits file unreadable: %v (run 'traitsmith extract')", err))
		return
	}

	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := known[e.Code]; dup {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("master list has duplicate code %s", e.Code))
		}
		known[e.Code] = struct{}{}
		if _, used := universe[e.Code]; !used {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("master code %s is no longer used by any pack", e.Code))
		}
	}
	for code := range universe {
		if _, ok := known[code]; !ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("trait %s missing from master list (run 'traitsmith extract')", code))
		}
	}
}

// validateLanguage checks the language's dictionary coverage and that
// every translated pack mirrors an English one.
func (v *Validator) validateLanguage(universe map[string]struct{}) {
	langDir := v.Config.LanguageDir(v.Lang)
	if info, err := os.Stat(langDir); err != nil || !info.IsDir() {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("language directory not found: %s", langDir))
		return
	}

	entries, err := trait.LoadFile(v.Config.LanguageTraitsFile(v.Lang))
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("dictionary unreadable: %v (run 'traitsmith seed %s')", err, v.Lang))
	} else {
		lookup := trait.Lookup(entries)
		for code := range universe {
			if _, ok := lookup[code]; !ok {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("trait %s has no %s dictionary entry (run 'traitsmith seed %s')",
						code, v.Lang, v.Lang))
			}
		}
		for _, e := range entries {
			if e.Name == e.Code {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("trait %s is still untranslated", e.Code))
			}
		}
	}

	transRoot := v.Config.LanguagePackDir(v.Lang)
	if _, err := os.Stat(transRoot); os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("no translated pack tree under %s", transRoot))
		return
	}
	files, err := pack.Discover(transRoot, nil)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}
	for _, file := range files {
		if _, err := os.Stat(filepath.Join(v.Config.PackDir, file)); os.IsNotExist(err) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s has no English counterpart", filepath.Join(transRoot, file)))
		}
	}
}

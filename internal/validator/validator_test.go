package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/traitsmith/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		PackDir:         filepath.Join(dir, "pack"),
		TranslationDir:  filepath.Join(dir, "translations"),
		TraitsFile:      filepath.Join(dir, "traits.json"),
		DefaultLanguage: "ko",
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestValidateCleanTree(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.PackDir, "core", "core.json"),
		`[{"code": "01001", "traits": "Item."}]`)
	writeFile(t, cfg.TraitsFile, `[{"code": "Item", "name": "Item"}]`)
	writeFile(t, cfg.LanguageTraitsFile("ko"), `[{"code": "Item", "name": "아이템"}]`)
	writeFile(t, filepath.Join(cfg.LanguagePackDir("ko"), "core", "core.json"),
		`[{"code": "01001", "traits": "Item."}]`)

	results, err := NewValidator(cfg, "ko").Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateMissingPackDir(t *testing.T) {
	cfg := testConfig(t)
	_, err := NewValidator(cfg, "ko").Validate()
	assert.Error(t, err)
}

func TestValidateFindsProblems(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.PackDir, "core", "core.json"),
		`[{"code": "01001", "traits": "Item. Weapon."}, {"code": "01001"}, {"name": "codeless"}]`)
	// Master list is stale: Weapon is missing, Spell is unused.
	writeFile(t, cfg.TraitsFile,
		`[{"code": "Item", "name": "Item"}, {"code": "Spell", "name": "Spell"}]`)
	// Dictionary misses Weapon and still has Item untranslated.
	writeFile(t, cfg.LanguageTraitsFile("ko"), `[{"code": "Item", "name": "Item"}]`)
	// Orphan translated pack.
	writeFile(t, filepath.Join(cfg.LanguagePackDir("ko"), "core", "orphan.json"), `[]`)

	results, err := NewValidator(cfg, "ko").Validate()
	require.NoError(t, err)

	joined := func(list []string) string {
		out := ""
		for _, s := range list {
			out += s + "\n"
		}
		return out
	}
	errs := joined(results.Errors)
	warns := joined(results.Warnings)

	assert.Contains(t, errs, "duplicate card code 01001")
	assert.Contains(t, errs, "has no code")
	assert.Contains(t, errs, "trait Weapon missing from master list")
	assert.Contains(t, errs, "trait Weapon has no ko dictionary entry")
	assert.Contains(t, errs, "no English counterpart")
	assert.Contains(t, warns, "Spell is no longer used")
	assert.Contains(t, warns, "Item is still untranslated")
}

func TestValidateMissingLanguageDir(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.PackDir, "core", "core.json"), `[{"code": "01001"}]`)
	writeFile(t, cfg.TraitsFile, `[]`)

	results, err := NewValidator(cfg, "ko").Validate()
	require.NoError(t, err)
	assert.NotEmpty(t, results.Errors)
}

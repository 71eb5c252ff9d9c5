package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory, next to the
// content it describes.
const ConfigFileName = "traitsmith.toml"

// Config represents the tool configuration. Every field has a default
// matching the standard content-repository layout, so running without a
// config file is the common case.
type Config struct {
	PackDir         string `toml:"pack_dir"`
	TranslationDir  string `toml:"translation_dir"`
	TraitsFile      string `toml:"traits_file"`
	DefaultLanguage string `toml:"default_language"`
}

// Default returns the configuration for the standard layout.
func Default() *Config {
	return &Config{
		PackDir:         "pack",
		TranslationDir:  "translations",
		TraitsFile:      "traits.json",
		DefaultLanguage: "ko",
	}
}

// Load reads traitsmith.toml from the working directory if present,
// filling unset fields with defaults. A missing file is not an error.
func Load() (*Config, error) {
	config := Default()

	if _, err := os.Stat(ConfigFileName); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(ConfigFileName, config); err != nil {
		return nil, fmt.Errorf("error decoding %s: %v", ConfigFileName, err)
	}

	defaults := Default()
	if config.PackDir == "" {
		config.PackDir = defaults.PackDir
	}
	if config.TranslationDir == "" {
		config.TranslationDir = defaults.TranslationDir
	}
	if config.TraitsFile == "" {
		config.TraitsFile = defaults.TraitsFile
	}
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = defaults.DefaultLanguage
	}

	return config, nil
}

// LanguageDir returns the translation root for a language code.
func (c *Config) LanguageDir(lang string) string {
	return filepath.Join(c.TranslationDir, lang)
}

// LanguageTraitsFile returns the path of a language's trait dictionary.
func (c *Config) LanguageTraitsFile(lang string) string {
	return filepath.Join(c.TranslationDir, lang, filepath.Base(c.TraitsFile))
}

// LanguagePackDir returns the translated pack tree for a language code,
// mirroring the English tree under PackDir.
func (c *Config) LanguagePackDir(lang string) string {
	return filepath.Join(c.TranslationDir, lang, filepath.Base(c.PackDir))
}

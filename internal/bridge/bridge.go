// Package bridge converts trait dictionaries to and from a tab-separated
// text form, so translators can bulk-edit names in a plain editor or a
// spreadsheet and feed the result back.
package bridge

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/traitsmith/internal/trait"
)

// Export writes one "code<TAB>name" line per dictionary entry, in file
// order.
func Export(jsonPath, textPath string) error {
	entries, err := trait.LoadFile(jsonPath)
	if err != nil {
		return err
	}

	file, err := os.Create(textPath)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", textPath, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Code, e.Name)
	}
	return w.Flush()
}

// Import applies edited names from a tab-separated text file back onto a
// trait dictionary. Only codes already present in the dictionary are
// updated; unknown codes are ignored. Blank lines are skipped; a
// non-blank line without a tab is an error. The dictionary is rewritten
// re-sorted by code.
func Import(jsonPath, textPath string) error {
	entries, err := trait.LoadFile(jsonPath)
	if err != nil {
		return err
	}
	names := trait.Lookup(entries)

	file, err := os.Open(textPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, name, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: missing tab separator", textPath, lineno)
		}
		code, name = strings.TrimSpace(code), strings.TrimSpace(name)
		if _, known := names[code]; known {
			names[code] = name
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %v", textPath, err)
	}

	updated := make([]trait.Entry, 0, len(names))
	for code, name := range names {
		updated = append(updated, trait.Entry{Code: code, Name: name})
	}
	return trait.SaveFile(jsonPath, updated)
}

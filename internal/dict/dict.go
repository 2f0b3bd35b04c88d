// Package dict loads the English→Twi dictionary from its CSV file.
//
// The file has a header row with columns "english" and "twi" plus an optional
// "type" column ("word" or "phrase", default "word"). Word and phrase entries
// live in separate maps keyed by the lowercased English text. The loader never
// fails: a missing or unreadable file degrades to empty maps with a warning,
// so translation always proceeds (it just translates less).
package dict

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/akanlabs/twi-translator/internal/diag"
	"github.com/akanlabs/twi-translator/pkg/log"
)

// Load reads the dictionary file at path and returns the word map and the
// phrase map. The file is fully consumed and closed before returning; nothing
// is cached, so callers get a fresh view of the file on every call.
func Load(path string, rec *diag.Recorder) (words, phrases map[string]string) {
	words = make(map[string]string)
	phrases = make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("dictionary file %s not found, using empty dictionary", path)
			rec.Printf("Warning: %s not found. Using empty dictionary.", path)
		} else {
			log.Warn("failed to open dictionary file %s: %v", path, err)
			rec.Printf("Warning: could not open %s. Using empty dictionary.", path)
		}
		return words, phrases
	}
	defer file.Close()

	if err := read(file, words, phrases); err != nil {
		log.Warn("failed to read dictionary file %s: %v", path, err)
		rec.Printf("Warning: could not read %s. Using empty dictionary.", path)
		return make(map[string]string), make(map[string]string)
	}
	return words, phrases
}

func read(file *os.File, words, phrases map[string]string) error {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	englishCol, twiCol, typeCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "english":
			englishCol = i
		case "twi":
			twiCol = i
		case "type":
			typeCol = i
		}
	}
	if englishCol < 0 || twiCol < 0 {
		return fmt.Errorf("header %v is missing english/twi columns", header)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	for _, row := range records {
		english := strings.TrimSpace(row[englishCol])
		twi := strings.TrimSpace(row[twiCol])
		if english == "" {
			continue
		}

		entryType := "word"
		if typeCol >= 0 && typeCol < len(row) {
			entryType = strings.ToLower(strings.TrimSpace(row[typeCol]))
		}

		if entryType == "phrase" {
			phrases[strings.ToLower(english)] = twi
		} else {
			words[strings.ToLower(english)] = twi
		}
	}
	return nil
}

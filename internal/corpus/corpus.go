// Package corpus loads the text and word-frequency-list files that drive
// the layout objective function: a directory of ".txt" files is turned
// into a frequency-sorted word list, each word expressed as a sequence of
// character numbers (see package layout), cached to JSON inside the
// source directory so repeated runs skip re-tokenizing large corpora.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mw8/white-keyboard-layout/internal/layout"
	"github.com/mw8/white-keyboard-layout/internal/objective"
	"github.com/mw8/white-keyboard-layout/internal/xerr"
)

// MinWordFrequency is the accumulated frequency a word must exceed across
// every file in the directory to be kept.
const MinWordFrequency = 20.0

// Special per-file frequency multipliers for the two named word-frequency
// lists the reference corpus ships with; every other ".wfl.txt" file gets a
// multiplier of 1.0.
const (
	corpus1Coefficient = 1e-3
	corpus2Coefficient = 0.50
)

// cacheEntry is the on-disk JSON representation of a loaded corpus.
type cacheEntry struct {
	Word string  `json:"word"`
	Freq float32 `json:"freq"`
}

// Load walks dir (non-recursively) for ".txt" files, builds a combined
// word-frequency table, filters it down to words above MinWordFrequency,
// sorts it by descending frequency, and returns it as objective.Word
// entries ready for objective.New. Files ending in ".wfl.txt" are parsed as
// tab-separated "word\tfrequency" lists; every other ".txt" file is
// tokenized as free text. A JSON cache is kept inside dir
// (".corpus_cache.json") and reused whenever it is newer than every source
// file.
func Load(dir string) ([]objective.Word, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading directory %s: %w", dir, err)
	}

	var sourceFiles []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		sourceFiles = append(sourceFiles, filepath.Join(dir, e.Name()))
	}

	cachePath := filepath.Join(dir, ".corpus_cache.json")
	if cached, ok := tryLoadCache(cachePath, sourceFiles); ok {
		return toWords(cached), nil
	}

	counts := make(map[string]float32)
	for _, path := range sourceFiles {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
		}
		if err := validateASCIISubset(name, data); err != nil {
			return nil, err
		}
		if strings.HasSuffix(name, ".wfl.txt") {
			if err := loadWordFrequencyList(name, data, multiplierFor(name), counts); err != nil {
				return nil, err
			}
		} else {
			loadFreeText(string(data), counts)
		}
	}

	sorted := sortedEntries(counts)
	if err := saveCache(cachePath, sorted); err != nil {
		return nil, err
	}
	return toWords(sorted), nil
}

func multiplierFor(name string) float32 {
	switch name {
	case "corpus_1.wfl.txt":
		return corpus1Coefficient
	case "corpus_2.wfl.txt":
		return corpus2Coefficient
	default:
		return 1.0
	}
}

// validateASCIISubset reports the first character outside the printable
// ASCII range (plus tab, CR, LF) found in data, identifying the offending
// file, line and character for diagnostics.
func validateASCIISubset(name string, data []byte) error {
	line := 1
	for _, b := range data {
		switch {
		case b == '\n':
			line++
		case b == '\t' || b == '\r':
		case b < 0x20 || b > 0x7E:
			return fmt.Errorf("corpus: %s line %d: invalid character %q (0x%02x)", name, line, rune(b), b)
		}
	}
	return nil
}

// loadWordFrequencyList parses tab-separated "word\tfrequency" lines and
// adds each (scaled by multiplier) to counts.
func loadWordFrequencyList(name string, data []byte, multiplier float32, counts map[string]float32) error {
	lineNum := 0
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return fmt.Errorf("corpus: %s line %d: missing frequency column", name, lineNum)
		}
		word := strings.TrimSpace(fields[0])
		freq, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return fmt.Errorf("corpus: %s line %d: %q is not a number", name, lineNum, fields[1])
		}
		counts[word] += float32(freq) * multiplier
	}
	return scanner.Err()
}

// loadFreeText tokenizes raw text into runs of [A-Za-z'] and adds each run,
// along with every other character it encounters as its own single
// character word, to counts. Whitespace (space, tab, CR, LF) is a plain
// token separator and never becomes a word of its own.
func loadFreeText(text string, counts map[string]float32) {
	text = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(text)
	for _, field := range strings.Split(text, " ") {
		if field == "" {
			continue
		}
		start := 0
		for i := 0; i < len(field); i++ {
			c := field[i]
			if isWordChar(c) {
				continue
			}
			if i > start {
				counts[field[start:i]]++
			}
			counts[string(c)]++
			start = i + 1
		}
		if start < len(field) {
			counts[field[start:]]++
		}
	}
}

func isWordChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '\''
}

func sortedEntries(counts map[string]float32) []cacheEntry {
	var out []cacheEntry
	for word, freq := range counts {
		if freq > MinWordFrequency {
			out = append(out, cacheEntry{Word: word, Freq: freq})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Freq > out[j].Freq })
	return out
}

func toWords(entries []cacheEntry) []objective.Word {
	words := make([]objective.Word, len(entries))
	for i, e := range entries {
		chars := make([]byte, len(e.Word))
		for j := 0; j < len(e.Word); j++ {
			chars[j] = layout.CharNumber(e.Word[j])
		}
		words[i] = objective.Word{Chars: chars, Freq: e.Freq}
	}
	return words
}

// tryLoadCache returns the cached entries if cachePath exists and is newer
// than every file in sourceFiles.
func tryLoadCache(cachePath string, sourceFiles []string) ([]cacheEntry, bool) {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return nil, false
	}
	for _, src := range sourceFiles {
		srcInfo, err := os.Stat(src)
		if err != nil {
			return nil, false
		}
		if srcInfo.ModTime().After(cacheInfo.ModTime()) {
			return nil, false
		}
	}

	f, err := os.Open(cachePath)
	if err != nil {
		return nil, false
	}
	defer xerr.CloseFile(f)

	var entries []cacheEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, false
	}
	return entries, true
}

func saveCache(cachePath string, entries []cacheEntry) error {
	f, err := os.Create(cachePath)
	if err != nil {
		return fmt.Errorf("corpus: creating cache %s: %w", cachePath, err)
	}
	defer xerr.CloseFile(f)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("corpus: writing cache %s: %w", cachePath, err)
	}
	return nil
}

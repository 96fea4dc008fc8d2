// Package keywords counts dictionary hits in free text with an Aho-Corasick
// automaton. Matching ignores case, accents, punctuation and common leet speak,
// and only counts whole words: runs of spaces, punctuation and symbols fold to a
// single separator that every pattern must find on both sides.
package keywords

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Matcher struct {
	log     *slog.Logger
	machine *goahocorasick.Machine
	owners  map[string]string
	labels  []string
}

// Hit is one dictionary word found in a text, with the label it belongs to.
type Hit struct {
	Label string
	Word  string
	Pos   int
}

// NewMatcher builds one automaton over every label's words.
// A word listed under several labels belongs to the first label in sorted order.
func NewMatcher(log *slog.Logger, dictionary map[string][]string) (*Matcher, error) {
	labels := make([]string, 0, len(dictionary))
	for label := range dictionary {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	owners := make(map[string]string)
	var patterns [][]rune
	for _, label := range labels {
		for _, word := range dictionary[label] {
			normalized := normalizeRunes([]rune(word))
			if len(normalized) == 0 {
				continue
			}
			key := string(normalized)
			if _, ok := owners[key]; ok {
				continue
			}
			owners[key] = label
			patterns = append(patterns, padded(normalized))
		}
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("keyword dictionary has no usable word")
	}
	sort.Slice(patterns, func(i, j int) bool { return string(patterns[i]) < string(patterns[j]) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("building keyword automaton: %w", err)
	}
	log.Debug("Keyword matcher ready", "labels", len(labels), "patterns", len(patterns))
	return &Matcher{log: log, machine: m, owners: owners, labels: labels}, nil
}

// Labels returns the dictionary labels in sorted order.
func (m *Matcher) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Find returns every whole-word hit in text. Pos is the offset of the word in
// the normalized text.
func (m *Matcher) Find(text string) []Hit {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return nil
	}
	terms := m.machine.MultiPatternSearch(padded(normalized), false)
	if len(terms) == 0 {
		return nil
	}
	hits := make([]Hit, 0, len(terms))
	for _, term := range terms {
		word := strings.Trim(string(term.Word), separator)
		hits = append(hits, Hit{Label: m.owners[word], Word: word, Pos: term.Pos})
	}
	return hits
}

// Count returns the number of hits per label. Labels without hits are absent.
func (m *Matcher) Count(text string) map[string]int {
	counts := make(map[string]int)
	for _, hit := range m.Find(text) {
		counts[hit.Label]++
	}
	return counts
}

const separator = " "

// normalizeRunes lowercases and simplifies every rune, then folds each run of
// noise to one space. The result has no leading or trailing space.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	gap := false
	for _, r := range input {
		clean := simplifyRune(unicode.ToLower(r))
		if isNoise(clean) {
			gap = len(out) > 0
			continue
		}
		if gap {
			out = append(out, ' ')
			gap = false
		}
		out = append(out, clean)
	}
	return out
}

func padded(runes []rune) []rune {
	out := make([]rune, 0, len(runes)+2)
	out = append(out, ' ')
	out = append(out, runes...)
	return append(out, ' ')
}

// simplifyRune folds accented letters and common leet speak to plain ASCII letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@', 'á', 'à', 'â', 'ã', 'ä':
		return 'a'
	case '3', '€', 'é', 'è', 'ê', 'ë':
		return 'e'
	case '1', 'í', 'ì', 'î', 'ï':
		return 'i'
	case '0', 'ó', 'ò', 'ô', 'õ', 'ö':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case '5', '$':
		return 's'
	case 'ç':
		return 'c'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}

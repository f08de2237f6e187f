package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// NameFilter masks blocked words inside player display names. Matching is
// case-insensitive, ignores punctuation and spacing, and folds common leet
// substitutions, so "B.4-d" still matches "bad".
type NameFilter struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

type runeMapping struct {
	normalized []rune
	origIdx    []int
}

func NewNameFilter(blocked []string, replacement rune) (*NameFilter, error) {
	patterns := make([][]rune, 0, len(blocked))
	for _, word := range blocked {
		if p := fold([]rune(strings.TrimSpace(word))); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return &NameFilter{replacement: replacement}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &NameFilter{matcher: m, replacement: replacement}, nil
}

// Censor replaces every rune covered by a blocked word, keeping the rest of
// the name, including the noise between matched letters, untouched.
func (f *NameFilter) Censor(original string) string {
	if f == nil || f.matcher == nil {
		return original
	}
	mapping := mapRunes(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	spans := f.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	out := []rune(original)
	for _, span := range spans {
		start, end := span.Pos, span.Pos+len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			out[i] = f.replacement
		}
	}
	return string(out)
}

func mapRunes(input string) runeMapping {
	orig := []rune(input)
	m := runeMapping{
		normalized: make([]rune, 0, len(orig)),
		origIdx:    make([]int, 0, len(orig)),
	}
	for i, r := range orig {
		clean := simplify(r)
		if isNoise(clean) {
			continue
		}
		m.normalized = append(m.normalized, unicode.ToLower(clean))
		m.origIdx = append(m.origIdx, i)
	}
	return m
}

func fold(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplify(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplify undoes leet spelling.
func simplify(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}

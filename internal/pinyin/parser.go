// Package pinyin looks up toneless Pinyin readings of Han characters and
// checks spellings against the standard syllable inventory.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser handles Hanzi to pinyin lookup.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Normal // No tone marks: zhong
	args.Heteronym = true        // Return all possible readings
	return &Parser{args: args}
}

// Reading is one syllable of converted text.
type Reading struct {
	Char      string   // The source character
	Syllables []string // Toneless readings, empty for non-Han runes
}

// Readings returns every toneless reading of a Han character, with ü
// written as v. Non-Han runes return nil.
func (p *Parser) Readings(char rune) []string {
	if !unicode.Is(unicode.Han, char) {
		return nil
	}
	result := gopinyin.SinglePinyin(char, p.args)
	if len(result) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(result))
	readings := make([]string, 0, len(result))
	for _, r := range result {
		r = Normalize(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		readings = append(readings, r)
	}
	return readings
}

// ParseText splits text into characters and looks each one up.
func (p *Parser) ParseText(text string) []Reading {
	var out []Reading
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, Reading{Char: string(r), Syllables: p.Readings(r)})
	}
	return out
}

// Normalize lowercases a toneless syllable and writes ü as v.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "ü", "v")
	return strings.ReplaceAll(s, "u:", "v")
}

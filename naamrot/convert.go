// Package naamrot rewrites English text into the stylized Naamrot phonetic
// spelling. Only alphabetic word tokens are touched; whitespace,
// punctuation and digits pass through byte-identical, and the whole result
// is upper-cased.
package naamrot

import (
	"bytes"
	"sort"
	"strings"
	"unicode"
)

// A Converter holds the exception table and the protected-suffix list. It
// is immutable after construction and safe for concurrent use.
type Converter struct {
	exceptions []ExceptionRule
	protected  []string
}

// NewConverter builds a Converter over the given tables. Exceptions keep
// their order; protected suffixes are upper-cased and sorted longest-first
// so the longest match always decides the swap boundary.
func NewConverter(exceptions []ExceptionRule, protectedSuffixes []string) *Converter {
	exc := make([]ExceptionRule, len(exceptions))
	copy(exc, exceptions)
	prot := make([]string, len(protectedSuffixes))
	for i, s := range protectedSuffixes {
		prot[i] = strings.ToUpper(s)
	}
	sort.SliceStable(prot, func(i, j int) bool {
		return len(prot[i]) > len(prot[j])
	})
	return &Converter{exceptions: exc, protected: prot}
}

var defaultConverter = NewConverter(defaultExceptions, defaultProtectedSuffixes)

// Default returns the Converter over the built-in tables.
func Default() *Converter {
	return defaultConverter
}

// Convert rewrites text using the built-in tables.
func Convert(text string) string {
	return defaultConverter.Convert(text)
}

// ExceptionRules returns a copy of the exception table.
func (c *Converter) ExceptionRules() []ExceptionRule {
	out := make([]ExceptionRule, len(c.exceptions))
	copy(out, c.exceptions)
	return out
}

// ProtectedSuffixes returns a copy of the protected-suffix list,
// longest-first.
func (c *Converter) ProtectedSuffixes() []string {
	out := make([]string, len(c.protected))
	copy(out, c.protected)
	return out
}

// Convert rewrites text. It is total: any string goes in, including empty
// or letter-free input, and no error can come back.
func (c *Converter) Convert(text string) string {
	var buf bytes.Buffer
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			buf.WriteRune(runes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(runes) {
			if unicode.IsLetter(runes[j]) {
				j++
				continue
			}
			// A single hyphen or apostrophe stays inside the token
			// when letters surround it.
			if isSeparator(runes[j]) && j+1 < len(runes) &&
				unicode.IsLetter(runes[j-1]) && unicode.IsLetter(runes[j+1]) {
				j++
				continue
			}
			break
		}
		buf.WriteString(c.convertToken(string(runes[i:j])))
		i = j
	}
	return strings.ToUpper(buf.String())
}

// convertToken splits a token on its separators, converts each word-part
// and rejoins in the original order.
func (c *Converter) convertToken(token string) string {
	var buf bytes.Buffer
	rs := []rune(token)
	start := 0
	for i := 0; i <= len(rs); i++ {
		if i < len(rs) && !isSeparator(rs[i]) {
			continue
		}
		buf.WriteString(c.convertPart(string(rs[start:i])))
		if i < len(rs) {
			buf.WriteRune(rs[i])
		}
		start = i + 1
	}
	return buf.String()
}

// convertPart runs one word-part through the pipeline. An exception hit
// replaces the part outright; otherwise the stages run in their fixed
// priority order over a fresh segment sequence.
func (c *Converter) convertPart(part string) string {
	if out, ok := c.matchException(part); ok {
		return out
	}
	segs := newSegments(part)
	segs, endingChangedToAH := applySuffixRules(segs)
	segs = applyPrefixRules(segs)
	segs = applyClusterRule(segs)
	segs = c.applyVowelSwap(segs, endingChangedToAH)
	return segs.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '\''
}

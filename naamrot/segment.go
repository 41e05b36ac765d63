package naamrot

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// A segment is one character of a word-part's working spelling. original
// marks characters the user typed; characters written by a rule are never
// original, which permanently exempts them from the vowel swap.
type segment struct {
	r        rune
	original bool
}

type segments []segment

// newSegments builds the working spelling for one word-part. The part is
// upper-cased on entry so every rule can compare against upper-case
// spellings.
func newSegments(part string) segments {
	up := strings.ToUpper(part)
	segs := make(segments, 0, utf8.RuneCountInString(up))
	for _, r := range up {
		segs = append(segs, segment{r: r, original: true})
	}
	return segs
}

func (s segments) String() string {
	var buf bytes.Buffer
	for _, sg := range s {
		buf.WriteRune(sg.r)
	}
	return buf.String()
}

// replace substitutes segments [i, j) with the characters of text in a
// single step. Replacement segments are never original. replace(i, i, text)
// is an insertion.
func (s segments) replace(i, j int, text string) segments {
	out := make(segments, 0, len(s)-(j-i)+utf8.RuneCountInString(text))
	out = append(out, s[:i]...)
	for _, r := range text {
		out = append(out, segment{r: r})
	}
	out = append(out, s[j:]...)
	return out
}

func (s segments) startsWith(prefix string) bool {
	rs := []rune(prefix)
	if len(rs) > len(s) {
		return false
	}
	for i, r := range rs {
		if s[i].r != r {
			return false
		}
	}
	return true
}

func (s segments) endsWith(suffix string) bool {
	rs := []rune(suffix)
	if len(rs) > len(s) {
		return false
	}
	off := len(s) - len(rs)
	for i, r := range rs {
		if s[off+i].r != r {
			return false
		}
	}
	return true
}

func (s segments) matchAt(i int, text string) bool {
	rs := []rune(text)
	if i+len(rs) > len(s) {
		return false
	}
	for k, r := range rs {
		if s[i+k].r != r {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	return r == 'A' || r == 'E' || r == 'I' || r == 'O' || r == 'U'
}

// isConsonant reports whether r is a letter that is not one of the five
// vowels. Y counts as a consonant.
func isConsonant(r rune) bool {
	return !isVowel(r)
}

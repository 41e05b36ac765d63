package naamrot

import (
	"strings"
	"unicode/utf8"
)

// applyVowelSwap is the lowest-priority stage. It rewrites original A, E
// and I segments to 'o' left to right. O and U never swap. All three
// protections are computed from the pre-swap state, so one swap never
// enables or blocks another.
func (c *Converter) applyVowelSwap(segs segments, endingChangedToAH bool) segments {
	boundary := c.suffixBoundary(segs)
	tail := tailProtected(segs, endingChangedToAH)
	for i := range segs {
		if i >= boundary {
			break
		}
		if !segs[i].original || tail[i] {
			continue
		}
		r := segs[i].r
		if r != 'A' && r != 'E' && r != 'I' {
			continue
		}
		// Digraph protection: a vowel directly followed by another
		// vowel letter stays.
		if i+1 < len(segs) && isVowel(segs[i+1].r) {
			continue
		}
		segs[i] = segment{r: 'o'}
	}
	return segs
}

// suffixBoundary returns the index of the first character covered by a
// protected suffix, or len(segs) when none matches. The table is held
// longest-first, so the longest matching entry decides.
func (c *Converter) suffixBoundary(segs segments) int {
	render := segs.String()
	for _, suf := range c.protected {
		if strings.HasSuffix(render, suf) {
			return len(segs) - utf8.RuneCountInString(suf)
		}
	}
	return len(segs)
}

// tailProtected marks the original vowels exempt at the end of the part.
// When the ending was not rewritten to "AH", the last surviving original
// vowel is protected, and with exactly four surviving original vowels the
// second-to-last as well.
func tailProtected(segs segments, endingChangedToAH bool) map[int]bool {
	if endingChangedToAH {
		return nil
	}
	var idx []int
	for i, sg := range segs {
		if sg.original && isVowel(sg.r) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	prot := map[int]bool{idx[len(idx)-1]: true}
	if len(idx) == 4 {
		prot[idx[2]] = true
	}
	return prot
}

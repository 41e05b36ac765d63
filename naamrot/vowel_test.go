package naamrot

import "testing"

func TestVowelSwapBasics(t *testing.T) {
	c := NewConverter(nil, nil)
	var tests = []struct {
		Name     string
		In       string
		EndingAH bool
		Out      string
	}{
		// Last original vowel protected while the ending is not AH.
		{"tail", "animal", false, "oNoMAL"},
		// With an AH ending the tail protection is off.
		{"tail-off", "lime", true, "LoMo"},
		{"tail-on", "lime", false, "LoME"},
		// O and U never swap.
		{"never-o-u", "dour", false, "DOUR"},
		// A vowel followed by a vowel letter stays.
		{"digraph", "rain", false, "RAIN"},
		// Exactly four original vowels keep the last two.
		{"four-vowels", "delicate", false, "DoLoCATE"},
		{"empty", "", false, ""},
	}
	for _, v := range tests {
		t.Run(v.Name, func(t *testing.T) {
			segs := c.applyVowelSwap(newSegments(v.In), v.EndingAH)
			if got := segs.String(); got != v.Out {
				t.Errorf("wanted [%s] got [%s]", v.Out, got)
			}
		})
	}
}

func TestVowelSwapSuffixBoundary(t *testing.T) {
	c := NewConverter(nil, []string{"AKE"})
	segs := c.applyVowelSwap(newSegments("mistake"), false)
	if got := segs.String(); got != "MoSTAKE" {
		t.Errorf("wanted [MoSTAKE] got [%s]", got)
	}
}

func TestVowelSwapLongestSuffixWins(t *testing.T) {
	// Listed shortest-first on purpose; NewConverter reorders.
	c := NewConverter(nil, []string{"E", "ASE"})
	segs := c.applyVowelSwap(newSegments("please"), false)
	if got := segs.String(); got != "PLEASE" {
		t.Errorf("wanted [PLEASE] got [%s]", got)
	}
}

func TestVowelSwapSkipsSynthesized(t *testing.T) {
	c := NewConverter(nil, nil)
	segs := newSegments("tst").replace(1, 1, "E")
	segs = c.applyVowelSwap(segs, true)
	if got := segs.String(); got != "TEST" {
		t.Errorf("wanted [TEST] got [%s]", got)
	}
}

func TestVowelSwapStripsOriginality(t *testing.T) {
	c := NewConverter(nil, nil)
	segs := c.applyVowelSwap(newSegments("lime"), true)
	for i, sg := range segs {
		if isVowel(sg.r) || sg.r == 'o' {
			if sg.original {
				t.Errorf("segment %d: swapped vowel still original", i)
			}
		}
	}
}

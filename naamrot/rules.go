package naamrot

// The built-in tables. Both are ordered; edits and reordering change
// behavior deterministically. LoadRuleFile builds a Converter with
// replacement tables from a YAML file.

// defaultExceptions rewrites a handful of words the spelling stages get
// wrong. Checked before any stage runs; the first matching entry replaces
// the whole word-part.
var defaultExceptions = []ExceptionRule{
	{Literal: "the", Output: "tha"},
	{Literal: "a", Output: "ah"},
	{Literal: "information", Output: "informashan"},

	// Monosyllables built around a lone O flatten it: don -> dan,
	// stop -> stap, from -> fram.
	{
		Pattern: mustPattern(`([^aeiou]*)o([^aeiou]+)`),
		Compute: func(m []string, _ string) string {
			return m[1] + "a" + m[2]
		},
	},
}

// defaultProtectedSuffixes lists word endings the vowel swap never reaches
// into. Held longest-first; the longest entry matching the current
// spelling sets the swap boundary.
var defaultProtectedSuffixes = []string{
	"IGHT",
	"OUGH",
	"AKE",
	"ASE",
	"OSE",
	"EAN",
	"OON",
}

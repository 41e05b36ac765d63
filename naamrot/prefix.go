package naamrot

// applyPrefixRules runs the fixed-order onset replacements.
//
// The RE rule is deliberately literal: the bare word "re" is left alone,
// and any longer word starting "re" whose third letter is a vowel gets
// "RO". That converts "reason" even though it keeps "rest" unchanged; the
// discriminator is the third letter, not the word's root.
func applyPrefixRules(segs segments) segments {
	if segs.startsWith("SN") {
		segs = segs.replace(0, 2, "SAN")
	}
	if segs.startsWith("SW") {
		segs = segs.replace(0, 2, "SAW")
	}
	if len(segs) > 2 && segs.startsWith("RE") && isVowel(segs[2].r) {
		segs = segs.replace(0, 2, "RO")
	}
	return segs
}

package naamrot

import "unicode/utf8"

// applySuffixRules runs the ending replacements in their fixed order. Each
// step sees the cumulative result of the steps before it. The returned flag
// reports whether step 6 rewrote the ending to "AH"; the vowel swap needs
// it to decide tail protection.
func applySuffixRules(segs segments) (segments, bool) {
	segs = replaceInternal(segs, "ER", "AH")
	segs = replaceInternal(segs, "IR", "AR")
	if segs.endsWith("TION") {
		segs = segs.replace(len(segs)-4, len(segs), "SHAN")
	}
	if segs.endsWith("TY") {
		segs = segs.replace(len(segs)-2, len(segs), "TEH")
	}
	if segs.endsWith("LEY") {
		segs = segs.replace(len(segs)-3, len(segs), "LEH")
	} else if segs.endsWith("LY") {
		segs = segs.replace(len(segs)-2, len(segs), "LEH")
	}
	endingChangedToAH := false
	if segs.endsWith("ER") || segs.endsWith("UR") {
		segs = segs.replace(len(segs)-2, len(segs), "AH")
		endingChangedToAH = true
	} else if segs.endsWith("A") {
		segs = segs.replace(len(segs)-1, len(segs), "AH")
		endingChangedToAH = true
	}
	if segs.endsWith("AY") {
		segs = segs.replace(len(segs)-2, len(segs), "AEH")
	}
	if segs.endsWith("Y") && !segs.endsWith("LY") && !segs.endsWith("LEY") && !segs.endsWith("TY") {
		segs = segs.replace(len(segs)-1, len(segs), "EH")
	}
	return segs, endingChangedToAH
}

// replaceInternal rewrites every non-overlapping occurrence of old that
// ends before the part's final character. Ending occurrences are left for
// the dedicated ending steps.
func replaceInternal(segs segments, old, repl string) segments {
	oldLen := utf8.RuneCountInString(old)
	replLen := utf8.RuneCountInString(repl)
	for i := 0; i+oldLen < len(segs); i++ {
		if segs.matchAt(i, old) {
			segs = segs.replace(i, i+oldLen, repl)
			i += replLen - 1
		}
	}
	return segs
}

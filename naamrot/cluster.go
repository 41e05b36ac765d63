package naamrot

// applyClusterRule softens a hard onset cluster with a single "A". The
// first matching case wins and at most one insertion happens per
// word-part.
func applyClusterRule(segs segments) segments {
	if len(segs) >= 3 && isConsonant(segs[0].r) && isConsonant(segs[1].r) && segs[2].r == 'R' {
		return segs.replace(2, 2, "A")
	}
	if len(segs) >= 2 && isConsonant(segs[0].r) && (segs[1].r == 'R' || segs[1].r == 'L') {
		return segs.replace(1, 1, "A")
	}
	return segs
}

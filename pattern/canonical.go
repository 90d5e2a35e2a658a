package pattern

// CanonicalizeSequence renumbers an arbitrary label sequence by first
// occurrence: the first label maps to 0, every unseen label to max+1,
// repeats to their earlier value. Two sequences describe the same
// partition up to relabeling iff their canonical forms are equal.
func CanonicalizeSequence(labels []string) []int {
	classes := make(map[string]int, len(labels))
	out := make([]int, len(labels))
	for i, label := range labels {
		class, seen := classes[label]
		if !seen {
			class = len(classes)
			classes[label] = class
		}
		out[i] = class
	}

	return out
}

// IsIsomorphic reports whether two label sequences describe the same
// partition up to relabeling. Reflexive and symmetric by construction.
func IsIsomorphic(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := CanonicalizeSequence(a), CanonicalizeSequence(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}

	return true
}

// Canonicalize maps an arbitrary six-label row (for instance a row of an
// observed-pattern dataset, written with whatever letters its authors
// chose) onto its canonical Pattern.
func Canonicalize(labels [Cells]string) Pattern {
	canon := CanonicalizeSequence(labels[:])
	var seq [Cells]int
	copy(seq[:], canon)

	return Letters(seq)
}

package robintable

// pslHist is a histogram of occupied-bucket counts by PSL value, indexed
// 0..maxPSL. It backs maxPSLCount (the PSL-limit guard) and peakPSL (the
// running high-water mark) without requiring a rescan of the table after
// every mutation.
type pslHist [maxPSL + 1]int

// pslInc records a newly-placed or newly-relocated occupant landing with
// the given PSL.
func (t *Table[K, V]) pslInc(psl uint8) {
	t.hist[psl]++
	t.pslSum += int(psl)
	if int(psl) > t.peakPSL {
		t.peakPSL = int(psl)
	}
	if int(psl) == t.pslLimit {
		t.maxPSLCount++
	}
}

// pslDec records an occupant leaving its slot with the given PSL, either
// because it was removed or because it is about to be relocated elsewhere
// during a cascade or a backshift.
func (t *Table[K, V]) pslDec(psl uint8) {
	t.hist[psl]--
	t.pslSum -= int(psl)
	if int(psl) == t.pslLimit {
		t.maxPSLCount--
	}
	for t.peakPSL > 0 && t.hist[t.peakPSL] == 0 {
		t.peakPSL--
	}
}

// pslGuard refuses an insertion outright whenever some occupant already
// sits at the configured PSL limit (invariant: max_psl_ct > 0 blocks any
// insertion of a key not already present). The caller is responsible for
// only invoking this once it has established the key is actually absent —
// Set and Replace on a present key never trip it.
func (t *Table[K, V]) pslGuard() error {
	if t.maxPSLCount > 0 {
		return t.fail(ErrBadHash)
	}
	return nil
}

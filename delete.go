package robintable

import "github.com/rhash/robintable/internal/bits"

// deleteEngine removes the occupied entry at victimIdx and backshifts the
// contiguous run of displaced entries that follow it, each losing one step
// of its probe distance. callFree controls whether the removed entry's
// value is passed to the free function (Delete) or returned to the caller
// untouched (Pop).
func (t *Table[K, V]) deleteEngine(victimIdx int, callFree bool) V {
	victimPSL := t.buckets[victimIdx].psl()
	victimVal := t.entries[victimIdx].val
	if callFree && t.freeFn != nil {
		t.freeFn(victimVal)
	}
	t.pslDec(victimPSL)

	runLen := 0
	for {
		p := (victimIdx + 1 + runLen) & t.mask
		ob := t.buckets[p]
		if !ob.occupied() || ob.psl() == 0 {
			break
		}
		runLen++
	}

	dst := victimIdx
	if runLen > 0 {
		srcStart := (victimIdx + 1) & t.mask
		for _, r := range bits.SplitRange(srcStart, runLen, t.tsize) {
			for i := 0; i < r.Count; i++ {
				srcPos := r.Start + i
				ob := t.buckets[srcPos]
				oldPSL := ob.psl()
				newPSL := oldPSL - 1
				t.pslDec(oldPSL)
				t.pslInc(newPSL)
				t.buckets[dst] = packBucket(ob.hash(), newPSL)
				t.entries[dst] = t.entries[srcPos]
				dst = (dst + 1) & t.mask
			}
		}
	}

	var zero entry[K, V]
	t.buckets[dst] = emptyWord
	t.entries[dst] = zero
	t.count--
	return victimVal
}

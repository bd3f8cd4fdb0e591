package robintable

import "github.com/rhash/robintable/internal/bits"

// grow doubles the table's bucket count and re-probes every occupied entry
// into the new storage. Growth is all-or-nothing: if the new arrays cannot
// be allocated, the table is left exactly as it was and ErrAlloc is
// returned. A doubled size beyond maxTableSize is reported as ErrTooBig
// instead of silently refusing to grow and then overflowing the PSL guard.
func (t *Table[K, V]) grow() error {
	newSize := t.tsize * 2
	if newSize > maxTableSize {
		return t.fail(ErrTooBig)
	}

	newBuckets, newEntries, err := allocate[K, V](newSize)
	if err != nil {
		return t.fail(ErrAlloc)
	}

	oldBuckets, oldEntries := t.buckets, t.entries
	oldTsize := t.tsize

	t.buckets = newBuckets
	t.entries = newEntries
	t.tsize = newSize
	t.mask = newSize - 1
	t.thold = newSize * t.lft / 100
	t.pslSum = 0
	t.peakPSL = 0
	t.maxPSLCount = 0
	t.hist = pslHist{}

	for i := 0; i < oldTsize; i++ {
		b := oldBuckets[i]
		if !b.occupied() {
			continue
		}
		e := oldEntries[i]
		cand := candidate[K, V]{key: e.key, val: e.val, truncHash: b.hash()}
		_, res := t.probe(probeRehash, cand)
		if res != resultInserted {
			abortf("robintable: rehash failed to place an entry from the prior table")
		}
	}

	t.clearErr()
	return nil
}

// sizeForCapacity returns the smallest power-of-two table size whose load
// factor threshold lft admits capacity entries. Init uses it to size the
// very first allocation; grow does not call it and simply doubles.
func sizeForCapacity(capacity, lft int) int {
	needed := (capacity*100 + lft - 1) / lft
	tsize := int(bits.NextPowerOf2(uint64(needed)))
	if tsize == 0 {
		tsize = 1
	}
	return tsize
}

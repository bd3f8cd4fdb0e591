package robintable

// bucketWord is the packed bucket metadata word: a 24-bit truncated hash,
// a 7-bit PSL, and an implicit occupancy flag. The layout leaves bit 31
// unused for any occupied bucket (hash and PSL together never exceed 31
// bits), so the single sentinel value with every bit set doubles as "empty"
// and as the fill pattern a freshly grown bucket array is initialized with.
type bucketWord uint32

const (
	hashBits = 24
	hashMask = uint32(1)<<hashBits - 1

	pslShift = hashBits
	pslBits  = 7
	pslMask  = uint8(1)<<pslBits - 1

	// maxPSL is the largest PSL the 7-bit field can represent, and the
	// upper bound accepted by SetPSLLimit.
	maxPSL = int(pslMask)

	emptyWord bucketWord = 0xFFFFFFFF
)

// packBucket builds an occupied bucket word from a 24-bit truncated hash
// and a PSL in [0, maxPSL].
func packBucket(hash24 uint32, psl uint8) bucketWord {
	return bucketWord(hash24&hashMask) | bucketWord(psl&pslMask)<<pslShift
}

// occupied reports whether the bucket holds an entry.
func (w bucketWord) occupied() bool {
	return w != emptyWord
}

// hash returns the 24-bit truncated hash stored in the bucket.
func (w bucketWord) hash() uint32 {
	return uint32(w) & hashMask
}

// psl returns the probe sequence length stored in the bucket.
func (w bucketWord) psl() uint8 {
	return uint8((w >> pslShift) & bucketWord(pslMask))
}

// fingerprintEqual reports whether two occupied bucket words carry the same
// truncated hash and the same PSL — the cheap check that gates a call to
// the caller's equality function.
func fingerprintEqual(a, b bucketWord) bool {
	return a == b && a.occupied()
}

// fillEmpty resets every bucket in buckets to the empty sentinel.
func fillEmpty(buckets []bucketWord) {
	for i := range buckets {
		buckets[i] = emptyWord
	}
}

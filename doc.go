// Package robintable implements an in-memory associative container backed
// by an open-addressing hash table with Robin Hood linear probing.
//
// The table tracks, for every occupied bucket, the probe sequence length
// (PSL) — the distance between a key's ideal bucket and where it actually
// landed — and applies the Robin Hood creed during insertion: an entry
// probing past its ideal position displaces any resident with a smaller
// PSL, which keeps the variance of probe lengths low without requiring a
// secondary collision structure. A configurable PSL ceiling bounds how far
// any single entry may be displaced; once an occupant reaches that ceiling,
// further insertions of keys not already present are refused rather than
// risking an unbounded cascade.
//
// Growth doubles the bucket/entry arrays and re-inserts every occupant
// through the same probing routine used by Get and Add. Deletion backshifts
// the run of displaced entries that follows the removed slot so that no
// entry is ever left with a PSL gap.
//
// The table is not safe for concurrent use from multiple goroutines. The
// iterator lock it exposes only catches same-thread misuse — mutating a
// table while an Iterator is open — and does nothing to coordinate across
// goroutines; wrap the table in an external mutex for that.
package robintable

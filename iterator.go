package robintable

// IterMode selects whether an Iterator only reads, or may also mutate the
// table it walks.
type IterMode int

const (
	// IterRead iterators may run concurrently with any number of other
	// IterRead iterators, but not alongside an IterReadWrite iterator.
	IterRead IterMode = iota
	// IterReadWrite iterators have exclusive access: no other iterator,
	// read or write, may be open on the same table at the same time.
	IterReadWrite
)

// Iterator walks a Table's occupied buckets in bucket order, which is not
// insertion order and is not stable across growth. Exactly one
// IterReadWrite iterator, or any number of IterRead iterators, may be open
// on a table at once; NewIterator enforces this and Close releases it.
// Forgetting to Close an iterator permanently wedges the table against
// further structural mutation.
type Iterator[K comparable, V any] struct {
	t    *Table[K, V]
	mode IterMode

	pos            int
	started        bool
	valid          bool
	done           bool
	recheckCurrent bool
	closed         bool
}

// NewIterator opens an iterator over t in the given mode. It fails with
// ErrIterLock if mode conflicts with an iterator already open, or with
// ErrIterCount if the table already has the maximum number of concurrent
// read iterators open.
func NewIterator[K comparable, V any](t *Table[K, V], mode IterMode) (*Iterator[K, V], error) {
	t.requireInitialized("NewIterator")

	switch mode {
	case IterRead:
		if t.iterLock == iterExclusive {
			return nil, t.fail(ErrIterLock)
		}
		if t.iterLock >= maxReaders {
			return nil, t.fail(ErrIterCount)
		}
		t.iterLock++
	case IterReadWrite:
		if t.iterLock != iterUnlocked {
			return nil, t.fail(ErrIterLock)
		}
		t.iterLock = iterExclusive
	default:
		abortf("robintable: unknown iterator mode %d", int(mode))
	}

	t.clearErr()
	return &Iterator[K, V]{t: t, mode: mode, pos: -1}, nil
}

// Next advances the iterator to the next occupied bucket and reports
// whether one was found. Call Key/Value only after Next returns true.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}

	if it.recheckCurrent {
		it.recheckCurrent = false
	} else if it.started {
		it.pos++
	} else {
		it.started = true
		it.pos = 0
	}

	for it.pos < it.t.tsize {
		if it.t.buckets[it.pos].occupied() {
			it.valid = true
			return true
		}
		it.pos++
	}

	it.valid = false
	it.done = true
	return false
}

// Key returns the key at the iterator's current position. It is a
// contract violation to call it without a prior Next call that returned
// true.
func (it *Iterator[K, V]) Key() K {
	if !it.valid {
		abortf("robintable: Iterator.Key called without a current position")
	}
	return it.t.entries[it.pos].key
}

// Value returns the value at the iterator's current position, with the
// same calling convention as Key.
func (it *Iterator[K, V]) Value() V {
	if !it.valid {
		abortf("robintable: Iterator.Value called without a current position")
	}
	return it.t.entries[it.pos].val
}

// Replace overwrites the value at the iterator's current position without
// invoking the table's free function on the displaced value. Only valid on
// an IterReadWrite iterator with a current position.
func (it *Iterator[K, V]) Replace(val V) error {
	if it.mode != IterReadWrite {
		abortf("robintable: Iterator.Replace requires a read/write iterator")
	}
	if !it.valid {
		return it.t.fail(ErrIterNoLast)
	}
	it.t.entries[it.pos].val = val
	it.t.clearErr()
	return nil
}

// Delete removes the entry at the iterator's current position, invoking
// the table's free function on its value if configured. The backshift this
// triggers may pull a later entry into the just-vacated slot; the next
// call to Next accounts for that instead of skipping over it. Only valid
// on an IterReadWrite iterator with a current position.
func (it *Iterator[K, V]) Delete() error {
	if it.mode != IterReadWrite {
		abortf("robintable: Iterator.Delete requires a read/write iterator")
	}
	if !it.valid {
		return it.t.fail(ErrIterNoLast)
	}
	it.t.deleteEngine(it.pos, true)
	it.valid = false
	it.recheckCurrent = true
	it.t.clearErr()
	return nil
}

// Close releases the iterator's claim on the table's iterator lock. It is
// safe to call more than once.
func (it *Iterator[K, V]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	if it.mode == IterReadWrite {
		it.t.iterLock = iterUnlocked
	} else {
		it.t.iterLock--
	}
}

package robintable_test

import (
	"testing"

	"github.com/rhash/robintable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantHash forces every key into the same home bucket, building up
// long Robin Hood probe chains quickly so the PSL-limit guard can be
// exercised without needing millions of keys.
func constantHash(uint32) uint32 { return 7 }

func TestPSLGuardRefusesPastLimit(t *testing.T) {
	tbl := robintable.New[uint32, uint32](constantHash, func(a, b uint32) bool { return a == b })
	tbl.SetPSLLimit(4)
	tbl.SetLoadFactorThreshold(100)
	require.NoError(t, tbl.Init(256))

	var lastErr error
	var inserted int
	for i := uint32(0); i < 256; i++ {
		ok, err := tbl.Add(i, i)
		if err != nil {
			lastErr = err
			break
		}
		if ok {
			inserted++
		}
	}

	require.Error(t, lastErr)
	assert.Contains(t, lastErr.Error(), "too many hash collisions")
	assert.Equal(t, robintable.ErrBadHash, tbl.Err())
	assert.Greater(t, inserted, 0)
}

func TestTableTooBig(t *testing.T) {
	tbl := robintable.NewDefault[uint64, uint32]()
	err := tbl.Init(1 << 30)
	require.Error(t, err)
	assert.Equal(t, robintable.ErrTooBig, tbl.Err())
}

func TestIteratorLockBlocksSecondWriter(t *testing.T) {
	tbl := newU64Table(t)
	_, err := tbl.Add(1, 1)
	require.NoError(t, err)

	it1, err := robintable.NewIterator[uint64, uint32](tbl, robintable.IterReadWrite)
	require.NoError(t, err)
	defer it1.Close()

	_, err = robintable.NewIterator[uint64, uint32](tbl, robintable.IterReadWrite)
	require.Error(t, err)
	assert.Equal(t, robintable.ErrIterLock, tbl.Err())

	_, err = robintable.NewIterator[uint64, uint32](tbl, robintable.IterRead)
	require.Error(t, err)
	assert.Equal(t, robintable.ErrIterLock, tbl.Err())
}

func TestMultipleReadersAllowed(t *testing.T) {
	tbl := newU64Table(t)
	_, err := tbl.Add(1, 1)
	require.NoError(t, err)

	it1, err := robintable.NewIterator[uint64, uint32](tbl, robintable.IterRead)
	require.NoError(t, err)
	defer it1.Close()

	it2, err := robintable.NewIterator[uint64, uint32](tbl, robintable.IterRead)
	require.NoError(t, err)
	defer it2.Close()

	_, err = robintable.NewIterator[uint64, uint32](tbl, robintable.IterReadWrite)
	require.Error(t, err)
	assert.Equal(t, robintable.ErrIterLock, tbl.Err())
}

func TestAbortHookFiresOnUninitializedUse(t *testing.T) {
	var caught string
	robintable.SetAbortHook(func(msg string) { caught = msg; panic(msg) })
	defer robintable.SetAbortHook(nil)

	tbl := robintable.NewDefault[uint64, uint32]()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, caught, "uninitialized")
	}()

	tbl.Get(1)
}

func TestErrKindStringIsStable(t *testing.T) {
	assert.Equal(t, "ok", robintable.ErrNone.String())
	assert.NotEqual(t, "ok", robintable.ErrBadHash.String())
	assert.NotEmpty(t, robintable.ErrIterNoLast.String())
}

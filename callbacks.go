package robintable

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/segmentio/fasthash/fnv1a"
)

// HashFunc computes the hash of a key. Only the low 24 bits of the result
// are consumed by the table; callers must ensure good mixing in those bits.
type HashFunc[K any] func(key K) uint32

// EqualFunc reports whether two keys are equal. It is invoked only after
// two buckets' fingerprints (truncated hash and PSL) already match.
type EqualFunc[K any] func(a, b K) bool

// FreeFunc is invoked exactly once per entry removed without being copied
// out to the caller. It is never invoked on a successful Replace, Swap, Pop,
// or Iterator.Replace.
type FreeFunc[V any] func(val V)

// DefaultHash returns a reasonable HashFunc for Go's built-in comparable
// kinds: every signed and unsigned integer width, both floating point
// kinds, and strings. It panics for any other kind of K — composite key
// types must bring their own HashFunc via New or SetHash.
func DefaultHash[K comparable]() HashFunc[K] {
	var zero K
	kind := reflect.TypeOf(&zero).Elem().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(zero) {
		case 4:
			return *(*HashFunc[K])(unsafe.Pointer(&hash32))
		case 8:
			return *(*HashFunc[K])(unsafe.Pointer(&hash64))
		default:
			panic(fmt.Sprintf("robintable: unsupported machine-word width for kind %v", kind))
		}
	case reflect.Int8, reflect.Uint8:
		return *(*HashFunc[K])(unsafe.Pointer(&hash8))
	case reflect.Int16, reflect.Uint16:
		return *(*HashFunc[K])(unsafe.Pointer(&hash16))
	case reflect.Int32, reflect.Uint32:
		return *(*HashFunc[K])(unsafe.Pointer(&hash32))
	case reflect.Int64, reflect.Uint64:
		return *(*HashFunc[K])(unsafe.Pointer(&hash64))
	case reflect.Float32:
		return *(*HashFunc[K])(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*HashFunc[K])(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*HashFunc[K])(unsafe.Pointer(&hashString))
	default:
		panic(fmt.Sprintf("robintable: no default hasher for kind %v, supply one with New/SetHash", kind))
	}
}

var hash8 = func(in uint8) uint32 { return murmur32(uint32(in)) }
var hash16 = func(in uint16) uint32 { return murmur32(uint32(in)) }
var hash32 = func(in uint32) uint32 { return murmur32(in) }
var hash64 = func(in uint64) uint32 { return uint32(murmur64(in)) }
var hashFloat32 = func(in float32) uint32 { return murmur32(math.Float32bits(in)) }
var hashFloat64 = func(in float64) uint32 { return uint32(murmur64(math.Float64bits(in))) }
var hashString = func(in string) uint32 { return uint32(fnv1a.HashString64(in)) }

// murmur32 applies MurmurHash3's 32-bit per-block mixing step (multiply,
// rotate left by 15, multiply), used to mix single machine words before
// truncation to 24 bits.
func murmur32(key uint32) uint32 {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return key
}

// murmur64 is MurmurHash3's 64-bit finalizer.
func murmur64(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

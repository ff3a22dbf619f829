// Package sortcheck provides cheap digests for validating sort results:
// an order-independent multiset digest to prove the output is a
// permutation of the input, and an order-sensitive sequence digest to
// compare two orderings without retaining either.
package sortcheck

import (
	"encoding/binary"
	"math/bits"

	xxhash "github.com/cespare/xxhash/v2"
)

// Multiset returns an order-independent digest of the key stream. Two
// slices with equal digests and equal lengths hold the same keys with
// the same multiplicities, up to hash collision.
func Multiset(keys []uint64) uint64 {
	var buf [8]byte
	var acc, mix uint64
	for _, k := range keys {
		binary.LittleEndian.PutUint64(buf[:], k)
		h := xxhash.Sum64(buf[:])
		acc += h
		mix ^= bits.RotateLeft64(h, 23)
	}
	return acc ^ mix
}

// Sequence returns an order-sensitive digest of the key stream.
func Sequence(keys []uint64) uint64 {
	var buf [8]byte
	d := xxhash.New()
	for _, k := range keys {
		binary.LittleEndian.PutUint64(buf[:], k)
		d.Write(buf[:])
	}
	return d.Sum64()
}

// MultisetOf digests arbitrary elements through a key projection.
func MultisetOf[T any](vals []T, key func(T) uint64) uint64 {
	var buf [8]byte
	var acc, mix uint64
	for _, v := range vals {
		binary.LittleEndian.PutUint64(buf[:], key(v))
		h := xxhash.Sum64(buf[:])
		acc += h
		mix ^= bits.RotateLeft64(h, 23)
	}
	return acc ^ mix
}

// Ordered reports whether the key stream is nondecreasing, or
// nonincreasing when descending is set.
func Ordered(keys []uint64, descending bool) bool {
	for i := 1; i < len(keys); i++ {
		if descending {
			if keys[i] > keys[i-1] {
				return false
			}
		} else {
			if keys[i] < keys[i-1] {
				return false
			}
		}
	}
	return true
}

package result

import "hash/maphash"

// Equal reports whether a and b are the same variant with equal payloads.
func Equal[S comparable, F comparable](a, b Result[S, F]) bool {
	return a == b
}

// EqualFunc is Equal for success types that are not comparable; eq decides
// success payload equality.
func EqualFunc[S any, F comparable](a, b Result[S, F], eq func(S, S) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eq(a.value, b.value)
	}
	return a.failure == b.failure
}

// Hash returns a hash of r consistent with Equal under the same seed.
//
// Example:
//
//	seed := maphash.MakeSeed()
//	fmt.Println(result.Hash(seed, a) == result.Hash(seed, b))
func Hash[S comparable, F comparable](seed maphash.Seed, r Result[S, F]) uint64 {
	return maphash.Comparable(seed, r)
}

//go:build purego
// +build purego

package radix

// sortIndicesKeysParallel is a stub for purego builds that defers to the
// serial index sort.
func sortIndicesKeysParallel(keys []uint64, planes int, reversed bool) []int {
	return sortIndicesKeys(keys, planes, reversed)
}

func sortIndicesParallel[T any, K Keyer[T]](k K, cc compiled, data []T) []int {
	keys := extractKeys(k, cc, data)
	perm := sortIndicesKeysParallel(keys, cc.plan.planes, cc.plan.reversed)
	if cc.plan.revOrder {
		n := len(perm)
		for i, p := range perm {
			perm[i] = n - 1 - p
		}
	}
	return perm
}

package radix

// ApplyPermutation reorders data in place so that the element previously
// at data[perm[i]] ends up at position i, following each cycle of the
// permutation with a single saved element. perm is the slice returned by
// the SortIndices functions and is left unchanged.
func ApplyPermutation[T any](data []T, perm []int) {
	if len(perm) != len(data) {
		panic("radix: ApplyPermutation: permutation length mismatch")
	}
	visited := make([]bool, len(data))
	for i := range data {
		if visited[i] || perm[i] == i {
			visited[i] = true
			continue
		}
		saved := data[i]
		j := i
		for {
			visited[j] = true
			src := perm[j]
			if src == i {
				data[j] = saved
				break
			}
			data[j] = data[src]
			j = src
		}
	}
}

//go:build !purego
// +build !purego

package radix

import (
	"runtime"
	"sync"
)

// parallelThreshold is the element count below which the sharded path
// costs more than it saves.
const parallelThreshold = 1 << 15

// sortIndicesKeysParallel performs a stable LSD index sort of the
// pre-filtered keys, parallelising each pass across shards: per-shard
// histograms, a global prefix sum, then per-shard scatter windows so no
// merge step is needed.
func sortIndicesKeysParallel(keys []uint64, planes int, reversed bool) []int {
	n := len(keys)
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 || n < parallelThreshold {
		return sortIndicesKeys(keys, planes, reversed)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	tmp := make([]int, n)

	shardSize := (n + workers - 1) / workers

	counts := make([][]int, workers)
	preOffsets := make([][]int, workers)
	for w := 0; w < workers; w++ {
		counts[w] = make([]int, 256)
		preOffsets[w] = make([]int, 256)
	}

	var wg sync.WaitGroup

	for pass := 0; pass < planes; pass++ {
		shift := uint(8 * pass)

		for w := 0; w < workers; w++ {
			for b := 0; b < 256; b++ {
				counts[w][b] = 0
			}
		}

		// Histogram per shard.
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			start := w * shardSize
			end := start + shardSize
			if end > n {
				end = n
			}
			if start >= end {
				wg.Done()
				continue
			}
			go func(slot, s, e int) {
				localCounts := counts[slot]
				for i := s; i < e; i++ {
					localCounts[byte(keys[indices[i]]>>shift)]++
				}
				wg.Done()
			}(w, start, end)
		}
		wg.Wait()

		// Global totals per bucket; skip the pass when one bucket holds
		// every key.
		var global [256]int
		for b := 0; b < 256; b++ {
			sum := 0
			for w := 0; w < workers; w++ {
				sum += counts[w][b]
			}
			global[b] = sum
		}
		if singleBucket(&global, n) {
			continue
		}

		// Prefix-sum over the global counts in walk order, then split
		// each bucket's window over the shards in shard order so the
		// scatter stays stable.
		running := 0
		if !reversed {
			for b := 0; b < 256; b++ {
				c := global[b]
				global[b] = running
				running += c
			}
		} else {
			for b := 255; b >= 0; b-- {
				c := global[b]
				global[b] = running
				running += c
			}
		}
		for b := 0; b < 256; b++ {
			offset := global[b]
			for w := 0; w < workers; w++ {
				preOffsets[w][b] = offset
				offset += counts[w][b]
			}
		}

		// Scatter per shard into its reserved windows.
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			start := w * shardSize
			end := start + shardSize
			if end > n {
				end = n
			}
			if start >= end {
				wg.Done()
				continue
			}
			go func(slot, s, e int) {
				localOffsets := preOffsets[slot]
				for i := s; i < e; i++ {
					idx := indices[i]
					b := byte(keys[idx] >> shift)
					pos := localOffsets[b]
					tmp[pos] = idx
					localOffsets[b]++
				}
				wg.Done()
			}(w, start, end)
		}
		wg.Wait()

		indices, tmp = tmp, indices
	}

	return indices
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

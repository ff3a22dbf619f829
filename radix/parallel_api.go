package radix

import "go-radix/types"

// SortIndicesUintsParallel is SortIndicesUints with the passes sharded
// across GOMAXPROCS goroutines for large inputs. Small inputs fall back
// to the serial path.
func SortIndicesUintsParallel[T UnsignedElem](data []T, o Options) []int {
	return sortIndicesParallel(uintKeyer[T]{}, compile[T](types.UintClass, o), data)
}

// SortIndicesIntsParallel is the parallel variant for two's-complement
// elements.
func SortIndicesIntsParallel[T SignedElem](data []T, o Options) []int {
	return sortIndicesParallel(intKeyer[T]{}, compile[T](types.IntClass, o), data)
}

// SortIndicesFloatsParallel is the parallel variant for IEEE-754
// elements.
func SortIndicesFloatsParallel[T FloatElem](data []T, o Options) []int {
	return sortIndicesParallel(floatKeyer[T]{}, compile[T](types.FloatClass, o), data)
}

// Package radix implements a stable, bidirectional, 8-bit
// least-significant-digit radix sort for slices of scalar data.
//
// Keys of 8 to 64 bits (in 8-bit steps) are sorted in at most width/8
// counting passes. Each pass scatters from both ends of the source slice
// at once, and passes whose byte plane does not discriminate between any
// two keys are skipped outright. The pass parity is accounted for up
// front so the sorted sequence lands in the caller-chosen destination
// without a trailing copy.
//
// Signed, floating-point, absolute-value, tiered-absolute and
// inverse-ordered key spaces are mapped onto the unsigned lexicographic
// byte order by branchless integer filters; no floating-point arithmetic
// is performed, so signalling NaNs never trap.
//
// Slices of handles can be sorted by a projected key (a struct field, a
// getter function, or a table row selected by an index) with the same
// stability guarantees.
package radix

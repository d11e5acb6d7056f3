package combin

import "iter"

// Permutations yields all n! orderings of the indices 0..n-1 using Heap's
// algorithm. For n = 3 the order is
//
//	[0 1 2] [1 0 2] [2 0 1] [0 2 1] [1 2 0] [2 1 0]
//
// n <= 0 yields exactly one empty ordering.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			n = 0
		}
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		swaps := make([]int, n)

		if !yield(clone(idxs)) {
			return
		}
		i := 1
		for i < n {
			if swaps[i] >= i {
				swaps[i] = 0
				i++
				continue
			}
			j := (i & 1) * swaps[i]
			idxs[i], idxs[j] = idxs[j], idxs[i]
			swaps[i]++
			if !yield(clone(idxs)) {
				return
			}
			i = 1
		}
	}
}

// PermuteValues yields every ordering of xs in Permutations order. xs is
// copied up front and never modified.
func PermuteValues[T any](xs []T) iter.Seq[[]T] {
	src := clone(xs)
	return func(yield func([]T) bool) {
		for idxs := range Permutations(len(src)) {
			out := make([]T, len(idxs))
			for k, i := range idxs {
				out[k] = src[i]
			}
			if !yield(out) {
				return
			}
		}
	}
}

func clone[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

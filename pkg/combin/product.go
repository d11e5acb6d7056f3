package combin

import "iter"

// CartesianProduct yields every index tuple t with 0 <= t[k] < sizes[k], in
// odometer order (the last position changes fastest). An empty sizes yields
// exactly one empty tuple; any zero-sized dimension yields nothing.
func CartesianProduct(sizes []int) iter.Seq[[]int] {
	dims := clone(sizes)
	return func(yield func([]int) bool) {
		for _, s := range dims {
			if s <= 0 {
				return
			}
		}
		idxs := make([]int, len(dims))
		for {
			if !yield(clone(idxs)) {
				return
			}
			k := len(idxs) - 1
			for ; k >= 0; k-- {
				idxs[k]++
				if idxs[k] < dims[k] {
					break
				}
				idxs[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// Repeat returns a sizes slice of n copies of size, the shape of an
// assignment of size choices to n slots.
func Repeat(size, n int) []int {
	if n < 0 {
		n = 0
	}
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

// Count returns the number of tuples CartesianProduct(sizes) yields.
func Count(sizes []int) int {
	total := 1
	for _, s := range sizes {
		if s <= 0 {
			return 0
		}
		total *= s
	}
	return total
}

package internal

import (
	"iter"
)

// IterSeqMerge interleaves two sequences that are each already ordered by
// cmp. On ties, values from a are yielded before values from b.
func IterSeqMerge[T any](a, b iter.Seq[T], cmp func(x, y T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		next_b, stop_b := iter.Pull(b)
		defer stop_b()

		vb, ok_b := next_b()
		for va := range a {
			for ok_b && cmp(vb, va) < 0 {
				if !yield(vb) {
					return
				}
				vb, ok_b = next_b()
			}
			if !yield(va) {
				return
			}
		}
		for ok_b {
			if !yield(vb) {
				return
			}
			vb, ok_b = next_b()
		}
	}
}

// Package internal holds helpers shared between cva5data packages.
package internal

import (
	"iter"
)

// IterSeqConcat yields every value of each sequence in turn.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqCollect drains seq into a slice, keeping at most limit values.
// A limit below zero keeps everything.
func IterSeqCollect[T any](seq iter.Seq[T], limit int) (vals []T) {
	if limit == 0 {
		return
	}
	for val := range seq {
		vals = append(vals, val)
		if limit > 0 && len(vals) >= limit {
			break
		}
	}
	return
}

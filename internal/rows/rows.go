// Package rows provides the ordered-sequence primitives behind every
// list-valued sheet field. Each function returns a fresh slice and never
// writes through its input, so a caller holding the old slice keeps seeing
// the old contents.
package rows

import "github.com/KirkDiggler/vop-sheet/internal/errors"

// InsertAt returns a copy of seq with row placed at index. index may equal
// len(seq) to append.
func InsertAt[T any](seq []T, index int, row T) ([]T, error) {
	if index < 0 || index > len(seq) {
		return seq, outOfRange("insert", index, len(seq)+1)
	}
	out := make([]T, 0, len(seq)+1)
	out = append(out, seq[:index]...)
	out = append(out, row)
	out = append(out, seq[index:]...)
	return out, nil
}

// Append returns a copy of seq with row added at the end
func Append[T any](seq []T, row T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, seq...)
	return append(out, row)
}

// RemoveAt returns a copy of seq without the element at index
func RemoveAt[T any](seq []T, index int) ([]T, error) {
	if index < 0 || index >= len(seq) {
		return seq, outOfRange("remove", index, len(seq))
	}
	out := make([]T, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	return append(out, seq[index+1:]...), nil
}

// Move removes the element at from and inserts it at to, where to indexes the
// sequence after the removal. Moving an element onto itself returns an equal
// copy.
func Move[T any](seq []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(seq) {
		return seq, outOfRange("move from", from, len(seq))
	}
	if to < 0 || to >= len(seq) {
		return seq, outOfRange("move to", to, len(seq))
	}
	if from == to {
		return Clone(seq), nil
	}

	item := seq[from]
	removed, _ := RemoveAt(seq, from)
	out, _ := InsertAt(removed, to, item)
	return out, nil
}

// SetAt returns a copy of seq where the element at index is replaced by
// patch applied to it. Every other element is copied unchanged.
func SetAt[T any](seq []T, index int, patch func(T) T) ([]T, error) {
	if index < 0 || index >= len(seq) {
		return seq, outOfRange("set", index, len(seq))
	}
	out := Clone(seq)
	out[index] = patch(out[index])
	return out, nil
}

// Seed returns seq unchanged when it has rows, otherwise n copies of blank.
func Seed[T any](seq []T, n int, blank T) []T {
	if len(seq) > 0 || n <= 0 {
		return seq
	}
	out := make([]T, n)
	for i := range out {
		out[i] = blank
	}
	return out
}

// Clone returns a shallow copy of seq. A nil input stays nil.
func Clone[T any](seq []T) []T {
	if seq == nil {
		return nil
	}
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}

func outOfRange(op string, index, size int) error {
	return errors.IndexOutOfRange(op+" index", index, size)
}

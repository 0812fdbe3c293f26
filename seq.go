package lispy

// Sequence-only helpers. They mutate their first argument in place
// when it is a sequence, mirroring the classic lval_add/lval_pop/
// lval_take/lval_join shape, which all take the owning list by
// pointer and return either the list or the removed element.

// seqAdd appends v to seq's element list.
func seqAdd(seq *Value, v *Value) *Value {
	seq.Seq = append(seq.Seq, v)
	return seq
}

// seqPop removes and returns the element at index i, shifting the
// remaining elements down.
func seqPop(seq *Value, i int) *Value {
	v := seq.Seq[i]
	seq.Seq = append(seq.Seq[:i], seq.Seq[i+1:]...)
	return v
}

// seqJoin appends every element of b to a and returns a; b itself is
// consumed (its element slice is not reused afterwards).
func seqJoin(a, b *Value) *Value {
	a.Seq = append(a.Seq, b.Seq...)
	return a
}

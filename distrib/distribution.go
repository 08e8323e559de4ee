// Package distrib implements the exact integer-weighted probability
// distribution algebra dicelang expressions evaluate to: no sampling, no
// floating point — every result is a precise weighted sum.
package distrib

import "sort"

// Entry is one (value, weight) pair of a Distribution. Weight is always
// strictly positive; a value absent from a Distribution has weight zero.
type Entry struct {
	Value  int64
	Weight uint64
}

// Distribution is a finite map from integer values to positive integer
// weights, held as a slice sorted strictly ascending by Value with no
// duplicate values. The zero Distribution is the empty distribution.
type Distribution struct {
	entries []Entry
}

// IsEmpty reports whether D has no entries at all. This is distinct from
// having entries whose weight happens to be zero — that state can never
// arise, since Push discards zero-weight insertions.
func (d *Distribution) IsEmpty() bool {
	return d == nil || len(d.entries) == 0
}

// Entries returns D's entries in ascending value order. Callers must treat
// the returned slice as read-only.
func (d *Distribution) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// New builds a Distribution from entries, combining duplicate values and
// dropping zero-weight ones via Push.
func New(entries ...Entry) *Distribution {
	d := &Distribution{}
	for _, e := range entries {
		d.Push(e.Value, e.Weight)
	}
	return d
}

// Push inserts (value, weight) into d, accumulating weight into an existing
// entry for the same value or inserting a new entry at its sorted
// position. A weight of zero is a no-op. Weight accumulation saturates at
// math.MaxUint64 rather than overflowing.
func (d *Distribution) Push(value int64, weight uint64) {
	if weight == 0 {
		return
	}

	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Value >= value
	})

	if i < len(d.entries) && d.entries[i].Value == value {
		d.entries[i].Weight = saturatingAdd(d.entries[i].Weight, weight)
		return
	}

	d.entries = append(d.entries, Entry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = Entry{Value: value, Weight: weight}
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	product := a * b
	if product/a != b {
		return ^uint64(0)
	}
	return product
}

// Copy returns a deep, independently owned copy of d.
func (d *Distribution) Copy() *Distribution {
	if d == nil {
		return &Distribution{}
	}
	out := &Distribution{entries: make([]Entry, len(d.entries))}
	copy(out.entries, d.entries)
	return out
}

// Add returns the distribution of the sum of two independent random
// variables distributed as L and R: for every pair of entries, the sum of
// their values weighted by the product of their weights. If either side is
// empty, the other is returned as a copy (an absent operand contributes
// nothing to combine against, so the non-empty side passes through).
func Add(l, r *Distribution) *Distribution {
	if l.IsEmpty() {
		return r.Copy()
	}
	if r.IsEmpty() {
		return l.Copy()
	}

	out := &Distribution{}
	for _, le := range l.entries {
		for _, re := range r.entries {
			out.Push(le.Value+re.Value, saturatingMul(le.Weight, re.Weight))
		}
	}
	return out
}

// Sub returns the distribution of L minus R. If R is empty, L is returned
// as a copy.
func Sub(l, r *Distribution) *Distribution {
	if r.IsEmpty() {
		return l.Copy()
	}

	out := &Distribution{}
	for _, le := range l.entries {
		for _, re := range r.entries {
			out.Push(le.Value-re.Value, saturatingMul(le.Weight, re.Weight))
		}
	}
	return out
}

// Mul returns the distribution of L times R, combining every pair of
// entries by multiplying both value and weight. Unlike Add/Sub, an empty
// operand yields an empty result: scalar multiplication by "no value" is
// not defined as a pass-through.
func Mul(l, r *Distribution) *Distribution {
	out := &Distribution{}
	for _, le := range l.Entries() {
		for _, re := range r.Entries() {
			out.Push(le.Value*re.Value, saturatingMul(le.Weight, re.Weight))
		}
	}
	return out
}

// Union merges L and R into one distribution, summing weights where both
// sides carry the same value. Union(D, empty) and Union(empty, D) are both
// equal to a copy of D.
func Union(l, r *Distribution) *Distribution {
	out := &Distribution{}
	for _, e := range l.Entries() {
		out.Push(e.Value, e.Weight)
	}
	for _, e := range r.Entries() {
		out.Push(e.Value, e.Weight)
	}
	return out
}

// Dice expands D, read as a weighted set of face counts, into the
// distribution of one fair die roll per count: for each entry (n, w) with
// n >= 1, it pushes (1, w) through (n, w); entries with n <= 0 contribute
// nothing. Dice(singleton(n)) for n >= 1 is the uniform 1..n distribution
// scaled by that entry's weight.
func Dice(d *Distribution) *Distribution {
	out := &Distribution{}
	for _, e := range d.Entries() {
		for face := int64(1); face <= e.Value; face++ {
			out.Push(face, e.Weight)
		}
	}
	return out
}

// Scale multiplies every weight in d by factor, saturating as usual.
func Scale(d *Distribution, factor uint64) *Distribution {
	out := &Distribution{}
	for _, e := range d.Entries() {
		out.Push(e.Value, saturatingMul(e.Weight, factor))
	}
	return out
}

// Repeat returns the distribution of the sum of n independent draws from
// d. Repeat(d, 1) is a copy of d; Repeat(d, n) for n >= 2 is d convolved
// with itself n-1 more times via Add. n <= 0 yields the empty
// distribution, consistent with Dice's own treatment of a non-positive
// count.
func Repeat(d *Distribution, n int64) *Distribution {
	if n <= 0 {
		return &Distribution{}
	}
	out := d.Copy()
	for i := int64(1); i < n; i++ {
		out = Add(out, d)
	}
	return out
}

// Equal reports whether l and r have identical entry sequences.
func Equal(l, r *Distribution) bool {
	le, re := l.Entries(), r.Entries()
	if len(le) != len(re) {
		return false
	}
	for i := range le {
		if le[i] != re[i] {
			return false
		}
	}
	return true
}

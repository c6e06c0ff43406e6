package rop

// Unit is the value of a Result that carries no payload.
type Unit struct{}

// Ok is the successful Result[Unit].
func Ok() Result[Unit] {
	return Success(Unit{})
}

// Pair is the two-element tuple produced by Combine. Wider tuples nest
// pairs to the left: Pair[Pair[A, B], C].
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

package coordinate

// Pair holds an x/y couple of any comparable coordinate form, such as the
// canonical Values of a point.
type Pair[T comparable] struct {
	X T
	Y T
}

func NewPair[T comparable](x, y T) Pair[T] {
	return Pair[T]{X: x, Y: y}
}

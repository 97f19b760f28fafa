package generator

// Sequence algorithms. They advance the generator they are given and
// leave it open; the caller still owns it and is responsible for Close.

// Collect drains g into a slice. If the producer fails, the values
// produced before the failure are returned along with its error.
func Collect[T any](g *Generator[T]) ([]T, error) {
	var out []T
	for g.Next() {
		out = append(out, g.Value())
	}
	return out, g.Err()
}

// CollectN collects at most n values from g, leaving the rest of the
// sequence in place.
func CollectN[T any](g *Generator[T], n int) ([]T, error) {
	var out []T
	for len(out) < n && g.Next() {
		out = append(out, g.Value())
	}
	return out, g.Err()
}

// Fold combines the remaining values of g, in order, into an accumulator.
func Fold[T, A any](g *Generator[T], init A, f func(A, T) A) (A, error) {
	acc := init
	for g.Next() {
		acc = f(acc, g.Value())
	}
	return acc, g.Err()
}

// Find returns the first remaining value of g that satisfies pred. The
// generator stays parked just after the match.
func Find[T any](g *Generator[T], pred func(T) bool) (T, bool, error) {
	for g.Next() {
		if v := g.Value(); pred(v) {
			return v, true, nil
		}
	}
	var zero T
	return zero, false, g.Err()
}

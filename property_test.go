package generator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGenerator_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("yields the producer's values in order, once each", prop.ForAll(
		func(vs []int) bool {
			g := New(counting(vs...))
			defer g.Close()

			got, err := Collect(g)
			if err != nil || len(got) != len(vs) {
				return false
			}
			for i := range vs {
				if got[i] != vs[i] {
					return false
				}
			}
			return g.Done() && !g.Next()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("moving a generator preserves the remaining sequence", prop.ForAll(
		func(vs []int, k int) bool {
			if k > len(vs) {
				k = len(vs)
			}
			a := New(counting(vs...))
			defer a.Close()

			head, err := CollectN(a, k)
			if err != nil || len(head) != k {
				return false
			}

			b := a.Take()
			defer b.Close()
			if !a.Done() || a.Next() {
				return false
			}

			rest, err := Collect(b)
			if err != nil || len(rest) != len(vs)-k {
				return false
			}
			for i, v := range rest {
				if v != vs[k+i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 32),
	))

	properties.Property("closing after k values releases exactly once", prop.ForAll(
		func(n, k int) bool {
			if k > n {
				k = n
			}
			held, releases := 0, 0
			g := New(func(yield func(int)) error {
				held++
				defer func() {
					held--
					releases++
				}()
				for i := 0; i < n; i++ {
					yield(i)
				}
				return nil
			})

			if _, err := CollectN(g, k); err != nil {
				return false
			}
			g.Close()

			if k == 0 {
				return held == 0 && releases == 0
			}
			return held == 0 && releases == 1
		},
		gen.IntRange(0, 16),
		gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}

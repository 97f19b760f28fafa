package generator_test

import (
	"fmt"

	"github.com/webriots/generator"
)

func ExampleNew() {
	fib := generator.New(func(yield func(int)) error {
		a, b := 0, 1
		for {
			yield(a)
			a, b = b, a+b
		}
	})
	defer fib.Close()

	for v := range fib.All() {
		if v > 50 {
			break
		}
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 1 1 2 3 5 8 13 21 34
}

func ExampleGenerator_Close() {
	lines := generator.New(func(yield func(string)) error {
		fmt.Println("open")
		defer fmt.Println("close")
		for _, l := range []string{"a", "b", "c"} {
			yield(l)
		}
		return nil
	})

	lines.Next()
	fmt.Println(lines.Value())
	lines.Close()
	fmt.Println(lines.Done())
	// Output:
	// open
	// a
	// close
	// true
}

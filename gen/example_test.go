package gen_test

import (
	"fmt"

	"github.com/katalvlaran/arbiter/gen"
)

// ExampleConst shows the simplest possible recipe: a fixed value.
func ExampleConst() {
	p := gen.NewParameters(1)
	g := gen.Const("ready")
	fmt.Println(g(p))
	// Output:
	// ready
}

// ExampleChoose draws from an inclusive integer range.
func ExampleChoose() {
	p := gen.NewParameters(7)
	g := gen.Choose(10, 20)
	for i := 0; i < 3; i++ {
		v := g(p)
		fmt.Println(10 <= v && v <= 20)
	}
	// Output:
	// true
	// true
	// true
}

// ExampleSized adapts one recipe to whatever size hint is in force.
func ExampleSized() {
	g := gen.Sized(func(size int) gen.Gen[int] {
		return gen.Const(size)
	})
	p := gen.NewParameters(1)
	fmt.Println(g(p))
	fmt.Println(g(p.WithSize(3)))
	// Output:
	// 100
	// 3
}

// ExampleFrequency favors the common branch nine to one, yet both
// branches stay reachable.
func ExampleFrequency() {
	g := gen.Frequency(
		gen.Weighted[string]{Weight: 9, Gen: gen.Const("common")},
		gen.Weighted[string]{Weight: 1, Gen: gen.Const("rare")},
	)
	p := gen.NewParameters(3)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[g(p)] = true
	}
	fmt.Println(seen["common"], seen["rare"])
	// Output:
	// true true
}

// ExamplePromote turns a family of value recipes into a recipe for pure
// functions: every call replays the snapshot captured at yield time.
func ExamplePromote() {
	fam := func(n int) gen.Gen[int] {
		return gen.Map(gen.Choose(0, 9), func(k int) int { return n*10 + k })
	}
	p := gen.NewParameters(5)
	f := gen.Promote(fam)(p)
	fmt.Println(f(1) == f(1))
	fmt.Println(f(2) - f(1))
	// Output:
	// true
	// 10
}

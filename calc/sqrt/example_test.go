package sqrt_test

import (
	"fmt"

	"github.com/cwbudde/algo-calc/calc/sqrt"
)

func ExampleSqrt() {
	r, err := sqrt.Sqrt(54757)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.6f\n", r)

	// Output:
	// 234.002137
}

func ExampleSolver_Solve() {
	res, err := sqrt.New().Solve(2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.12f in %d steps\n", res.Value, res.Iterations)

	// Output:
	// 1.414213562373 in 8 steps
}

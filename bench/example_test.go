package bench_test

import (
	"fmt"

	"github.com/idpool/idpool/bench"
)

func ExampleRelativeLabel() {
	fmt.Println(bench.RelativeLabel(10, 4))
	fmt.Println(bench.RelativeLabel(4, 10))
	fmt.Println(bench.RelativeLabel(10, 10))
	// Output:
	// 2.50x faster
	// 2.50x slower
	// 1.00x slower
}

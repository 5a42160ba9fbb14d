package nearmatch_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2018/nearmatch"
)

func ExampleFind() {
	ids := []string{"abcde", "fghij", "klmno", "pqrst", "fguij", "axcye", "wvxyz"}
	common, ok := nearmatch.Find(ids)
	fmt.Println(common, ok)
	// Output:
	// fgij true
}

func ExampleFindPair() {
	m, ok := nearmatch.FindPair([]string{"abcde", "fghij", "fguij"})
	fmt.Println(m.I, m.J, m.Common, ok)
	// Output:
	// 1 2 fgij true
}

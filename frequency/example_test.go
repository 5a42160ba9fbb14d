package frequency_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2018/frequency"
)

// ExampleSum folds a short delta list from zero.
func ExampleSum() {
	deltas, err := frequency.ReadDeltas(strings.NewReader("+1\n-2\n+3\n+1\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(frequency.Sum(0, deltas).Current())
	// Output:
	// 3
}

// ExampleCalibrate replays the deltas until a total repeats.
//
//	0 → 3 → 6 → 10 → 8 → 4 → 7 → 10 (seen)
func ExampleCalibrate() {
	f, err := frequency.Calibrate(0, []int{3, 3, 4, -2, -4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(f.Current())
	// Output:
	// 10
}

// Package frequency accumulates signed frequency deltas and calibrates a
// device by finding the first running total that repeats.
//
// 🚀 What is calibration?
//
//	A device starts at some frequency and receives a list of changes
//	("+3", "-6", ...). Summing them once gives the resulting frequency.
//	Calibration instead replays the list over and over until a running
//	total shows up for the second time; that total is the calibrated
//	frequency.
//
// ✨ Key features:
//   - Sum / Frequency.Apply — one pass left fold, never fails
//   - Calibrate — cycle detection with an explicit iteration bound
//   - ParseDelta / ReadDeltas / SumReader — strict "[+|-]<digits>" parsing
//
// ⚙️ Usage:
//
//	deltas, err := frequency.ReadDeltas(r)
//	if err != nil {
//	  // errors.Is(err, frequency.ErrBadDelta)
//	}
//	f := frequency.Sum(0, deltas)
//	c, err := frequency.Calibrate(0, deltas, frequency.WithMaxIterations(2_000_000))
//	if errors.Is(err, frequency.ErrNonConvergence) {
//	  // input never repeats within the bound; treat as fatal
//	}
//
// Complexity:
//
//   - Sum:       O(n) time, O(1) memory.
//   - Calibrate: O(k) time and memory, k = iterations until the repeat (≤ MaxIterations).
//
// Errors:
//
//   - ErrBadDelta:        a line is not a signed decimal integer.
//   - ErrEmptyDeltas:     Calibrate was given nothing to cycle.
//   - ErrNonConvergence:  no repeat within MaxIterations.
//   - ErrOptionViolation: an Option received a meaningless value.
package frequency

package main

import (
	"fmt"
	"time"
)

// timeIt runs fn iterations times, reporting total/average/min/max
// elapsed time in the same shape the rest of this command uses for
// every benchmark (spec.md has no timing invariants — this is purely
// informational output for the operator).
func timeIt(label string, iterations int, fn func() error) error {
	var total time.Duration
	min := time.Hour
	var max time.Duration

	for i := 0; i < iterations; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: iteration %d: %w", label, i, err)
		}
		elapsed := time.Since(start)
		total += elapsed
		if elapsed < min {
			min = elapsed
		}
		if elapsed > max {
			max = elapsed
		}
	}

	avg := total / time.Duration(iterations)
	fmt.Printf("%s (%d iterations)\n", label, iterations)
	fmt.Printf("  average: %v\n", avg)
	fmt.Printf("  min:     %v\n", min)
	fmt.Printf("  max:     %v\n", max)
	fmt.Printf("  total:   %v\n", total)
	return nil
}

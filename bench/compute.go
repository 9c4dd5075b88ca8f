package bench

import (
	"io"
	"runtime/debug"
)

const (
	sumLimit = 50_000_000
	fibN     = 35
	fibRuns  = 30
)

// maxCallStack is the goroutine stack ceiling for the deep-recursion
// workloads. Overflowing it is a runtime fatal, which is the required
// behavior: crash rather than truncate a result.
const maxCallStack = 1 << 30

// RunCompute exercises iterative int64 summation and naive recursive
// fibonacci. fib(35) is recomputed 30 independent times; only the last
// value is retained.
func RunCompute(w io.Writer) error {
	debug.SetMaxStack(maxCallStack)

	if err := emit(w, "sum", sumTo(sumLimit)); err != nil {
		return err
	}

	var result int64
	for j := 0; j < fibRuns; j++ {
		result = fib(fibN)
	}

	return emit(w, "fib(35)", result)
}

func sumTo(m int64) int64 {
	var sum int64
	for i := int64(1); i <= m; i++ {
		sum += i
	}

	return sum
}

// fib is deliberately the naive exponential recursion; memoizing it would
// remove the call overhead being measured.
func fib(n int64) int64 {
	if n < 2 {
		return n
	}

	return fib(n-1) + fib(n-2)
}

package bench

import (
	"io"
	"runtime/debug"
)

const (
	callCount  = 5_000_000
	ackermannM = 3
	ackermannN = 8
)

// RunFunctions exercises plain function-call overhead and deep non-tail
// recursion via Ackermann.
func RunFunctions(w io.Writer) error {
	debug.SetMaxStack(maxCallStack)

	if err := emit(w, "call sum", callSum(callCount)); err != nil {
		return err
	}

	return emit(w, "ackermann(3,8)", ackermann(ackermannM, ackermannN))
}

func callSum(n int64) int64 {
	var sum int64
	for i := int64(0); i < n; i++ {
		sum += add3(i, i+1, i+2)
	}

	return sum
}

// add3 must stay out of line; inlining would collapse the call loop into
// pure arithmetic and the measured call overhead with it.
//
//go:noinline
func add3(a, b, c int64) int64 {
	return a + b + c
}

func ackermann(m, n int64) int64 {
	if m == 0 {
		return n + 1
	}

	if n == 0 {
		return ackermann(m-1, 1)
	}

	return ackermann(m-1, ackermann(m, n-1))
}

package bigu

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the public API. Callers should match them with
// errors.Is, since some operations wrap them (with or without operand
// context) via fmt.Errorf's %w verb.
var (
	// ErrDivisionByZero is returned by any division or modulo operation
	// whose divisor is zero.
	ErrDivisionByZero = errors.New("bigu: division by zero")

	// ErrUnderflow is returned by Sub when the subtrahend exceeds the
	// minuend.
	ErrUnderflow = errors.New("bigu: subtraction underflow")

	// ErrDomain is returned when an operation's argument falls outside
	// its documented domain (Pow with an exponent >= beta,
	// MulByPow10/DivByPow10 with a negative shift).
	ErrDomain = errors.New("bigu: argument out of domain")
)

// debugAssertionsEnabled gates the package's debug-only invariant checks.
// It is read once from BIGU_DEBUG_ASSERT so the checks can be turned on
// in test/CI builds without recompiling with a build tag.
var debugAssertionsEnabled = os.Getenv("BIGU_DEBUG_ASSERT") != ""

// assertInvariant panics with a formatted InvariantViolation message when
// debug assertions are enabled and cond is false. It is a no-op otherwise.
// Used only at internal recursion boundaries that a caller of the public
// API can never reach with a bad argument (the public API instead returns
// one of the sentinel errors above).
func assertInvariant(cond bool, format string, args ...any) {
	if debugAssertionsEnabled && !cond {
		panic(fmt.Sprintf("bigu: invariant violation: "+format, args...))
	}
}

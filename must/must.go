package must

// Be panics when expr does not hold. Use it for invariants that indicate
// programmer error, never for runtime failures.
func Be(expr bool, msg string) {
	if !expr {
		panic("assertion failed: " + msg)
	}
}

package arb

// White-box bridge: unexported kernels exposed to the arb_test package
// so bit-level and fallback behavior can be pinned without widening the
// production API.
var (
	AssembleFloat64 = assembleFloat64
	SplitFloat64    = splitFloat64
	AssembleFloat32 = assembleFloat32
	SplitFloat32    = splitFloat32

	MakeDecimal  = makeDecimal
	MinSafeScale = minSafeScale

	BigBoundaries = bigBoundaries
)

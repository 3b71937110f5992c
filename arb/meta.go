// Package arb meta providers: randomized configuration for the engine and
// runner, plus synthetic evaluation verdicts for framework self-tests.
package arb

import (
	"github.com/katalvlaran/arbiter/gen"
)

// CheckConfig is a randomized property-run configuration. MaxSize is
// derived as MinSize plus a non-negative offset, so MaxSize ≥ MinSize
// holds for every generated value by construction.
//
// Fields:
//   - MinSuccess      — successful evaluations required before passing.
//   - MaxDiscardRatio — discarded-per-successful budget before giving up.
//   - MinSize         — size hint for the first evaluation.
//   - MaxSize         — size hint ceiling for later evaluations.
//   - Workers         — parallel evaluation workers.
type CheckConfig struct {
	MinSuccess      int
	MaxDiscardRatio float64
	MinSize         int
	MaxSize         int
	Workers         int
}

// checkConfigProvider draws each field from its documented range; only
// MaxSize depends on another field, and only to uphold its invariant.
var checkConfigProvider = New("CheckConfig", func() gen.Gen[CheckConfig] {
	minSuccess := gen.Choose(checkMinSuccessLo, checkMinSuccessHi)
	discard := gen.ChooseFloat64(checkDiscardLo, checkDiscardHi)
	minSize := gen.Choose(checkSizeLo, checkSizeHi)
	offset := gen.Choose(checkSizeLo, checkSizeHi)
	workers := gen.Choose(checkWorkersLo, checkWorkersHi)

	return func(p gen.Parameters) CheckConfig {
		lo := minSize(p)

		return CheckConfig{
			MinSuccess:      minSuccess(p),
			MaxDiscardRatio: discard(p),
			MinSize:         lo,
			MaxSize:         lo + offset(p),
			Workers:         workers(p),
		}
	}
})

// parametersProvider yields fresh generation parameters: a size hint
// uniform in [0, paramSizeMax] and an independent stream split off the
// incoming one. The size is non-negative by construction — every
// provider's documented precondition.
var parametersProvider = New("gen.Parameters", func() gen.Gen[gen.Parameters] {
	size := gen.Choose(0, paramSizeMax)

	return func(p gen.Parameters) gen.Parameters {
		return gen.Parameters{Size: size(p), Rng: gen.CaptureSeed(p).Rand()}
	}
})

// Outcome classifies one property evaluation.
type Outcome int

// Evaluation outcomes, from refutation to abnormal termination.
const (
	// Falsified marks a counterexample found.
	Falsified Outcome = iota
	// Passed marks the required number of successful evaluations reached.
	Passed
	// Proved marks an exhaustive check over the whole domain.
	Proved
	// Undecided marks too many discarded evaluations to conclude anything.
	Undecided
	// Errored marks an evaluation aborted by an error.
	Errored
)

// String reports the outcome in lowercase, for logs and test output.
func (o Outcome) String() string {
	switch o {
	case Falsified:
		return "falsified"
	case Passed:
		return "passed"
	case Proved:
		return "proved"
	case Undecided:
		return "undecided"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Verdict is a synthetic property-evaluation result, used to exercise a
// result-handling pipeline without hand-written fixtures. Err is non-nil
// exactly when Outcome is Errored.
type Verdict struct {
	Outcome Outcome
	Err     error
}

// verdictProvider mixes all five outcomes; decisive outcomes dominate,
// the errored branch is rare and carries a generated error value.
var verdictProvider = New("Verdict", func() gen.Gen[Verdict] {
	of := func(o Outcome) gen.Gen[Verdict] {
		return gen.Const(Verdict{Outcome: o})
	}
	errored := gen.Map(errorProvider.Describe(), func(err error) Verdict {
		return Verdict{Outcome: Errored, Err: err}
	})

	return gen.Frequency(
		gen.Weighted[Verdict]{Weight: verdictFalsifiedWeight, Gen: of(Falsified)},
		gen.Weighted[Verdict]{Weight: verdictPassedWeight, Gen: of(Passed)},
		gen.Weighted[Verdict]{Weight: verdictProvedWeight, Gen: of(Proved)},
		gen.Weighted[Verdict]{Weight: verdictUndecidedWeight, Gen: of(Undecided)},
		gen.Weighted[Verdict]{Weight: verdictErroredWeight, Gen: errored},
	)
})

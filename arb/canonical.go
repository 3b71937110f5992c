// Package arb canonical set: the providers installed in the default registry.
package arb

// registerCanonical installs this library's canonical providers into r —
// exactly one per concrete type. Runs once, from Default's first use;
// rune stays out (it shares int32's registry slot, see Runes) and the
// generic composites stay out (they have no single concrete type; compose
// them with OptionOf, EitherOf, SliceOf, TupleNOf, FuncNOf as needed).
func registerCanonical(r *Registry) {
	must := func(err error) {
		if err != nil {
			panic(err.Error())
		}
	}

	must(RegisterIn(r, boolProvider))
	must(RegisterIn(r, intProvider))
	must(RegisterIn(r, int8Provider))
	must(RegisterIn(r, int16Provider))
	must(RegisterIn(r, int32Provider))
	must(RegisterIn(r, int64Provider))
	must(RegisterIn(r, uintProvider))
	must(RegisterIn(r, uint8Provider))
	must(RegisterIn(r, uint16Provider))
	must(RegisterIn(r, uint32Provider))
	must(RegisterIn(r, uint64Provider))
	must(RegisterIn(r, float32Provider))
	must(RegisterIn(r, float64Provider))
	must(RegisterIn(r, stringProvider))
	must(RegisterIn(r, bigIntProvider))
	must(RegisterIn(r, bigDecimalProvider))
	must(RegisterIn(r, bytesProvider))
	must(RegisterIn(r, int64SliceProvider))
	must(RegisterIn(r, float64SliceProvider))
	must(RegisterIn(r, timeProvider))
	must(RegisterIn(r, durationProvider))
	must(RegisterIn(r, errorProvider))
	must(RegisterIn(r, checkConfigProvider))
	must(RegisterIn(r, parametersProvider))
	must(RegisterIn(r, verdictProvider))
}

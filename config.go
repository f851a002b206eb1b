package regexy

// Config controls ambient compilation and search-acceleration behavior
// that spec.md leaves to engine discretion, in the spirit of the
// teacher's meta.Config functional-defaults pattern.
type Config struct {
	// MaxRepeat bounds the upper value accepted in an explicit {m,n}
	// repetition, guarding against absurd expansions during NFA
	// construction (the teacher's MaxRecursionDepth/MaxDFAStates play
	// the same guardrail role for their own construction strategies).
	MaxRepeat int

	// DotNL makes "." also match '\n'. spec.md §4.7/§9(c) allows engine
	// extensions here as long as they don't change the default
	// semantics; the default is false (stdlib-compatible).
	DotNL bool

	// EnableAccelerator toggles the literal-prefilter search
	// acceleration in internal/accelerate. Disabling it never changes
	// match results, only whether Search can skip a definite non-match
	// without running the simulator.
	EnableAccelerator bool

	// Verbose logs accelerator strategy-selection decisions through the
	// standard log package, mirroring the teacher's comment-driven
	// strategy notes in meta/strategy.go. The core compiler and
	// simulator never log anything (spec.md §5: "performs no I/O").
	Verbose bool
}

// DefaultConfig returns the default Config. Callers typically copy and
// adjust individual fields before passing it to CompileWithConfig.
func DefaultConfig() Config {
	return Config{
		MaxRepeat:         1000,
		DotNL:             false,
		EnableAccelerator: true,
		Verbose:           false,
	}
}

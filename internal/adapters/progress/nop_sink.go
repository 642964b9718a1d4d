package progress

import "github.com/trebuchet-org/swapguard/internal/usecase"

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink returns the no-op sink for --json and --non-interactive runs and
// the spinner otherwise
func NewSink(quiet bool) usecase.ProgressSink {
	if quiet {
		return NewNopSink()
	}
	return NewSpinnerSink()
}

// Done stops any spinner the sink is still showing
func Done(sink usecase.ProgressSink) {
	if s, ok := sink.(interface{ Stop() }); ok {
		s.Stop()
	}
}

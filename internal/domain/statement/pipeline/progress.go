package pipeline

// ProgressFunc receives advisory progress for one run: a 0-100 percentage
// and a status message. Reports are not resumable checkpoints.
type ProgressFunc func(percent int, message string)

// progressReporter wraps a caller callback and enforces the monotonic
// non-decreasing percentage contract, clamping to 0-100.
type progressReporter struct {
	fn   ProgressFunc
	last int
}

func newProgressReporter(fn ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn}
}

func (p *progressReporter) report(percent int, message string) {
	if p.fn == nil {
		return
	}
	if percent < p.last {
		percent = p.last
	}
	if percent > 100 {
		percent = 100
	}
	p.last = percent
	p.fn(percent, message)
}

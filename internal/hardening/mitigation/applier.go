package mitigation

import (
	"github.com/samber/lo"
)

// Setter applies a single policy to the current process.
type Setter interface {
	SetPolicy(p Policy) error
}

// Reporter receives the failure of a labeled step.
type Reporter interface {
	Report(label string, err error)
}

// Applier applies Policies in order.
type Applier struct {
	setter   Setter
	reporter Reporter
}

// NewApplier creates an Applier.
func NewApplier(setter Setter, reporter Reporter) *Applier {
	return &Applier{
		setter:   setter,
		reporter: reporter,
	}
}

// Apply sets every policy in order and stops at the first one the platform
// rejects. That failure is reported and Apply returns false. Policies set
// before the failure stay in effect.
func (a *Applier) Apply() bool {
	steps := lo.Map(Policies(), func(p Policy, _ int) step {
		return step{
			label: p.Label(),
			run:   func() error { return a.setter.SetPolicy(p) },
		}
	})

	return runSteps(a.reporter, steps)
}

type step struct {
	label string
	run   func() error
}

func runSteps(reporter Reporter, steps []step) bool {
	for _, s := range steps {
		if err := s.run(); err != nil {
			reporter.Report(s.label, err)

			return false
		}
	}

	return true
}

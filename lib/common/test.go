// Provide test utilities for the packages driving external tools
package common

// TestRunner records every command and answers with Handler. Without a
// Handler every command succeeds with empty output.
type TestRunner struct {
	Calls   []Command
	Handler func(Command) (Output, error)
}

func (r *TestRunner) Run(cmd Command) (Output, error) {
	r.Calls = append(r.Calls, cmd)
	if r.Handler == nil {
		return Output{}, nil
	}

	return r.Handler(cmd)
}

// LastCall returns the most recent command, or an empty one.
func (r *TestRunner) LastCall() Command {
	if len(r.Calls) < 1 {
		return Command{}
	}

	return r.Calls[len(r.Calls)-1]
}

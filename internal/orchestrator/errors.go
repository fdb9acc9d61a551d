package orchestrator

import "fmt"

// ErrInternal marks a programmer-error class failure: something the
// pipeline's own invariants guarantee can't happen, happened anyway. It
// always identifies the offending stage and input.
type ErrInternal struct {
	Stage  string
	Detail string
}

func (e *ErrInternal) Error() string {
	return fmt.Sprintf("orchestrator: internal inconsistency in %s: %s", e.Stage, e.Detail)
}

// ErrConfig marks a fatal, pre-flight configuration rejection. The run
// never starts.
type ErrConfig struct {
	Cause error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("orchestrator: invalid configuration: %v", e.Cause)
}

func (e *ErrConfig) Unwrap() error {
	return e.Cause
}

// ErrCancelled marks an orchestrator run that observed cancellation between
// stages.
type ErrCancelled struct {
	Stage string
}

func (e *ErrCancelled) Error() string {
	return fmt.Sprintf("orchestrator: run cancelled before stage %s", e.Stage)
}

package provisioning

import (
	"errors"
	"time"
)

// State is the lifecycle position of a pipeline run.
type State int

// Pipeline states. Running has no visible sub-states.
const (
	StateNotStarted State = iota
	StateRunning
	StateSucceeded
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of a pipeline run.
type Outcome struct {
	State State

	// Executed lists the steps that were started, in order.
	Executed []string

	// Skipped lists the steps whose guard was false.
	Skipped []string

	// Err is set when State is StateFailed. Step failures are *StepError.
	Err error

	Duration time.Duration
}

// FailedStep returns the name of the failing step, or "" if none failed.
func (o Outcome) FailedStep() string {
	var se *StepError
	if errors.As(o.Err, &se) {
		return se.Step
	}
	return ""
}

// Pipeline executes steps in order.
type Pipeline struct {
	Steps []Step
}

// NewPipeline returns a pipeline over steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{Steps: steps}
}

// Run executes every enabled step sequentially and stops at the first error.
// Nothing runs if the request is invalid.
func (p *Pipeline) Run(ctx *Context) Outcome {
	start := time.Now()
	out := Outcome{State: StateRunning}
	obs := ctx.Observer

	obs.Event(Event{Type: EventRunStarted, Message: ctx.Request.Name.String()})

	fail := func(err error) Outcome {
		out.State = StateFailed
		out.Err = err
		out.Duration = time.Since(start)
		obs.Event(Event{Type: EventRunFailed, Err: err, Duration: out.Duration})
		return out
	}

	if err := ctx.Request.Validate(); err != nil {
		return fail(err)
	}

	for _, step := range p.Steps {
		if !step.Enabled(ctx.Request) {
			out.Skipped = append(out.Skipped, step.Name())
			obs.Event(Event{Type: EventStepSkipped, Step: step.Name()})
			continue
		}

		if err := ctx.Err(); err != nil {
			return fail(&StepError{Step: step.Name(), Err: err})
		}

		stepStart := time.Now()
		out.Executed = append(out.Executed, step.Name())
		obs.Event(Event{Type: EventStepStarted, Step: step.Name(), Message: step.Title()})

		if err := step.Run(ctx); err != nil {
			obs.Event(Event{Type: EventStepFailed, Step: step.Name(), Err: err, Duration: time.Since(stepStart)})
			return fail(&StepError{Step: step.Name(), Err: err})
		}

		completed := Event{Type: EventStepCompleted, Step: step.Name(), Duration: time.Since(stepStart)}
		if r, ok := step.(completionReporter); ok {
			completed.Message = r.Completed()
		}
		obs.Event(completed)
	}

	out.State = StateSucceeded
	out.Duration = time.Since(start)
	obs.Event(Event{Type: EventRunCompleted, Duration: out.Duration})
	return out
}

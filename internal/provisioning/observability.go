package provisioning

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/rnsetup/internal/ui/console"
)

// Observer receives provisioning events.
type Observer interface {
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType
	Step      string        // Step name, empty for run events
	Message   string        // Human-readable text, if any
	Err       error         // Set on failure events
	Duration  time.Duration // Set on completion and failure events
	Timestamp time.Time
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventRunStarted is emitted once before any step.
	EventRunStarted EventType = "run.started"
	// EventRunCompleted is emitted after the last step succeeded.
	EventRunCompleted EventType = "run.completed"
	// EventRunFailed is emitted when the run stops on an error.
	EventRunFailed EventType = "run.failed"

	// EventStepStarted indicates a step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a step failed.
	EventStepFailed EventType = "step.failed"
	// EventStepSkipped indicates a step's guard was false.
	EventStepSkipped EventType = "step.skipped"
)

// MultiObserver fans events out to every observer in order.
type MultiObserver []Observer

// Event implements Observer.
func (m MultiObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, o := range m {
		o.Event(event)
	}
}

// ConsoleObserver prints step progress for the user.
// Failures are left to the caller, which owns the single failure report.
type ConsoleObserver struct {
	out *console.Printer
}

// NewConsoleObserver creates a console observer writing to out.
func NewConsoleObserver(out *console.Printer) *ConsoleObserver {
	return &ConsoleObserver{out: out}
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	switch event.Type {
	case EventStepStarted:
		o.out.Progress("%s", event.Message)
	case EventStepCompleted:
		if event.Message != "" {
			o.out.Success("%s", event.Message)
		}
	}
}

// LogObserver writes events to a logr.Logger.
// Step activity is logged at V(1), skipped steps at V(2).
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver creates a logr-backed observer.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{log: log.WithName("provisioning")}
}

// Event implements Observer.
func (o *LogObserver) Event(event Event) {
	switch event.Type {
	case EventRunStarted:
		o.log.V(1).Info("run started", "project", event.Message)
	case EventRunCompleted:
		o.log.V(1).Info("run completed", "duration", event.Duration.Round(time.Millisecond).String())
	case EventRunFailed:
		o.log.V(1).Info("run failed", "error", event.Err.Error(), "duration", event.Duration.Round(time.Millisecond).String())
	case EventStepStarted:
		o.log.V(1).Info("step started", "step", event.Step)
	case EventStepCompleted:
		o.log.V(1).Info("step completed", "step", event.Step, "duration", event.Duration.Round(time.Millisecond).String())
	case EventStepFailed:
		o.log.V(1).Info("step failed", "step", event.Step, "error", event.Err.Error())
	case EventStepSkipped:
		o.log.V(2).Info("step skipped", "step", event.Step)
	}
}
